package validators

import "regexp"

// Teléfono mexicano: 10 dígitos, lada país +52 opcional.
var mxPhoneRe = regexp.MustCompile(`^\+?52\s?\d{10}$|^\d{10}$`)

func IsValidPhone(phone string) bool {
	return mxPhoneRe.MatchString(phone)
}
