package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Luexi/PAITITI/internal/models"
)

func bindReservationJSON(t *testing.T, body string) (PublicCreateReservationRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req PublicCreateReservationRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestPublicCreateReservationBinding(t *testing.T) {
	// El payload que manda la página de reservas.
	req, err := bindReservationJSON(t, `{
		"full_name":  "María López",
		"phone":      "5512345678",
		"party_size": 2,
		"date":       "2026-09-10",
		"start_time": "19:00"
	}`)
	if err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if req.StartTime != "19:00" {
		t.Fatalf("expected start_time 19:00, got %q", req.StartTime)
	}

	cases := []struct {
		name string
		body string
	}{
		{
			"hora bajo otra clave",
			`{"full_name":"María López","phone":"5512345678","party_size":2,"date":"2026-09-10","time":"19:00"}`,
		},
		{
			"sin start_time",
			`{"full_name":"María López","phone":"5512345678","party_size":2,"date":"2026-09-10"}`,
		},
		{
			"nombre demasiado largo",
			`{"full_name":"` + strings.Repeat("a", 256) + `","phone":"5512345678","party_size":2,"date":"2026-09-10","start_time":"19:00"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := bindReservationJSON(t, tc.body); err == nil {
				t.Fatalf("expected binding error")
			}
		})
	}

	// 255 caracteres es el límite de la columna y todavía pasa.
	longName := strings.Repeat("a", 255)
	if _, err := bindReservationJSON(t, `{"full_name":"`+longName+`","phone":"5512345678","party_size":2,"date":"2026-09-10","start_time":"19:00"}`); err != nil {
		t.Fatalf("255-char name rejected: %v", err)
	}
}

func TestReservationResponseEnvelope(t *testing.T) {
	tableID := uint(2)

	got := reservationResponse(&models.Reservation{ID: 7, TableID: &tableID})
	if got["success"] != true {
		t.Fatalf("expected success true")
	}
	if got["table_assigned"] != true {
		t.Fatalf("expected table_assigned true when a table was won")
	}

	got = reservationResponse(&models.Reservation{ID: 8})
	if got["table_assigned"] != false {
		t.Fatalf("expected table_assigned false for a pending reservation")
	}
	if got["reservation"].(*models.Reservation).ID != 8 {
		t.Fatalf("expected the reservation inside the envelope")
	}
}
