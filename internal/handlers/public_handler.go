package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/timezone"
	ucBooking "github.com/Luexi/PAITITI/internal/usecase/booking"
	"github.com/Luexi/PAITITI/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateReservation
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateReservation,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateReservationRequest struct {
	VenueID   uint   `json:"venue_id"`
	FullName  string `json:"full_name" binding:"required,min=2,max=255"`
	Phone     string `json:"phone" binding:"required"`
	PartySize int    `json:"party_size" binding:"required,min=1"`
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm

	CelebrationType string `json:"celebration_type"`
	Notes           string `json:"notes" binding:"max=500"`
	Source          string `json:"source"` // web | whatsapp | messenger
}

// venueIDFromQuery resuelve el venue; instalación de un solo restaurante,
// por eso el default es 1.
func venueIDFromQuery(c *gin.Context) uint {
	raw := c.DefaultQuery("venue_id", "1")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 1
	}
	return uint(id)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	partySizeStr := c.Query("party_size")

	if dateStr == "" || partySizeStr == "" {
		httperr.BadRequest(c, "missing_params", "Fecha y número de personas son obligatorios.")
		return
	}

	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil || partySize < 1 {
		httperr.BadRequest(c, "invalid_party_size", "Número de personas inválido.")
		return
	}

	venueID := venueIDFromQuery(c)

	var venue models.Venue
	if err := h.db.First(&venue, venueID).Error; err != nil {
		httperr.NotFound(c, "venue_not_found", "Restaurante no encontrado.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(venue.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	day, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			VenueID:   venueID,
			Date:      date,
			PartySize: partySize,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "date_in_past"):
			httperr.BadRequest(c, "date_in_past", "La fecha ya pasó.")
		case httperr.IsBusiness(err, "date_too_far"):
			httperr.BadRequest(c, "date_too_far", "La fecha está fuera de la ventana de reservas.")
		case httperr.IsBusiness(err, "settings_not_found"):
			httperr.Internal(c, "settings_not_found", "El restaurante no tiene configuración de reservas.")
		default:
			httperr.Internal(c, "availability_failed", "Error al calcular horarios.")
		}
		return
	}

	c.JSON(http.StatusOK, day)
}

////////////////////////////////////////////////////////
// CREATE RESERVATION
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	var req PublicCreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "El teléfono no parece ser válido.")
		return
	}

	venueID := req.VenueID
	if venueID == 0 {
		venueID = 1
	}

	res, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateReservationInput{
			VenueID:         venueID,
			FullName:        req.FullName,
			Phone:           req.Phone,
			PartySize:       req.PartySize,
			Date:            req.Date,
			StartTime:       req.StartTime,
			CelebrationType: req.CelebrationType,
			Notes:           req.Notes,
			Source:          req.Source,
		},
	)

	if err != nil {
		mapReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservationResponse(res))
}

// reservationResponse arma el sobre de creación: table_assigned distingue
// una reserva confirmada con mesa de una que quedó pendiente por la carrera.
func reservationResponse(res *models.Reservation) gin.H {
	return gin.H{
		"success":        true,
		"reservation":    res,
		"table_assigned": res.TableID != nil,
	}
}

////////////////////////////////////////////////////////
// ERROR MAPPING
////////////////////////////////////////////////////////

// mapReservationError traduce los códigos de negocio de la creación de
// reservas a HTTP. Los conflictos de slot salen como 409.
func mapReservationError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "venue_not_found"):
		httperr.NotFound(c, "venue_not_found", "Restaurante no encontrado.")
	case httperr.IsBusiness(err, "settings_not_found"):
		httperr.Internal(c, "settings_not_found", "El restaurante no tiene configuración de reservas.")
	case httperr.IsBusiness(err, "party_too_large"):
		httperr.BadRequest(c, "party_too_large", "Para grupos de ese tamaño contáctanos por teléfono.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
	case httperr.IsBusiness(err, "out_of_range"):
		httperr.BadRequest(c, "out_of_range", "La fecha está fuera de la ventana de reservas.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Las reservas requieren anticipación mínima.")
	case httperr.IsBusiness(err, "venue_closed"):
		httperr.BadRequest(c, "venue_closed", "El restaurante está cerrado ese día.")
	case httperr.IsBusiness(err, "invalid_slot"):
		httperr.BadRequest(c, "invalid_slot", "La hora no corresponde a un horario disponible.")
	case httperr.IsBusiness(err, "slot_blocked"):
		httperr.Conflict(c, "slot_blocked", "Ese horario está bloqueado.")
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "slot_conflict", "Ese horario acaba de ocuparse. Elige otro.")
	default:
		httperr.Internal(c, "failed_to_create_reservation", "Error al crear la reserva.")
	}
}
