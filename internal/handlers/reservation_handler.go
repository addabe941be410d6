package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/httpresp"
	"github.com/Luexi/PAITITI/internal/middleware"
	ucBooking "github.com/Luexi/PAITITI/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC     *ucBooking.CreateReservation
	listByDateUC *ucBooking.ListReservationsByDate
	confirmUC    *ucBooking.ConfirmReservation
	seatUC       *ucBooking.SeatReservation
	completeUC   *ucBooking.CompleteReservation
	cancelUC     *ucBooking.CancelReservation
	noShowUC     *ucBooking.MarkNoShow
}

func NewReservationHandler(
	createUC *ucBooking.CreateReservation,
	listByDateUC *ucBooking.ListReservationsByDate,
	confirmUC *ucBooking.ConfirmReservation,
	seatUC *ucBooking.SeatReservation,
	completeUC *ucBooking.CompleteReservation,
	cancelUC *ucBooking.CancelReservation,
	noShowUC *ucBooking.MarkNoShow,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:     createUC,
		listByDateUC: listByDateUC,
		confirmUC:    confirmUC,
		seatUC:       seatUC,
		completeUC:   completeUC,
		cancelUC:     cancelUC,
		noShowUC:     noShowUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	FullName  string `json:"full_name" binding:"required,min=2,max=255"`
	Phone     string `json:"phone" binding:"required"`
	PartySize int    `json:"party_size" binding:"required,min=1"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`

	CelebrationType string `json:"celebration_type"`
	Notes           string `json:"notes" binding:"max=500"`
	Source          string `json:"source"`
}

// ======================================================
// HELPERS
// ======================================================

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func mapTransitionError(c *gin.Context, err error, notFoundCode, notFoundMsg string) {
	switch {
	case httperr.IsBusiness(err, notFoundCode):
		httperr.NotFound(c, notFoundCode, notFoundMsg)
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "La transición no es válida desde el estado actual.")
	case httperr.IsBusiness(err, "no_table_available"):
		httperr.Conflict(c, "no_table_available", "No hay mesa disponible para esa reserva.")
	default:
		httperr.Internal(c, "transition_failed", "Error al actualizar la reserva.")
	}
}

// ======================================================
// CREATE (STAFF)
// ======================================================

// Create registra una reserva tomada por el staff (teléfono, WhatsApp).
// Pasa por el mismo pipeline de validación y asignación que la pública.
func (h *ReservationHandler) Create(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	source := req.Source
	if source == "" {
		source = "staff"
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
			Source:          source,
		},
	)

	if err != nil {
		mapReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	reservations, err := h.listByDateUC.Execute(c.Request.Context(), venueID, dateStr)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		default:
			httperr.Internal(c, "failed_to_list_reservations", "Error al listar reservas.")
		}
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.confirmUC.Execute(c.Request.Context(), venueID, userID, id)
	if err != nil {
		mapTransitionError(c, err, "reservation_not_found", "Reserva no encontrada.")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) Seat(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.seatUC.Execute(c.Request.Context(), venueID, userID, id)
	if err != nil {
		mapTransitionError(c, err, "reservation_not_found", "Reserva no encontrada.")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.completeUC.Execute(c.Request.Context(), venueID, userID, id)
	if err != nil {
		mapTransitionError(c, err, "reservation_not_found", "Reserva no encontrada.")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.cancelUC.Execute(c.Request.Context(), venueID, userID, id)
	if err != nil {
		mapTransitionError(c, err, "reservation_not_found", "Reserva no encontrada.")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) NoShow(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.noShowUC.Execute(c.Request.Context(), venueID, userID, id)
	if err != nil {
		mapTransitionError(c, err, "reservation_not_found", "Reserva no encontrada.")
		return
	}

	c.JSON(http.StatusOK, res)
}
