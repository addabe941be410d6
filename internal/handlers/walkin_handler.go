package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Luexi/PAITITI/internal/domain/booking"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/httpresp"
	"github.com/Luexi/PAITITI/internal/middleware"
	"github.com/Luexi/PAITITI/internal/models"
	ucWalkin "github.com/Luexi/PAITITI/internal/usecase/walkin"
)

// ======================================================
// HANDLER
// ======================================================

type WalkinHandler struct {
	db         *gorm.DB
	createUC   *ucWalkin.CreateWalkin
	assignUC   *ucWalkin.AssignWalkinTable
	completeUC *ucWalkin.CompleteWalkin
}

func NewWalkinHandler(
	db *gorm.DB,
	createUC *ucWalkin.CreateWalkin,
	assignUC *ucWalkin.AssignWalkinTable,
	completeUC *ucWalkin.CompleteWalkin,
) *WalkinHandler {
	return &WalkinHandler{
		db:         db,
		createUC:   createUC,
		assignUC:   assignUC,
		completeUC: completeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWalkinRequest struct {
	GuestName  string `json:"guest_name" binding:"required,min=2,max=80"`
	GuestPhone string `json:"guest_phone"`
	PartySize  int    `json:"party_size" binding:"required,min=1"`
	TableID    *uint  `json:"table_id"`
	Notes      string `json:"notes" binding:"max=500"`
}

type AssignWalkinTableRequest struct {
	TableID *uint `json:"table_id"`
}

func mapWalkinError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "walkin_not_found"):
		httperr.NotFound(c, "walkin_not_found", "Walk-in no encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "El walk-in ya no está activo.")
	case httperr.IsBusiness(err, "table_not_found"):
		httperr.BadRequest(c, "table_not_found", "Mesa no encontrada o inactiva.")
	case httperr.IsBusiness(err, "table_too_small"):
		httperr.BadRequest(c, "table_too_small", "La mesa no tiene capacidad para el grupo.")
	case httperr.IsBusiness(err, "table_occupied"):
		httperr.Conflict(c, "table_occupied", "Esa mesa está ocupada.")
	default:
		httperr.Internal(c, "walkin_failed", "Error al procesar el walk-in.")
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *WalkinHandler) Create(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWalkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	w, err := h.createUC.Execute(
		c.Request.Context(),
		userID,
		ucWalkin.CreateWalkinInput{
			VenueID:    venueID,
			GuestName:  req.GuestName,
			GuestPhone: req.GuestPhone,
			PartySize:  req.PartySize,
			TableID:    req.TableID,
			Notes:      req.Notes,
		},
	)

	if err != nil {
		mapWalkinError(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

// ======================================================
// LIST ACTIVE
// ======================================================

func (h *WalkinHandler) ListActive(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var walkins []models.Walkin
	if err := h.db.
		Where("venue_id = ? AND status = ?", venueID, string(domain.WalkinActive)).
		Order("start_time ASC").
		Find(&walkins).Error; err != nil {

		httperr.Internal(c, "failed_to_list_walkins", "Error al listar walk-ins.")
		return
	}

	httpresp.List(c, walkins)
}

// ======================================================
// ASSIGN TABLE
// ======================================================

func (h *WalkinHandler) AssignTable(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AssignWalkinTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	w, err := h.assignUC.Execute(c.Request.Context(), venueID, userID, id, req.TableID)
	if err != nil {
		mapWalkinError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *WalkinHandler) Complete(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	w, err := h.completeUC.Execute(c.Request.Context(), venueID, userID, id)
	if err != nil {
		mapWalkinError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}
