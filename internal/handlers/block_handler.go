package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/events"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/httpresp"
	"github.com/Luexi/PAITITI/internal/middleware"
	"github.com/Luexi/PAITITI/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BlockHandler struct {
	db     *gorm.DB
	events *events.Notifier
}

func NewBlockHandler(db *gorm.DB, notifier *events.Notifier) *BlockHandler {
	return &BlockHandler{db: db, events: notifier}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`   // HH:mm
	Reason    string `json:"reason" binding:"required,max=255"`
}

// ======================================================
// LIST
// ======================================================

func (h *BlockHandler) List(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var venue models.Venue
	if err := h.db.First(&venue, venueID).Error; err != nil {
		httperr.Internal(c, "venue_not_found", "Restaurante no encontrado.")
		return
	}

	// Rango por defecto: de hoy en adelante.
	from := nowInVenue(&venue)
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := parseDateInVenue(&venue, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		from = parsed
	}

	to := from.AddDate(0, 0, 30)
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := parseDateInVenue(&venue, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		to = parsed.AddDate(0, 0, 1)
	}

	var blocks []models.Block
	if err := h.db.
		Where("venue_id = ? AND start_at < ? AND end_at > ?", venueID, to, from).
		Order("start_at ASC").
		Find(&blocks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocks", "Error al listar bloqueos.")
		return
	}

	httpresp.List(c, blocks)
}

// ======================================================
// CREATE
// ======================================================

func (h *BlockHandler) Create(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var venue models.Venue
	if err := h.db.First(&venue, venueID).Error; err != nil {
		httperr.Internal(c, "venue_not_found", "Restaurante no encontrado.")
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	startAt, err := parseDateTimeInVenue(&venue, req.Date, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	endAt, err := parseDateTimeInVenue(&venue, req.Date, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	// Un cierre que cruza medianoche se captura como fin al día siguiente.
	if !endAt.After(startAt) {
		endAt = endAt.Add(24 * time.Hour)
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	block := models.Block{
		VenueID:   venueID,
		StartAt:   startAt,
		EndAt:     endAt,
		Reason:    req.Reason,
		CreatedBy: user.Name,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Error al crear el bloqueo.")
		return
	}

	writeAudit(h.db, venueID, &userID, "block_created", "block", &block.ID, map[string]any{
		"start":  startAt,
		"end":    endAt,
		"reason": req.Reason,
	})
	h.events.Notify(venueID, "block", block.ID, "created")

	c.JSON(http.StatusCreated, block)
}

// ======================================================
// DELETE
// ======================================================

func (h *BlockHandler) Delete(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var block models.Block
	if err := h.db.
		Where("id = ? AND venue_id = ?", id, venueID).
		First(&block).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "block_not_found", "Bloqueo no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_block", "Error al buscar el bloqueo.")
		return
	}

	if err := h.db.Delete(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_block", "Error al eliminar el bloqueo.")
		return
	}

	writeAudit(h.db, venueID, &userID, "block_deleted", "block", &block.ID, nil)
	h.events.Notify(venueID, "block", block.ID, "deleted")

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
