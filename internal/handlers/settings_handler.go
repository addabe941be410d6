package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/middleware"
	"github.com/Luexi/PAITITI/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpdateSettingsRequest struct {
	SlotMinutes            *int `json:"slot_minutes,omitempty"`
	DefaultDurationMinutes *int `json:"default_duration_minutes,omitempty"`
	MaxPartySize           *int `json:"max_party_size,omitempty"`
	MinNoticeMinutes       *int `json:"min_notice_minutes,omitempty"`
	MaxDaysAhead           *int `json:"max_days_ahead,omitempty"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var settings models.Settings
	if err := h.db.Where("venue_id = ?", venueID).First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "settings_not_found", "Configuración no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Error al buscar la configuración.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update ajusta los parámetros de reserva. Los cambios solo afectan a
// consultas y reservas posteriores; las reservas ya tomadas no se recalculan.
func (h *SettingsHandler) Update(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var settings models.Settings
	if err := h.db.Where("venue_id = ?", venueID).First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "settings_not_found", "Configuración no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Error al buscar la configuración.")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.SlotMinutes != nil {
		if !validSlotMinutes(*req.SlotMinutes) {
			httperr.BadRequest(c, "invalid_slot_minutes", "El tamaño de slot debe ser 15, 30 o 60 minutos.")
			return
		}
		settings.SlotMinutes = *req.SlotMinutes
	}
	if req.DefaultDurationMinutes != nil {
		if *req.DefaultDurationMinutes < 15 {
			httperr.BadRequest(c, "invalid_duration", "La duración debe ser de al menos 15 minutos.")
			return
		}
		settings.DefaultDurationMinutes = *req.DefaultDurationMinutes
	}
	if req.MaxPartySize != nil {
		if *req.MaxPartySize < 1 {
			httperr.BadRequest(c, "invalid_max_party_size", "El tamaño máximo de grupo debe ser positivo.")
			return
		}
		settings.MaxPartySize = *req.MaxPartySize
	}
	if req.MinNoticeMinutes != nil {
		if *req.MinNoticeMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_notice", "El aviso mínimo debe ser cero o positivo (en minutos).")
			return
		}
		settings.MinNoticeMinutes = *req.MinNoticeMinutes
	}
	if req.MaxDaysAhead != nil {
		if *req.MaxDaysAhead < 1 {
			httperr.BadRequest(c, "invalid_max_days_ahead", "La ventana de reservas debe ser de al menos un día.")
			return
		}
		settings.MaxDaysAhead = *req.MaxDaysAhead
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Error al guardar la configuración.")
		return
	}

	writeAudit(h.db, venueID, &userID, "settings_updated", "settings", &settings.ID, nil)

	c.JSON(http.StatusOK, settings)
}

// validSlotMinutes limita la grilla a los tamaños que el front ofrece;
// cualquier otro valor desalinearía los slots ya publicados.
func validSlotMinutes(m int) bool {
	switch m {
	case 15, 30, 60:
		return true
	}
	return false
}
