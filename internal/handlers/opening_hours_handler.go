package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/httpresp"
	"github.com/Luexi/PAITITI/internal/middleware"
	"github.com/Luexi/PAITITI/internal/models"
)

type OpeningHoursHandler struct {
	db *gorm.DB
}

func NewOpeningHoursHandler(db *gorm.DB) *OpeningHoursHandler {
	return &OpeningHoursHandler{db: db}
}

type OpeningDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

type OpeningHoursUpdateRequest struct {
	Days []OpeningDayConfig `json:"days" binding:"required"`
}

func (h *OpeningHoursHandler) Get(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var hours []models.OpeningHours
	if err := h.db.
		Where("venue_id = ?", venueID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_opening_hours", "Error al buscar el horario.")
		return
	}

	httpresp.List(c, hours)
}

// Update reemplaza el horario completo del venue. El slot grid de cada día
// se deriva de estas filas en el momento de la consulta.
func (h *OpeningHoursHandler) Update(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req OpeningHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := h.db.Where("venue_id = ?", venueID).Delete(&models.OpeningHours{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Error al limpiar el horario anterior.")
		return
	}

	var toCreate []models.OpeningHours
	for _, d := range req.Days {
		oh := models.OpeningHours{
			VenueID:   venueID,
			Weekday:   d.Weekday,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			IsClosed:  d.IsClosed,
		}
		toCreate = append(toCreate, oh)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_opening_hours", "Error al guardar el horario.")
			return
		}
	}

	writeAudit(h.db, venueID, &userID, "opening_hours_updated", "opening_hours", nil, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
