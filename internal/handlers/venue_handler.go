package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/middleware"
	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/timezone"
)

type VenueHandler struct {
	db *gorm.DB
}

func NewVenueHandler(db *gorm.DB) *VenueHandler {
	return &VenueHandler{db: db}
}

type UpdateVenueRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (h *VenueHandler) GetMeVenue(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var venue models.Venue
	if err := h.db.First(&venue, venueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venue_not_found", "Restaurante no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_venue", "Error al buscar el restaurante.")
		return
	}

	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) UpdateMeVenue(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var venue models.Venue
	if err := h.db.First(&venue, venueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venue_not_found", "Restaurante no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_venue", "Error al buscar el restaurante.")
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Zona horaria inválida.")
			return
		}
		venue.Timezone = *req.Timezone
	}

	if err := h.db.Save(&venue).Error; err != nil {
		httperr.Internal(c, "failed_to_update_venue", "Error al guardar el restaurante.")
		return
	}

	c.JSON(http.StatusOK, venue)
}
