package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/httpresp"
	"github.com/Luexi/PAITITI/internal/middleware"
)

type GuestHandler struct {
	db *gorm.DB
}

func NewGuestHandler(db *gorm.DB) *GuestHandler {
	return &GuestHandler{db: db}
}

type GuestSummary struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Visits    int64  `json:"visits"`
	LastVisit string `json:"last_visit"`
}

// List arma el directorio de comensales a partir del historial de reservas,
// agrupado por teléfono.
func (h *GuestHandler) List(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.
		Table("reservations").
		Select("MAX(full_name) AS full_name, phone, COUNT(*) AS visits, MAX(date) AS last_visit").
		Where("venue_id = ?", venueID).
		Group("phone")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR phone LIKE ?", like, like)
	}

	var guests []GuestSummary
	if err := q.
		Order("last_visit DESC").
		Scan(&guests).Error; err != nil {

		httperr.Internal(c, "failed_to_list_guests", "Error al listar comensales.")
		return
	}

	httpresp.List(c, guests)
}
