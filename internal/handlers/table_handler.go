package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/events"
	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/httpresp"
	"github.com/Luexi/PAITITI/internal/middleware"
	"github.com/Luexi/PAITITI/internal/models"
	ucBooking "github.com/Luexi/PAITITI/internal/usecase/booking"
)

type TableHandler struct {
	db     *gorm.DB
	liveUC *ucBooking.LiveTables
	events *events.Notifier
}

func NewTableHandler(db *gorm.DB, liveUC *ucBooking.LiveTables, notifier *events.Notifier) *TableHandler {
	return &TableHandler{db: db, liveUC: liveUC, events: notifier}
}

// --------- Requests ---------

type CreateTableRequest struct {
	Label    string `json:"label" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`

	X        int    `json:"x"`
	Y        int    `json:"y"`
	W        int    `json:"w"`
	H        int    `json:"h"`
	Shape    string `json:"shape"`
	Rotation int    `json:"rotation"`
}

type UpdateTableRequest struct {
	Label    *string `json:"label,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Cleaning *bool   `json:"cleaning,omitempty"`

	X        *int    `json:"x,omitempty"`
	Y        *int    `json:"y,omitempty"`
	W        *int    `json:"w,omitempty"`
	H        *int    `json:"h,omitempty"`
	Shape    *string `json:"shape,omitempty"`
	Rotation *int    `json:"rotation,omitempty"`
}

// --------- Handlers ---------

func (h *TableHandler) List(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" o vacío

	q := h.db.Where("venue_id = ?", venueID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var tables []models.Table
	if err := q.
		Order("capacity ASC, id ASC").
		Find(&tables).Error; err != nil {

		httperr.Internal(c, "failed_to_list_tables", "Error al listar mesas.")
		return
	}

	httpresp.List(c, tables)
}

// Live devuelve el plano con el estado derivado de cada mesa ahora mismo.
func (h *TableHandler) Live(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	tables, err := h.liveUC.Execute(c.Request.Context(), venueID)
	if err != nil {
		httperr.Internal(c, "failed_to_resolve_tables", "Error al resolver el plano de mesas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func (h *TableHandler) Create(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	table := models.Table{
		VenueID:  venueID,
		Label:    req.Label,
		Capacity: req.Capacity,
		Active:   true,
		X:        req.X,
		Y:        req.Y,
		W:        req.W,
		H:        req.H,
		Shape:    strings.ToLower(req.Shape),
		Rotation: req.Rotation,
	}

	if err := h.db.Create(&table).Error; err != nil {
		httperr.Internal(c, "failed_to_create_table", "Error al crear la mesa.")
		return
	}

	writeAudit(h.db, venueID, &userID, "table_created", "table", &table.ID, nil)
	h.events.Notify(venueID, "table", table.ID, "created")

	c.JSON(http.StatusCreated, table)
}

func (h *TableHandler) Update(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id := c.Param("id")

	var table models.Table
	if err := h.db.
		Where("id = ? AND venue_id = ?", id, venueID).
		First(&table).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "table_not_found", "Mesa no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_table", "Error al buscar la mesa.")
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Label != nil {
		table.Label = *req.Label
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			httperr.BadRequest(c, "invalid_capacity", "La capacidad debe ser positiva.")
			return
		}
		table.Capacity = *req.Capacity
	}
	if req.Active != nil {
		table.Active = *req.Active
	}
	if req.Cleaning != nil {
		table.Cleaning = *req.Cleaning
	}
	if req.X != nil {
		table.X = *req.X
	}
	if req.Y != nil {
		table.Y = *req.Y
	}
	if req.W != nil {
		table.W = *req.W
	}
	if req.H != nil {
		table.H = *req.H
	}
	if req.Shape != nil {
		table.Shape = strings.ToLower(*req.Shape)
	}
	if req.Rotation != nil {
		table.Rotation = *req.Rotation
	}

	if err := h.db.Save(&table).Error; err != nil {
		httperr.Internal(c, "failed_to_update_table", "Error al guardar la mesa.")
		return
	}

	writeAudit(h.db, venueID, &userID, "table_updated", "table", &table.ID, nil)
	h.events.Notify(venueID, "table", table.ID, "updated")

	c.JSON(http.StatusOK, table)
}
