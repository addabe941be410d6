package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/httperr"
	"github.com/Luexi/PAITITI/internal/httpresp"
	"github.com/Luexi/PAITITI/internal/media"
	"github.com/Luexi/PAITITI/internal/middleware"
	"github.com/Luexi/PAITITI/internal/models"
)

// Límite duro de subida; las fotos del salón no deberían acercarse.
const maxImageBytes = 10 << 20

type GalleryHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewGalleryHandler(db *gorm.DB, uploader *media.Uploader) *GalleryHandler {
	return &GalleryHandler{db: db, uploader: uploader}
}

// ListPublic expone la galería sin autenticación.
func (h *GalleryHandler) ListPublic(c *gin.Context) {
	venueID := venueIDFromQuery(c)

	var images []models.GalleryImage
	if err := h.db.
		Where("venue_id = ?", venueID).
		Order("sort_order ASC, id ASC").
		Find(&images).Error; err != nil {

		httperr.Internal(c, "failed_to_list_gallery", "Error al listar la galería.")
		return
	}

	httpresp.List(c, images)
}

func (h *GalleryHandler) Upload(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.uploader == nil {
		httperr.Internal(c, "gallery_disabled", "La galería no está configurada en este despliegue.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Imagen obligatoria.")
		return
	}
	if file.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "La imagen supera el tamaño máximo.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Error al leer la imagen.")
		return
	}
	defer src.Close()

	key := fmt.Sprintf("gallery/%d/%s.webp", venueID, uuid.NewString())

	url, err := h.uploader.UploadImage(c.Request.Context(), key, src)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Error al subir la imagen.")
		return
	}

	image := models.GalleryImage{
		VenueID: venueID,
		Key:     key,
		URL:     url,
		Title:   c.PostForm("title"),
	}

	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_save_image", "Error al guardar la imagen.")
		return
	}

	writeAudit(h.db, venueID, &userID, "gallery_image_uploaded", "gallery_image", &image.ID, nil)

	c.JSON(http.StatusCreated, image)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var image models.GalleryImage
	if err := h.db.
		Where("id = ? AND venue_id = ?", id, venueID).
		First(&image).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "image_not_found", "Imagen no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_image", "Error al buscar la imagen.")
		return
	}

	if err := h.db.Delete(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Error al eliminar la imagen.")
		return
	}

	writeAudit(h.db, venueID, &userID, "gallery_image_deleted", "gallery_image", &image.ID, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
