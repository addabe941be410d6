package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/config"
	"github.com/Luexi/PAITITI/internal/models"
	"github.com/Luexi/PAITITI/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	VenueName    string `json:"venue_name" binding:"required"`
	VenueSlug    string `json:"venue_slug" binding:"required"`
	VenuePhone   string `json:"venue_phone"`
	VenueAddress string `json:"venue_address"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register da de alta un venue con su usuario owner, la configuración de
// reservas por defecto y un horario inicial para los siete días.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.VenueSlug))

	var count int64
	h.db.Model(&models.Venue{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug_already_exists"})
		return
	}

	if req.VenuePhone != "" && !validators.IsValidPhone(req.VenuePhone) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_phone",
			"message": "El teléfono del restaurante no parece ser válido.",
		})
		return
	}

	venue := models.Venue{
		Name:    req.VenueName,
		Slug:    slug,
		Phone:   req.VenuePhone,
		Address: req.VenueAddress,
	}

	if err := h.db.Create(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_venue"})
		return
	}

	settings := models.Settings{
		VenueID:                venue.ID,
		SlotMinutes:            30,
		DefaultDurationMinutes: 90,
		MaxPartySize:           10,
		MinNoticeMinutes:       120,
		MaxDaysAhead:           30,
	}
	if err := h.db.Create(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_settings"})
		return
	}

	var hours []models.OpeningHours
	for weekday := 0; weekday <= 6; weekday++ {
		hours = append(hours, models.OpeningHours{
			VenueID:   venue.ID,
			Weekday:   weekday,
			OpenTime:  "13:00",
			CloseTime: "23:00",
		})
	}
	if err := h.db.Create(&hours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_opening_hours"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user := models.User{
		VenueID:      venue.ID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "owner",
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"phone":    user.Phone,
			"role":     user.Role,
			"venue_id": user.VenueID,
		},
		"venue": gin.H{
			"id":      venue.ID,
			"name":    venue.Name,
			"slug":    venue.Slug,
			"phone":   venue.Phone,
			"address": venue.Address,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Preload("Venue").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"phone":    user.Phone,
			"role":     user.Role,
			"venue_id": user.VenueID,
		},
		"venue": gin.H{
			"id":      user.Venue.ID,
			"name":    user.Venue.Name,
			"slug":    user.Venue.Slug,
			"phone":   user.Venue.Phone,
			"address": user.Venue.Address,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"venueId": user.VenueID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
