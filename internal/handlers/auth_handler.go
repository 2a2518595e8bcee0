package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nerobarber/booking-api/internal/config"
	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/models"
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
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=client barber"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "This email is already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}

	p := models.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.db.Create(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_create_profile", "Could not create the profile.")
		return
	}

	token, err := h.generateToken(&p)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a session token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile": profilePayload(&p),
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var p models.Profile
	if err := h.db.Where("email = ?", email).First(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not look up the profile.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(&p)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profilePayload(&p),
		"token":   token,
	})
}

func profilePayload(p *models.Profile) gin.H {
	return gin.H{
		"id":             p.ID,
		"email":          p.Email,
		"full_name":      p.FullName,
		"phone":          p.Phone,
		"role":           p.Role,
		"loyalty_points": p.LoyaltyPoints,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(p *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub": p.ID.String(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
