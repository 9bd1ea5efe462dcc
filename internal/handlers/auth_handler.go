package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonkit/salon-manager/internal/auth"
	"github.com/salonkit/salon-manager/internal/config"
	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/httpresp"
	"github.com/salonkit/salon-manager/internal/models"
	"github.com/salonkit/salon-manager/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type SignupRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type IdentifyRequest struct {
	Email string `json:"email" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsValidEmail(email) {
		httperr.BadRequest(c, "invalid_email", "A valid email is required")
		return
	}

	if ok, msg := validators.ValidatePassword(req.Password); !ok {
		httperr.BadRequest(c, "weak_password", msg)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	user := models.User{
		Email:            email,
		PasswordHash:     hash,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		SelectedServices: []string{},
	}

	// The unique index is the source of truth for duplicates; a racing
	// signup for the same email loses here, not at a pre-check.
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_taken", "An account with this email already exists")
			return
		}
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	token, err := auth.MakeToken(user.ID, user.Email, h.config.JWTSecret)
	if err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusCreated, "Account created successfully", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a bad password: never reveal which
			// half of the credential was wrong.
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
			return
		}
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	token, err := auth.MakeToken(user.ID, user.Email, h.config.JWTSecret)
	if err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Login successful", gin.H{
		"token":               token,
		"onboardingCompleted": user.OnboardingCompleted,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}

// Identify reports whether an email is already registered, so the client
// can route to login vs. signup before asking for a password.
func (h *AuthHandler) Identify(c *gin.Context) {
	var req IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email is required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.OK(c, gin.H{"exists": count > 0})
}
