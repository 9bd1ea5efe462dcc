package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salonkit/salon-manager/internal/config"
	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/httpresp"
	"github.com/salonkit/salon-manager/internal/middleware"
	"github.com/salonkit/salon-manager/internal/models"
)

type ProfileHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewProfileHandler(db *gorm.DB, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{db: db, config: cfg}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	FirstName           *string   `json:"firstName"`
	LastName            *string   `json:"lastName"`
	SelectedServices    *[]string `json:"selectedServices"`
	TeamSize            *string   `json:"teamSize"`
	OnboardingCompleted *bool     `json:"onboardingCompleted"`
}

type BusinessInfoRequest struct {
	SalonName     string `json:"salonName" binding:"required"`
	SalonLocation string `json:"salonLocation" binding:"required"`
}

// --------- Handlers ---------

func (h *ProfileHandler) loadUser(c *gin.Context) (*models.User, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found")
			return nil, false
		}
		httperr.Internal(c, "internal_error", "Server error")
		return nil, false
	}
	return &user, true
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	httpresp.OK(c, gin.H{"user": user})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.SelectedServices != nil {
		user.SelectedServices = *req.SelectedServices
	}
	if req.TeamSize != nil {
		if !models.IsValidTeamSize(*req.TeamSize) {
			httperr.BadRequest(c, "invalid_value", "Invalid team size")
			return
		}
		user.TeamSize = *req.TeamSize
	}
	if req.OnboardingCompleted != nil {
		user.OnboardingCompleted = *req.OnboardingCompleted
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Profile updated successfully", gin.H{"user": user})
}

// UpdateBusinessInfo stores the salon name and location; completing it
// finishes onboarding.
func (h *ProfileHandler) UpdateBusinessInfo(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	var req BusinessInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Salon name and location are required")
		return
	}

	user.SalonName = strings.TrimSpace(req.SalonName)
	user.SalonLocation = strings.TrimSpace(req.SalonLocation)
	user.OnboardingCompleted = true

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Business info updated successfully", gin.H{"user": user})
}

func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("picture")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "A picture file is required")
		return
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.config.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		httperr.Internal(c, "internal_error", "Failed to store picture")
		return
	}

	user.ProfilePicture = "/uploads/" + name
	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Profile picture updated successfully", gin.H{
		"profilePicture": user.ProfilePicture,
	})
}
