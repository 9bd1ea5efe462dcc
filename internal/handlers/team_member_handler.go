package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/httpresp"
	"github.com/salonkit/salon-manager/internal/middleware"
	"github.com/salonkit/salon-manager/internal/models"
)

type TeamMemberHandler struct {
	db *gorm.DB
}

func NewTeamMemberHandler(db *gorm.DB) *TeamMemberHandler {
	return &TeamMemberHandler{db: db}
}

// --------- Requests ---------

type CreateTeamMemberRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Phone     string `json:"phone" binding:"required"`

	Avatar     string `json:"avatar"`
	Status     string `json:"status"`
	HourlyRate string `json:"hourlyRate"`
	Available  *bool  `json:"available"`
	Email      string `json:"email"`
	Address    string `json:"address"`

	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	BankName          string `json:"bankName"`
	BankAddress       string `json:"bankAddress"`
}

type UpdateTeamMemberRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Role       *string `json:"role"`
	Phone      *string `json:"phone"`
	Avatar     *string `json:"avatar"`
	Status     *string `json:"status"`
	HourlyRate *string `json:"hourlyRate"`
	Available  *bool   `json:"available"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`

	AccountHolderName *string `json:"accountHolderName"`
	AccountNumber     *string `json:"accountNumber"`
	BankName          *string `json:"bankName"`
	BankAddress       *string `json:"bankAddress"`
}

// --------- Handlers ---------

func (h *TeamMemberHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var members []models.TeamMember
	if err := h.db.Where("user_id = ?", userID).Order("id ASC").Find(&members).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error. Failed to fetch team members.")
		return
	}

	httpresp.OK(c, gin.H{"members": members})
}

func (h *TeamMemberHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "First name, last name, role and phone are required")
		return
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.StaffAvailable
	} else if !models.IsValidStaffStatus(status) {
		httperr.BadRequest(c, "invalid_value", "Invalid status")
		return
	}

	hourlyRate := strings.TrimSpace(req.HourlyRate)
	if hourlyRate == "" {
		hourlyRate = "$0/hr"
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	member := models.TeamMember{
		UserID:            userID,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Role:              strings.TrimSpace(req.Role),
		Phone:             strings.TrimSpace(req.Phone),
		Avatar:            req.Avatar,
		Status:            status,
		HourlyRate:        hourlyRate,
		Available:         available,
		Email:             strings.TrimSpace(req.Email),
		Address:           strings.TrimSpace(req.Address),
		AccountHolderName: strings.TrimSpace(req.AccountHolderName),
		AccountNumber:     strings.TrimSpace(req.AccountNumber),
		BankName:          strings.TrimSpace(req.BankName),
		BankAddress:       strings.TrimSpace(req.BankAddress),
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error. Failed to add team member.")
		return
	}

	httpresp.Message(c, http.StatusCreated, "Team member added successfully", gin.H{"member": member})
}

func (h *TeamMemberHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var member models.TeamMember
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "member_not_found", "Team member not found or you are not authorized to update it.")
			return
		}
		httperr.Internal(c, "internal_error", "Server error. Failed to update team member.")
		return
	}

	var req UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			httperr.BadRequest(c, "missing_field", "First name is required")
			return
		}
		member.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			httperr.BadRequest(c, "missing_field", "Last name is required")
			return
		}
		member.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Role != nil {
		if strings.TrimSpace(*req.Role) == "" {
			httperr.BadRequest(c, "missing_field", "Role is required")
			return
		}
		member.Role = strings.TrimSpace(*req.Role)
	}
	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			httperr.BadRequest(c, "missing_field", "Phone is required")
			return
		}
		member.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Status != nil {
		if !models.IsValidStaffStatus(*req.Status) {
			httperr.BadRequest(c, "invalid_value", "Invalid status")
			return
		}
		member.Status = *req.Status
	}
	if req.Avatar != nil {
		member.Avatar = *req.Avatar
	}
	if req.HourlyRate != nil {
		member.HourlyRate = *req.HourlyRate
	}
	if req.Available != nil {
		member.Available = *req.Available
	}
	if req.Email != nil {
		member.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		member.Address = strings.TrimSpace(*req.Address)
	}
	if req.AccountHolderName != nil {
		member.AccountHolderName = strings.TrimSpace(*req.AccountHolderName)
	}
	if req.AccountNumber != nil {
		member.AccountNumber = strings.TrimSpace(*req.AccountNumber)
	}
	if req.BankName != nil {
		member.BankName = strings.TrimSpace(*req.BankName)
	}
	if req.BankAddress != nil {
		member.BankAddress = strings.TrimSpace(*req.BankAddress)
	}

	if err := h.db.Save(&member).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error. Failed to update team member.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Team member updated successfully", gin.H{"member": member})
}

func (h *TeamMemberHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.TeamMember{})
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "Server error. Failed to delete team member.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "member_not_found", "Team member not found or you are not authorized to delete it.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Team member deleted successfully!", nil)
}
