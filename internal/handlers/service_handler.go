package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"

	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/httpresp"
	"github.com/salonkit/salon-manager/internal/middleware"
	"github.com/salonkit/salon-manager/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type ServiceOptionInput struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
	Notes    string `json:"notes"`
}

type ServiceRequest struct {
	ServiceName     string               `json:"serviceName"`
	Description     string               `json:"description"`
	MultipleOptions bool                 `json:"multipleOptions"`
	Options         []ServiceOptionInput `json:"options"`
}

// validate enforces the service invariant: a non-blank name and at least
// one fully filled option.
func (req *ServiceRequest) validate() (string, bool) {
	if strings.TrimSpace(req.ServiceName) == "" {
		return "Service name is required", false
	}
	if len(req.Options) == 0 {
		return "At least one option is required", false
	}
	for i, opt := range req.Options {
		if strings.TrimSpace(opt.Name) == "" {
			return fmt.Sprintf("Option %d name is required", i+1), false
		}
		if strings.TrimSpace(opt.Duration) == "" {
			return fmt.Sprintf("Option %d duration is required", i+1), false
		}
		if strings.TrimSpace(opt.Price) == "" {
			return fmt.Sprintf("Option %d price is required", i+1), false
		}
	}
	return "", true
}

func (req *ServiceRequest) toOptions() []models.ServiceOption {
	opts := make([]models.ServiceOption, 0, len(req.Options))
	for i, opt := range req.Options {
		opts = append(opts, models.ServiceOption{
			Name:     opt.Name,
			Duration: opt.Duration,
			Price:    opt.Price,
			Notes:    opt.Notes,
			Position: i,
		})
	}
	return opts
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var services []models.Service
	err := h.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&services).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.OK(c, gin.H{"services": services})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if msg, ok := req.validate(); !ok {
		httperr.BadRequest(c, "missing_field", msg)
		return
	}

	service := models.Service{
		UserID:          userID,
		Name:            req.ServiceName,
		Description:     req.Description,
		MultipleOptions: req.MultipleOptions,
		Available:       true,
		Options:         req.toOptions(),
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusCreated, "Service created successfully", gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var probe map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&probe, binding.JSON); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	// A body of just {available} toggles availability; anything else is
	// a full update with the same validation as creation.
	if raw, ok := probe["available"]; ok && len(probe) == 1 {
		var available bool
		if err := json.Unmarshal(raw, &available); err != nil {
			httperr.BadRequest(c, "invalid_request", "available must be a boolean")
			return
		}
		h.toggleAvailability(c, userID, id, available)
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		httperr.BadRequest(c, "missing_field", msg)
		return
	}

	var service models.Service
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found or you are not authorized to edit it.")
			return
		}
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	service.Name = req.ServiceName
	service.Description = req.Description
	service.MultipleOptions = req.MultipleOptions
	options := req.toOptions()
	for i := range options {
		options[i].ServiceID = service.ID
	}

	// Options are replaced wholesale; editing them in place would have to
	// diff client state against stored rows.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceOption{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&options).Error; err != nil {
			return err
		}
		service.Options = options
		return tx.Omit("Options").Save(&service).Error
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Service updated successfully", gin.H{"service": service})
}

func (h *ServiceHandler) toggleAvailability(c *gin.Context, userID uint, id string, available bool) {
	res := h.db.Model(&models.Service{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("available", available)
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found or you are not authorized to edit it.")
		return
	}

	var service models.Service
	if err := h.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Service updated successfully", gin.H{"service": service})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found or you are not authorized to delete it.")
			return
		}
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Service deleted successfully", nil)
}
