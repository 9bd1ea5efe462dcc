package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/middleware"
	ucAppointment "github.com/salonkit/salon-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	statusUC *ucAppointment.ChangeStatus
	listUC   *ucAppointment.ListAppointments
	deleteUC *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	statusUC *ucAppointment.ChangeStatus,
	listUC *ucAppointment.ListAppointments,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		statusUC: statusUC,
		listUC:   listUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateAppointmentRequest has no status field: new appointments always
// start as Scheduled regardless of input.
type CreateAppointmentRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerType  string `json:"customerType"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	Date string `json:"date"`
	Time string `json:"time"`

	Duration     string `json:"duration"`
	ServiceCount string `json:"serviceCount"`
	GenderType   string `json:"genderType"`

	ServiceName   string `json:"serviceName"`
	ServiceID     *uint  `json:"serviceId"`
	AssignedStaff *uint  `json:"assignedStaff"`

	Price string `json:"price"`
	Notes string `json:"notes"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

// writeBusinessError maps use-case errors onto HTTP. Ownership misses and
// nonexistent rows share the same 404 shape.
func writeBusinessError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		status := http.StatusBadRequest
		if be.Code == "appointment_not_found" {
			status = http.StatusNotFound
		}
		httperr.Write(c, status, be.Code, be.Message)
		return
	}
	httperr.Internal(c, "internal_error", "Server error")
}

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	views, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Server error while fetching appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": views,
	})
}

func (h *AppointmentHandler) ListByDateRange(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		// Without a window this is just the full listing.
		h.List(c)
		return
	}

	views, err := h.listUC.ExecuteRange(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": views,
	})
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	view, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:        userID,
		CustomerName:  req.CustomerName,
		CustomerType:  req.CustomerType,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      req.Duration,
		ServiceCount:  req.ServiceCount,
		GenderType:    req.GenderType,
		ServiceName:   req.ServiceName,
		ServiceID:     req.ServiceID,
		AssignedStaff: req.AssignedStaff,
		Price:         req.Price,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Appointment created successfully",
		"appointment": view,
	})
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req ucAppointment.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	view, err := h.updateUC.Execute(c.Request.Context(), userID, id, req)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment updated successfully",
		"appointment": view,
	})
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment status updated successfully",
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment deleted successfully",
	})
}
