package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/salonkit/salon-manager/internal/audit"
	domain "github.com/salonkit/salon-manager/internal/domain/appointment"
	"github.com/salonkit/salon-manager/internal/dto"
	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/models"
)

// UpdateAppointmentInput is the explicit allow-list of mutable fields.
// Nil pointers leave the stored value untouched; owner and timestamps can
// never be overwritten from a payload. For the reference fields this also
// means a JSON null cannot clear serviceId or assignedStaff, only repoint
// them. References are left to dangle instead of being cleared.
type UpdateAppointmentInput struct {
	CustomerName  *string `json:"customerName"`
	CustomerType  *string `json:"customerType"`
	CustomerPhone *string `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail"`

	Date *string `json:"date"`
	Time *string `json:"time"`

	Duration     *string `json:"duration"`
	ServiceCount *string `json:"serviceCount"`
	GenderType   *string `json:"genderType"`

	ServiceName   *string `json:"serviceName"`
	ServiceID     *uint   `json:"serviceId"`
	AssignedStaff *uint   `json:"assignedStaff"`

	Price  *string `json:"price"`
	Notes  *string `json:"notes"`
	Status *string `json:"status"`
}

// UpdateAppointment applies a full-field update over an owned row. Unlike
// creation, the payload is taken as-is: the service reference is not
// re-resolved against the current service record.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found", "Appointment not found")
	}

	if in.CustomerName != nil {
		v := strings.TrimSpace(*in.CustomerName)
		if v == "" {
			return nil, httperr.ErrBusiness("missing_field", "Customer name is required")
		}
		ap.CustomerName = v
	}
	if in.CustomerType != nil {
		if !models.IsValidCustomerType(*in.CustomerType) {
			return nil, httperr.ErrBusiness("invalid_value", "Invalid customer type")
		}
		ap.CustomerType = *in.CustomerType
	}
	if in.CustomerPhone != nil {
		v := strings.TrimSpace(*in.CustomerPhone)
		if v == "" {
			return nil, httperr.ErrBusiness("missing_field", "Customer phone is required")
		}
		ap.CustomerPhone = v
	}
	if in.CustomerEmail != nil {
		v := strings.TrimSpace(*in.CustomerEmail)
		if v == "" {
			return nil, httperr.ErrBusiness("missing_field", "Customer email is required")
		}
		ap.CustomerEmail = v
	}
	if in.Date != nil {
		if _, err := time.Parse(models.DateLayout, *in.Date); err != nil {
			return nil, httperr.ErrBusiness("invalid_date", "Date must be in YYYY-MM-DD format")
		}
		ap.Date = *in.Date
	}
	if in.Time != nil {
		v := strings.TrimSpace(*in.Time)
		if v == "" {
			return nil, httperr.ErrBusiness("missing_field", "Time is required")
		}
		ap.Time = v
	}
	if in.Duration != nil {
		v := strings.TrimSpace(*in.Duration)
		if v == "" {
			return nil, httperr.ErrBusiness("missing_field", "Duration is required")
		}
		ap.Duration = v
	}
	if in.ServiceCount != nil {
		ap.ServiceCount = strings.TrimSpace(*in.ServiceCount)
	}
	if in.GenderType != nil {
		if !models.IsValidGenderType(*in.GenderType) {
			return nil, httperr.ErrBusiness("invalid_value", "Invalid gender type")
		}
		ap.GenderType = *in.GenderType
	}
	if in.ServiceName != nil {
		ap.ServiceName = strings.TrimSpace(*in.ServiceName)
	}
	if in.ServiceID != nil {
		ap.ServiceID = in.ServiceID
	}
	if in.AssignedStaff != nil {
		ap.AssignedStaff = in.AssignedStaff
	}
	if in.Price != nil {
		ap.Price = strings.TrimSpace(*in.Price)
	}
	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Status != nil {
		if !domain.IsValid(domain.Status(*in.Status)) {
			return nil, httperr.ErrBusiness("invalid_value", "Invalid status")
		}
		ap.Status = *in.Status
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return expandOne(ctx, uc.repo, userID, ap)
}
