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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	CustomerName  string
	CustomerType  string
	CustomerPhone string
	CustomerEmail string

	Date string
	Time string

	Duration     string
	ServiceCount string
	GenderType   string

	ServiceName   string
	ServiceID     *uint
	AssignedStaff *uint

	Price string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment resolves the authoritative serviceName/duration/price
// for a new appointment from the service reference, falling back to the
// client-supplied values when the reference is absent, dangling, or the
// service carries no options.
type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*dto.AppointmentView, error) {

	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		return nil, httperr.ErrBusiness("missing_field", "Customer name is required")
	}
	customerPhone := strings.TrimSpace(in.CustomerPhone)
	if customerPhone == "" {
		return nil, httperr.ErrBusiness("missing_field", "Customer phone is required")
	}
	customerEmail := strings.TrimSpace(in.CustomerEmail)
	if customerEmail == "" {
		return nil, httperr.ErrBusiness("missing_field", "Customer email is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, httperr.ErrBusiness("missing_field", "Date is required")
	}
	if _, err := time.Parse(models.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date", "Date must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(in.Time) == "" {
		return nil, httperr.ErrBusiness("missing_field", "Time is required")
	}

	// Client-supplied values are the fallback; a resolved service
	// overrides them.
	serviceName := strings.TrimSpace(in.ServiceName)
	duration := strings.TrimSpace(in.Duration)
	price := strings.TrimSpace(in.Price)

	if in.ServiceID != nil {
		svc, err := uc.repo.GetService(ctx, in.UserID, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc != nil {
			serviceName = svc.Name
			if len(svc.Options) > 0 {
				// Fixed tie-break: the first option wins.
				duration = svc.Options[0].Duration
				price = svc.Options[0].Price
			}
		}
	}

	if duration == "" {
		return nil, httperr.ErrBusiness("missing_field", "Duration is required")
	}

	customerType := strings.TrimSpace(in.CustomerType)
	if customerType == "" {
		customerType = models.CustomerNonMember
	} else if !models.IsValidCustomerType(customerType) {
		return nil, httperr.ErrBusiness("invalid_value", "Invalid customer type")
	}

	genderType := strings.TrimSpace(in.GenderType)
	if genderType == "" {
		genderType = "Unisex"
	} else if !models.IsValidGenderType(genderType) {
		return nil, httperr.ErrBusiness("invalid_value", "Invalid gender type")
	}

	serviceCount := strings.TrimSpace(in.ServiceCount)
	if serviceCount == "" {
		serviceCount = "1 service"
	}

	ap := &models.Appointment{
		CreatedBy:     in.UserID,
		CustomerName:  customerName,
		CustomerType:  customerType,
		CustomerPhone: customerPhone,
		CustomerEmail: customerEmail,
		Date:          in.Date,
		Time:          strings.TrimSpace(in.Time),
		Duration:      duration,
		ServiceCount:  serviceCount,
		GenderType:    genderType,
		ServiceName:   serviceName,
		ServiceID:     in.ServiceID,
		AssignedStaff: in.AssignedStaff,
		Price:         price,
		Notes:         strings.TrimSpace(in.Notes),
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return expandOne(ctx, uc.repo, in.UserID, ap)
}
