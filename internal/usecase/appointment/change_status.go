package appointment

import (
	"context"

	"github.com/salonkit/salon-manager/internal/audit"
	domain "github.com/salonkit/salon-manager/internal/domain/appointment"
	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/models"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves an owned appointment to the given status. Any status may
// follow any other; only membership in the enumeration is checked.
func (uc *ChangeStatus) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	if !domain.IsValid(domain.Status(status)) {
		return nil, httperr.ErrBusiness("invalid_value", "Invalid status")
	}

	ap, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found", "Appointment not found")
	}

	ap.Status = status

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": status},
	})

	return ap, nil
}
