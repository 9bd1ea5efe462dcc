package appointment

import (
	"context"

	"github.com/salonkit/salon-manager/internal/audit"
	domain "github.com/salonkit/salon-manager/internal/domain/appointment"
	"github.com/salonkit/salon-manager/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	deleted, err := uc.repo.DeleteAppointment(ctx, userID, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("appointment_not_found", "Appointment not found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
