package appointment

import (
	"context"
	"time"

	domain "github.com/salonkit/salon-manager/internal/domain/appointment"
	"github.com/salonkit/salon-manager/internal/dto"
	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every appointment owned by the user, ordered by date
// then time, with service/staff references expanded.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentView, error) {

	aps, err := uc.repo.ListAppointments(ctx, userID)
	if err != nil {
		return nil, err
	}
	return expandViews(ctx, uc.repo, userID, aps)
}

// ExecuteRange narrows the listing to an inclusive date window.
func (uc *ListAppointments) ExecuteRange(
	ctx context.Context,
	userID uint,
	startDate string,
	endDate string,
) ([]dto.AppointmentView, error) {

	if _, err := time.Parse(models.DateLayout, startDate); err != nil {
		return nil, httperr.ErrBusiness("invalid_date", "startDate must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(models.DateLayout, endDate); err != nil {
		return nil, httperr.ErrBusiness("invalid_date", "endDate must be in YYYY-MM-DD format")
	}

	aps, err := uc.repo.ListAppointmentsInRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return expandViews(ctx, uc.repo, userID, aps)
}
