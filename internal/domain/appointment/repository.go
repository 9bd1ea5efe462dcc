package appointment

import (
	"context"

	"github.com/salonkit/salon-manager/internal/models"
)

// Repository is the storage surface the appointment use cases need.
// Every lookup is scoped to the owning user.
type Repository interface {
	// -------- Service (resolution + expansion) --------

	// GetService returns (nil, nil) when no owned service matches;
	// a non-nil error means the storage layer failed.
	GetService(
		ctx context.Context,
		userID uint,
		serviceID uint,
	) (*models.Service, error)

	GetServicesByIDs(
		ctx context.Context,
		userID uint,
		ids []uint,
	) (map[uint]models.Service, error)

	// -------- Team member (expansion) --------
	GetTeamMembersByIDs(
		ctx context.Context,
		userID uint,
		ids []uint,
	) (map[uint]models.TeamMember, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetAppointment returns (nil, nil) when no owned row matches, so a
	// foreign id and a nonexistent id are indistinguishable upstream.
	GetAppointment(
		ctx context.Context,
		userID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeleteAppointment reports whether an owned row was removed.
	DeleteAppointment(
		ctx context.Context,
		userID uint,
		appointmentID uint,
	) (bool, error)

	ListAppointments(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListAppointmentsInRange(
		ctx context.Context,
		userID uint,
		startDate string,
		endDate string,
	) ([]models.Appointment, error)
}
