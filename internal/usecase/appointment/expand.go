package appointment

import (
	"context"

	domain "github.com/salonkit/salon-manager/internal/domain/appointment"
	"github.com/salonkit/salon-manager/internal/dto"
	"github.com/salonkit/salon-manager/internal/models"
)

// expandViews resolves the weak service/staff references of each
// appointment into embedded projections. Dangling ids simply yield a nil
// projection; the denormalized fields on the row keep the display intact.
func expandViews(
	ctx context.Context,
	repo domain.Repository,
	userID uint,
	aps []models.Appointment,
) ([]dto.AppointmentView, error) {

	var serviceIDs, staffIDs []uint
	seenSvc := map[uint]bool{}
	seenStaff := map[uint]bool{}
	for _, ap := range aps {
		if ap.ServiceID != nil && !seenSvc[*ap.ServiceID] {
			seenSvc[*ap.ServiceID] = true
			serviceIDs = append(serviceIDs, *ap.ServiceID)
		}
		if ap.AssignedStaff != nil && !seenStaff[*ap.AssignedStaff] {
			seenStaff[*ap.AssignedStaff] = true
			staffIDs = append(staffIDs, *ap.AssignedStaff)
		}
	}

	services := map[uint]models.Service{}
	if len(serviceIDs) > 0 {
		var err error
		services, err = repo.GetServicesByIDs(ctx, userID, serviceIDs)
		if err != nil {
			return nil, err
		}
	}

	staff := map[uint]models.TeamMember{}
	if len(staffIDs) > 0 {
		var err error
		staff, err = repo.GetTeamMembersByIDs(ctx, userID, staffIDs)
		if err != nil {
			return nil, err
		}
	}

	views := make([]dto.AppointmentView, 0, len(aps))
	for _, ap := range aps {
		view := dto.AppointmentView{Appointment: ap}

		if ap.ServiceID != nil {
			if svc, ok := services[*ap.ServiceID]; ok {
				view.Service = &dto.ServiceRef{
					ID:          svc.ID,
					ServiceName: svc.Name,
					Price:       firstOptionPrice(svc),
				}
			}
		}
		if ap.AssignedStaff != nil {
			if m, ok := staff[*ap.AssignedStaff]; ok {
				view.Staff = &dto.StaffRef{
					ID:        m.ID,
					FirstName: m.FirstName,
					LastName:  m.LastName,
					Role:      m.Role,
				}
			}
		}

		views = append(views, view)
	}

	return views, nil
}

func expandOne(
	ctx context.Context,
	repo domain.Repository,
	userID uint,
	ap *models.Appointment,
) (*dto.AppointmentView, error) {
	views, err := expandViews(ctx, repo, userID, []models.Appointment{*ap})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func firstOptionPrice(svc models.Service) string {
	if len(svc.Options) > 0 {
		return svc.Options[0].Price
	}
	return ""
}
