package appointment

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/salonkit/salon-manager/internal/audit"
	"github.com/salonkit/salon-manager/internal/httperr"
	"github.com/salonkit/salon-manager/internal/models"
)

// fakeRepo keeps everything in maps so the resolution logic can be
// exercised without a database.
type fakeRepo struct {
	services     map[uint]models.Service
	members      map[uint]models.TeamMember
	appointments map[uint]models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[uint]models.Service{},
		members:      map[uint]models.TeamMember{},
		appointments: map[uint]models.Appointment{},
	}
}

func (f *fakeRepo) GetService(_ context.Context, userID, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.UserID != userID {
		return nil, nil
	}
	return &svc, nil
}

func (f *fakeRepo) GetServicesByIDs(_ context.Context, userID uint, ids []uint) (map[uint]models.Service, error) {
	out := map[uint]models.Service{}
	for _, id := range ids {
		if svc, ok := f.services[id]; ok && svc.UserID == userID {
			out[id] = svc
		}
	}
	return out, nil
}

func (f *fakeRepo) GetTeamMembersByIDs(_ context.Context, userID uint, ids []uint) (map[uint]models.TeamMember, error) {
	out := map[uint]models.TeamMember{}
	for _, id := range ids {
		if m, ok := f.members[id]; ok && m.UserID == userID {
			out[id] = m
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, userID, appointmentID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.CreatedBy != userID {
		return nil, nil
	}
	return &ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, userID, appointmentID uint) (bool, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.CreatedBy != userID {
		return false, nil
	}
	delete(f.appointments, appointmentID)
	return true, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CreatedBy == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsInRange(_ context.Context, userID uint, startDate, endDate string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CreatedBy == userID && ap.Date >= startDate && ap.Date <= endDate {
			out = append(out, ap)
		}
	}
	return out, nil
}

func testDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	return audit.NewDispatcher(audit.New(db))
}

func validInput(userID uint) CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:        userID,
		CustomerName:  "Jordan Reyes",
		CustomerPhone: "555-0101",
		CustomerEmail: "jordan@example.com",
		Date:          "2026-09-15",
		Time:          "10:30 AM",
	}
}

func TestCreateResolvesFromFirstOption(t *testing.T) {
	repo := newFakeRepo()
	repo.services[7] = models.Service{
		ID:     7,
		UserID: 1,
		Name:   "Haircut",
		Options: []models.ServiceOption{
			{Name: "Cut", Duration: "30 min", Price: "$30"},
			{Name: "Cut+Color", Duration: "90 min", Price: "$120"},
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher(t))

	svcID := uint(7)
	in := validInput(1)
	in.ServiceID = &svcID
	in.ServiceName = "Client Says Otherwise"
	in.Duration = "99 min"
	in.Price = "$999"

	view, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Haircut", view.ServiceName)
	assert.Equal(t, "30 min", view.Duration)
	assert.Equal(t, "$30", view.Price)
	require.NotNil(t, view.Service)
	assert.Equal(t, "Haircut", view.Service.ServiceName)
}

func TestCreateFallsBackWithoutService(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher(t))

	in := validInput(1)
	in.ServiceName = "Walk-in Trim"
	in.Duration = "25 min"
	in.Price = "$20"

	view, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Walk-in Trim", view.ServiceName)
	assert.Equal(t, "25 min", view.Duration)
	assert.Equal(t, "$20", view.Price)
	assert.Nil(t, view.Service)
}

func TestCreateDanglingServiceFallsBack(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher(t))

	missing := uint(424242)
	in := validInput(1)
	in.ServiceID = &missing
	in.ServiceName = "Walk-in Trim"
	in.Duration = "25 min"

	view, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Walk-in Trim", view.ServiceName)
	assert.Equal(t, "25 min", view.Duration)
	assert.Nil(t, view.Service)
}

func TestCreateForeignServiceIsInvisible(t *testing.T) {
	repo := newFakeRepo()
	repo.services[7] = models.Service{
		ID:     7,
		UserID: 2, // someone else's service
		Name:   "Haircut",
		Options: []models.ServiceOption{
			{Name: "Cut", Duration: "30 min", Price: "$30"},
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher(t))

	svcID := uint(7)
	in := validInput(1)
	in.ServiceID = &svcID
	in.ServiceName = "My Own Name"
	in.Duration = "40 min"

	view, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "My Own Name", view.ServiceName)
	assert.Equal(t, "40 min", view.Duration)
	assert.Nil(t, view.Service)
}

func TestCreateOptionlessServiceKeepsClientValues(t *testing.T) {
	repo := newFakeRepo()
	repo.services[3] = models.Service{
		ID:     3,
		UserID: 1,
		Name:   "Consultation",
	}
	uc := NewCreateAppointment(repo, testDispatcher(t))

	svcID := uint(3)
	in := validInput(1)
	in.ServiceID = &svcID
	in.Duration = "15 min"
	in.Price = "Free"

	view, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// Name comes from the service, duration and price stay client-supplied.
	assert.Equal(t, "Consultation", view.ServiceName)
	assert.Equal(t, "15 min", view.Duration)
	assert.Equal(t, "Free", view.Price)
}

func TestCreateRejectsMissingDuration(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher(t))

	in := validInput(1)
	in.Duration = "   "

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "Duration is required", be.Message)
}

func TestCreateRequiredFieldMessages(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher(t))

	tests := []struct {
		name    string
		mutate  func(*CreateAppointmentInput)
		message string
	}{
		{"name", func(in *CreateAppointmentInput) { in.CustomerName = "" }, "Customer name is required"},
		{"phone", func(in *CreateAppointmentInput) { in.CustomerPhone = "" }, "Customer phone is required"},
		{"email", func(in *CreateAppointmentInput) { in.CustomerEmail = "" }, "Customer email is required"},
		{"date", func(in *CreateAppointmentInput) { in.Date = "" }, "Date is required"},
		{"date format", func(in *CreateAppointmentInput) { in.Date = "15/09/2026" }, "Date must be in YYYY-MM-DD format"},
		{"time", func(in *CreateAppointmentInput) { in.Time = "" }, "Time is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(1)
			in.Duration = "30 min"
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)
			be, ok := httperr.AsBusiness(err)
			require.True(t, ok)
			assert.Equal(t, tt.message, be.Message)
		})
	}
}

func TestCreateDefaultsAndForcedStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher(t))

	in := validInput(1)
	in.Duration = "45 min"

	view, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Scheduled", view.Status)
	assert.Equal(t, models.CustomerNonMember, view.CustomerType)
	assert.Equal(t, "Unisex", view.GenderType)
	assert.Equal(t, "1 service", view.ServiceCount)

	stored := repo.appointments[view.ID]
	assert.Equal(t, "Scheduled", stored.Status)
}

func TestCreateRejectsUnknownEnums(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher(t))

	in := validInput(1)
	in.Duration = "30 min"
	in.CustomerType = "VIP"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_value"))

	in = validInput(1)
	in.Duration = "30 min"
	in.GenderType = "Other"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_value"))
}

func TestChangeStatusUnknownAppointment(t *testing.T) {
	uc := NewChangeStatus(newFakeRepo(), testDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 999, "Confirmed")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	_, err = uc.Execute(context.Background(), 1, 999, "Sleeping")
	assert.True(t, httperr.IsBusiness(err, "invalid_value"))
}
