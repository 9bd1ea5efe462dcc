package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/salonkit/salon-manager/internal/domain/appointment"
	"github.com/salonkit/salon-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// -------- Service --------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	userID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND user_id = ?", serviceID, userID).
		First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetServicesByIDs(
	ctx context.Context,
	userID uint,
	ids []uint,
) (map[uint]models.Service, error) {

	var services []models.Service
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&services).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]models.Service, len(services))
	for _, s := range services {
		out[s.ID] = s
	}
	return out, nil
}

// -------- Team member --------

func (r *AppointmentGormRepository) GetTeamMembersByIDs(
	ctx context.Context,
	userID uint,
	ids []uint,
) (map[uint]models.TeamMember, error) {

	var members []models.TeamMember
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]models.TeamMember, len(members))
	for _, m := range members {
		out[m.ID] = m
	}
	return out, nil
}

// -------- Appointment --------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", appointmentID, userID).
		First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", appointmentID, userID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("date ASC, time ASC").
		Find(&aps).Error
	return aps, err
}

func (r *AppointmentGormRepository) ListAppointmentsInRange(
	ctx context.Context,
	userID uint,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("created_by = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC, time ASC").
		Find(&aps).Error
	return aps, err
}
