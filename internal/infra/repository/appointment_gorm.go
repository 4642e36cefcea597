package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (r *AppointmentGormRepository) CreatePending(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) FindByReference(
	ctx context.Context,
	reference string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("AddOns").
		Preload("Payments").
		Where("payment_reference = ?", reference).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) DeleteByReference(
	ctx context.Context,
	reference string,
) error {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("payment_reference = ?", reference).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&ap).Error
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(ap).Error
}

// --------------------------------------------------
// Sweep / integrity
// --------------------------------------------------

func (r *AppointmentGormRepository) ListPendingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(domain.StatusPending), cutoff).
		Order("created_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) CountActiveOn(
	ctx context.Context,
	day time.Time,
) (int64, error) {

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Where("status IN ?", []string{
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
			string(domain.StatusNeedsReview),
		}).
		Count(&count).Error

	return count, err
}

// --------------------------------------------------
// Admin listings
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("AddOns").
		Preload("Payments").
		First(&ap, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("AddOns").
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC, time_slot ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.AppointmentStore = (*AppointmentGormRepository)(nil)
