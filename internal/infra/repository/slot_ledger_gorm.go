package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/models"
)

type SlotLedgerGormRepository struct {
	db *gorm.DB
}

func NewSlotLedgerGormRepository(db *gorm.DB) *SlotLedgerGormRepository {
	return &SlotLedgerGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *SlotLedgerGormRepository) FindByDay(
	ctx context.Context,
	day time.Time,
) (*models.AvailableDate, error) {

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var date models.AvailableDate
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		First(&date).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("date_not_available")
	}
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func (r *SlotLedgerGormRepository) Get(
	ctx context.Context,
	dateID uint,
) (*models.AvailableDate, error) {

	var date models.AvailableDate
	err := r.db.WithContext(ctx).First(&date, dateID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("date_not_found")
	}
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func (r *SlotLedgerGormRepository) ListAvailable(
	ctx context.Context,
	from time.Time,
	until *time.Time,
) ([]models.AvailableDate, error) {

	q := r.db.WithContext(ctx).
		Where("date >= ?", from).
		Where("current_appointments < max_appointments").
		Order("date ASC")

	if until != nil {
		q = q.Where("date < ?", *until)
	}

	var dates []models.AvailableDate
	if err := q.Find(&dates).Error; err != nil {
		return nil, err
	}

	return dates, nil
}

// --------------------------------------------------
// Capacity counter
// --------------------------------------------------

// Reserve is a single conditional UPDATE, so concurrent reservations
// for the same date can never push the counter past max.
func (r *SlotLedgerGormRepository) Reserve(
	ctx context.Context,
	dateID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AvailableDate{}).
		Where("id = ? AND current_appointments < max_appointments", dateID).
		UpdateColumn("current_appointments", gorm.Expr("current_appointments + 1"))

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.AvailableDate{}).
			Where("id = ?", dateID).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return httperr.ErrBusiness("date_not_found")
		}
		return httperr.ErrBusiness("capacity_exceeded")
	}

	return nil
}

// Release decrements the counter, floored at zero. Releasing a date
// that is already at zero is a no-op, not an error.
func (r *SlotLedgerGormRepository) Release(
	ctx context.Context,
	dateID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.AvailableDate{}).
		Where("id = ? AND current_appointments > 0", dateID).
		UpdateColumn("current_appointments", gorm.Expr("current_appointments - 1")).
		Error
}

// --------------------------------------------------
// Admin management
// --------------------------------------------------

func (r *SlotLedgerGormRepository) Create(
	ctx context.Context,
	day time.Time,
	maxAppointments int,
) (*models.AvailableDate, error) {

	if maxAppointments < 1 {
		maxAppointments = 1
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AvailableDate{}).
		Where("date >= ? AND date < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness("date_already_exists")
	}

	date := models.AvailableDate{
		Date:                dayStart,
		MaxAppointments:     maxAppointments,
		CurrentAppointments: 0,
	}

	if err := r.db.WithContext(ctx).Create(&date).Error; err != nil {
		return nil, err
	}

	return &date, nil
}

// CreateRange creates every day in [from, to], skipping days that
// already exist.
func (r *SlotLedgerGormRepository) CreateRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
	maxAppointments int,
) ([]models.AvailableDate, error) {

	if to.Before(from) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	var created []models.AvailableDate
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date, err := r.Create(ctx, day, maxAppointments)
		if err != nil {
			if httperr.IsBusiness(err, "date_already_exists") {
				continue
			}
			return nil, err
		}
		created = append(created, *date)
	}

	return created, nil
}

func (r *SlotLedgerGormRepository) Delete(
	ctx context.Context,
	dateID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.AvailableDate{}, dateID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("date_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.SlotLedger = (*SlotLedgerGormRepository)(nil)
