package booking

import (
	"context"
	"time"

	"github.com/idohairstudios/salon-booking/internal/models"
)

// SlotLedger answers "is this date bookable?" and owns the capacity
// counter. Reserve and Release must be atomic conditional updates at the
// storage layer.
type SlotLedger interface {
	FindByDay(
		ctx context.Context,
		day time.Time,
	) (*models.AvailableDate, error)

	// ListAvailable returns dates with remaining capacity, ascending,
	// starting at from; until (exclusive) bounds a month window.
	ListAvailable(
		ctx context.Context,
		from time.Time,
		until *time.Time,
	) ([]models.AvailableDate, error)

	// Reserve increments the counter only while current < max.
	Reserve(ctx context.Context, dateID uint) error

	// Release decrements the counter, floored at zero.
	Release(ctx context.Context, dateID uint) error

	Create(
		ctx context.Context,
		day time.Time,
		maxAppointments int,
	) (*models.AvailableDate, error)

	CreateRange(
		ctx context.Context,
		from time.Time,
		to time.Time,
		maxAppointments int,
	) ([]models.AvailableDate, error)

	Get(ctx context.Context, dateID uint) (*models.AvailableDate, error)

	Delete(ctx context.Context, dateID uint) error
}

// AppointmentStore persists appointments through their lifecycle.
type AppointmentStore interface {
	CreatePending(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindByReference(
		ctx context.Context,
		reference string,
	) (*models.Appointment, error)

	// DeleteByReference is the compensating delete used when payment
	// initialization fails after the pending record was created.
	DeleteByReference(ctx context.Context, reference string) error

	Update(ctx context.Context, ap *models.Appointment) error

	// ListPendingBefore feeds the abandoned-appointment sweep.
	ListPendingBefore(
		ctx context.Context,
		cutoff time.Time,
	) ([]models.Appointment, error)

	// CountActiveOn guards date deletion against dangling appointments.
	CountActiveOn(ctx context.Context, day time.Time) (int64, error)
}

// CatalogReader is the read-only view of the style catalog the
// orchestrator needs to validate and snapshot prices.
type CatalogReader interface {
	FindStyle(
		ctx context.Context,
		idOrName string,
	) (*models.HairStyle, error)
}
