package booking

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/models"
	"github.com/idohairstudios/salon-booking/internal/timezone"
)

func TestListAvailableDates(t *testing.T) {
	ctx := context.Background()

	t.Run("no month lists from today onward", func(t *testing.T) {
		ledger := &mockLedger{}
		uc := NewListAvailableDates(ledger, &fakeCache{}, testTZ, zerolog.Nop())

		today := timezone.Today(testTZ)
		want := []models.AvailableDate{{ID: 1, MaxAppointments: 3}}

		ledger.On("ListAvailable", mock.Anything, today, (*time.Time)(nil)).Return(want, nil)

		got, err := uc.Execute(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("future month is windowed", func(t *testing.T) {
		ledger := &mockLedger{}
		uc := NewListAvailableDates(ledger, &fakeCache{}, testTZ, zerolog.Nop())

		monthStart, err := timezone.ParseMonth(testTZ, "2030-06")
		require.NoError(t, err)
		monthEnd := monthStart.AddDate(0, 1, 0)

		ledger.On("ListAvailable", mock.Anything, monthStart, mock.MatchedBy(func(until *time.Time) bool {
			return until != nil && until.Equal(monthEnd)
		})).Return([]models.AvailableDate{}, nil)

		_, err = uc.Execute(ctx, "2030-06")

		require.NoError(t, err)
		ledger.AssertExpectations(t)
	})

	t.Run("current month is clamped to today", func(t *testing.T) {
		ledger := &mockLedger{}
		uc := NewListAvailableDates(ledger, &fakeCache{}, testTZ, zerolog.Nop())

		today := timezone.Today(testTZ)
		month := today.Format("2006-01")

		ledger.On("ListAvailable", mock.Anything, today, mock.Anything).
			Return([]models.AvailableDate{}, nil)

		_, err := uc.Execute(ctx, month)

		require.NoError(t, err)
		ledger.AssertExpectations(t)
	})

	t.Run("malformed month", func(t *testing.T) {
		ledger := &mockLedger{}
		uc := NewListAvailableDates(ledger, &fakeCache{}, testTZ, zerolog.Nop())

		_, err := uc.Execute(ctx, "June 2030")

		assert.True(t, httperr.IsBusiness(err, "invalid_month"))
		ledger.AssertNotCalled(t, "ListAvailable", mock.Anything, mock.Anything, mock.Anything)
	})
}
