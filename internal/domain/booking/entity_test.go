package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/models"
)

func pendingAppointment(total float64) *models.Appointment {
	return &models.Appointment{
		ID:               7,
		Name:             "Ama Mensah",
		Phone:            "0244123456",
		TotalAmount:      total,
		PaymentStatus:    string(PaymentUnpaid),
		Status:           string(StatusPending),
		PaymentReference: "HAIRSLOT_1_abc",
	}
}

func TestRecordPayment(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("full payment", func(t *testing.T) {
		ap := pendingAppointment(450)

		applied, err := RecordPayment(ap, 450, "mobile_money", "HAIRSLOT_1_abc", "", now)

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, 450.0, ap.AmountPaid)
		assert.Equal(t, string(PaymentFull), ap.PaymentStatus)
		assert.Len(t, ap.Payments, 1)
		assert.Equal(t, "mobile_money", ap.Payments[0].Method)
	})

	t.Run("replay with same reference is a no-op", func(t *testing.T) {
		ap := pendingAppointment(450)

		_, err := RecordPayment(ap, 450, "card", "HAIRSLOT_1_abc", "", now)
		assert.NoError(t, err)

		applied, err := RecordPayment(ap, 450, "card", "HAIRSLOT_1_abc", "", now)
		assert.NoError(t, err)
		assert.False(t, applied)

		assert.Equal(t, 450.0, ap.AmountPaid, "amount must be counted once")
		assert.Len(t, ap.Payments, 1, "history must not grow on replay")
	})

	t.Run("partial then balance", func(t *testing.T) {
		ap := pendingAppointment(450)

		_, err := RecordPayment(ap, 200, "cash", "DEPOSIT_1", "deposit", now)
		assert.NoError(t, err)
		assert.Equal(t, string(PaymentPartial), ap.PaymentStatus)

		_, err = RecordPayment(ap, 250, "cash", "BALANCE_1", "", now)
		assert.NoError(t, err)
		assert.Equal(t, string(PaymentFull), ap.PaymentStatus)
		assert.Len(t, ap.Payments, 2)
	})

	t.Run("cancelled appointment refuses payments", func(t *testing.T) {
		ap := pendingAppointment(450)
		ap.Status = string(StatusCancelled)

		applied, err := RecordPayment(ap, 450, "card", "HAIRSLOT_2_xyz", "", now)

		assert.False(t, applied)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Empty(t, ap.Payments)
	})
}

func TestConfirm(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("requires full payment", func(t *testing.T) {
		ap := pendingAppointment(450)
		ap.AmountPaid = 200
		ap.PaymentStatus = string(PaymentPartial)

		err := Confirm(ap, now)

		assert.True(t, httperr.IsBusiness(err, "payment_incomplete"))
		assert.Equal(t, string(StatusPending), ap.Status)
		assert.Nil(t, ap.ConfirmedAt)
	})

	t.Run("fully paid pending confirms", func(t *testing.T) {
		ap := pendingAppointment(450)
		ap.AmountPaid = 450
		ap.PaymentStatus = string(PaymentFull)

		err := Confirm(ap, now)

		assert.NoError(t, err)
		assert.Equal(t, string(StatusConfirmed), ap.Status)
		assert.NotNil(t, ap.ConfirmedAt)
		assert.Equal(t, now, *ap.ConfirmedAt)
	})

	t.Run("needs_review resolves to confirmed", func(t *testing.T) {
		ap := pendingAppointment(450)
		ap.AmountPaid = 450
		ap.PaymentStatus = string(PaymentFull)
		ap.Status = string(StatusNeedsReview)

		assert.NoError(t, Confirm(ap, now))
		assert.Equal(t, string(StatusConfirmed), ap.Status)
	})

	t.Run("abandoned cannot confirm", func(t *testing.T) {
		ap := pendingAppointment(450)
		ap.AmountPaid = 450
		ap.PaymentStatus = string(PaymentFull)
		ap.Status = string(StatusAbandoned)

		err := Confirm(ap, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}

func TestFlagForReview(t *testing.T) {
	ap := pendingAppointment(450)

	assert.NoError(t, FlagForReview(ap))
	assert.Equal(t, string(StatusNeedsReview), ap.Status)

	// Flagging again is an illegal self-transition.
	assert.True(t, httperr.IsBusiness(FlagForReview(ap), "invalid_state"))
}

func TestAbandon(t *testing.T) {
	ap := pendingAppointment(450)

	assert.NoError(t, Abandon(ap))
	assert.Equal(t, string(StatusAbandoned), ap.Status)

	assert.True(t, httperr.IsBusiness(Abandon(ap), "invalid_state"))
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("confirmed can cancel", func(t *testing.T) {
		ap := pendingAppointment(450)
		ap.Status = string(StatusConfirmed)

		assert.NoError(t, Cancel(ap, now))
		assert.Equal(t, string(StatusCancelled), ap.Status)
		assert.NotNil(t, ap.CancelledAt)
	})

	t.Run("cancelled cannot cancel again", func(t *testing.T) {
		ap := pendingAppointment(450)
		ap.Status = string(StatusCancelled)

		assert.True(t, httperr.IsBusiness(Cancel(ap, now), "invalid_state"))
	})
}

func TestStylePrice(t *testing.T) {
	style := &models.HairStyle{
		Name:  "Knotless Braids",
		Price: 400,
		PriceVariations: []models.PriceVariation{
			{Name: "Small", Price: 500},
			{Name: "Jumbo", Price: 350},
		},
	}

	assert.Equal(t, 400.0, StylePrice(style, ""))
	assert.Equal(t, 500.0, StylePrice(style, "Small"))
	assert.Equal(t, 350.0, StylePrice(style, "Jumbo"))
	assert.Equal(t, 400.0, StylePrice(style, "Medium"), "unknown variation falls back to base price")
}
