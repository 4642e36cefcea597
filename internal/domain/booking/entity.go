package booking

import (
	"time"

	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// RecordPayment appends a payment-history entry and recomputes the
// derived payment status. It is idempotent per reference: replaying the
// same verified transaction returns applied=false and changes nothing,
// which is what makes at-least-once verification delivery safe.
func RecordPayment(
	ap *models.Appointment,
	amount float64,
	method string,
	reference string,
	note string,
	now time.Time,
) (bool, error) {

	if Status(ap.Status) == StatusCancelled {
		return false, httperr.ErrBusiness("invalid_state")
	}

	for _, p := range ap.Payments {
		if p.Reference == reference {
			return false, nil
		}
	}

	ap.Payments = append(ap.Payments, models.PaymentRecord{
		AppointmentID: ap.ID,
		Amount:        amount,
		Method:        method,
		Reference:     reference,
		Note:          note,
		PaidAt:        now,
	})

	ap.AmountPaid += amount
	ap.PaymentStatus = string(DerivePaymentStatus(ap.AmountPaid, ap.TotalAmount))

	return true, nil
}

// Confirm moves the appointment into its terminal success state. Only a
// fully paid appointment may be confirmed.
func Confirm(ap *models.Appointment, now time.Time) error {
	if PaymentStatus(ap.PaymentStatus) != PaymentFull {
		return httperr.ErrBusiness("payment_incomplete")
	}
	if err := guardTransition(Status(ap.Status), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

// FlagForReview marks a paid appointment whose capacity slot was lost to
// a concurrent booking. The payment stays recorded; the front desk
// resolves it manually instead of the system overbooking the date.
func FlagForReview(ap *models.Appointment) error {
	if err := guardTransition(Status(ap.Status), StatusNeedsReview); err != nil {
		return err
	}

	ap.Status = string(StatusNeedsReview)
	return nil
}

// Abandon parks an appointment whose payment was never verified or was
// explicitly declined. The record is kept for support follow-up.
func Abandon(ap *models.Appointment) error {
	if err := guardTransition(Status(ap.Status), StatusAbandoned); err != nil {
		return err
	}

	ap.Status = string(StatusAbandoned)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := guardTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// StylePrice resolves the amount to snapshot for a style, preferring the
// named price variation when one matches.
func StylePrice(style *models.HairStyle, variation string) float64 {
	if variation != "" {
		for _, v := range style.PriceVariations {
			if v.Name == variation {
				return v.Price
			}
		}
	}
	return style.Price
}
