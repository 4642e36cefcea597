package booking

import "github.com/idohairstudios/salon-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusNeedsReview Status = "needs_review"
	StatusAbandoned   Status = "abandoned"
	StatusCancelled   Status = "cancelled"
)

// transitions is the full table of legal status moves. Anything not
// listed here is rejected, so an appointment can never travel backwards
// (e.g. confirmed -> pending).
var transitions = map[Status][]Status{
	StatusPending:     {StatusConfirmed, StatusNeedsReview, StatusAbandoned, StatusCancelled},
	StatusConfirmed:   {StatusCancelled},
	StatusNeedsReview: {StatusConfirmed, StatusCancelled},
	StatusAbandoned:   {},
	StatusCancelled:   {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentFull    PaymentStatus = "full"
)

// DerivePaymentStatus is the single source of truth for payment status.
// It is recomputed on every mutation of AmountPaid or TotalAmount and
// never set independently.
func DerivePaymentStatus(amountPaid, totalAmount float64) PaymentStatus {
	switch {
	case amountPaid <= 0:
		return PaymentUnpaid
	case amountPaid < totalAmount:
		return PaymentPartial
	default:
		return PaymentFull
	}
}

func guardTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return httperr.ErrBusinessf("invalid_state", string(from)+" cannot move to "+string(to))
	}
	return nil
}
