package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to needs_review", StatusPending, StatusNeedsReview, true},
		{"pending to abandoned", StatusPending, StatusAbandoned, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"confirmed to needs_review", StatusConfirmed, StatusNeedsReview, false},
		{"needs_review to confirmed", StatusNeedsReview, StatusConfirmed, true},
		{"needs_review to cancelled", StatusNeedsReview, StatusCancelled, true},
		{"needs_review to abandoned", StatusNeedsReview, StatusAbandoned, false},
		{"abandoned is terminal", StatusAbandoned, StatusPending, false},
		{"abandoned to confirmed", StatusAbandoned, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"unknown status", Status("deleted"), StatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestDerivePaymentStatus(t *testing.T) {
	cases := []struct {
		name  string
		paid  float64
		total float64
		want  PaymentStatus
	}{
		{"nothing paid", 0, 450, PaymentUnpaid},
		{"negative paid", -5, 450, PaymentUnpaid},
		{"half paid", 225, 450, PaymentPartial},
		{"one pesewa short", 449.99, 450, PaymentPartial},
		{"exactly paid", 450, 450, PaymentFull},
		{"overpaid", 500, 450, PaymentFull},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DerivePaymentStatus(tc.paid, tc.total))
		})
	}
}
