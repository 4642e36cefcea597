package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingInitialized = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "booking_initialized_total",
			Help:      "Count of checkout initializations that reached the payment gateway.",
		},
	)

	bookingConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "booking_confirmed_total",
			Help:      "Count of bookings confirmed after payment reconciliation.",
		},
	)

	bookingAbandoned = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "booking_abandoned_total",
			Help:      "Count of bookings abandoned, by reason.",
		},
		[]string{"reason"},
	)

	bookingNeedsReview = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "booking_needs_review_total",
			Help:      "Count of paid bookings that lost the capacity race and need manual resolution.",
		},
	)

	paymentInitFailure = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "payment_init_failure_total",
			Help:      "Count of payment gateway initialization failures.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingInitialized,
			bookingConfirmed,
			bookingAbandoned,
			bookingNeedsReview,
			paymentInitFailure,
		)
	})
}

func IncBookingInitialized() {
	bookingInitialized.Inc()
}

func IncBookingConfirmed() {
	bookingConfirmed.Inc()
}

func IncBookingAbandoned(reason string) {
	bookingAbandoned.WithLabelValues(reason).Inc()
}

func IncBookingNeedsReview() {
	bookingNeedsReview.Inc()
}

func IncPaymentInitFailure() {
	paymentInitFailure.Inc()
}
