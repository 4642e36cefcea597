package booking

import (
	"context"
	"time"

	"github.com/idohairstudios/salon-booking/internal/audit"
)

// Auditor is the audit-trail sink; satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Guard serializes concurrent reconciliation attempts for one payment
// reference. Best effort: the domain-level duplicate check in
// RecordPayment is the backstop if the guard is unavailable.
type Guard interface {
	AcquireOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// DatesCache is the short-TTL read cache for available-dates listings.
type DatesCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string)
}
