package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/idohairstudios/salon-booking/internal/cache"
	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/models"
	"github.com/idohairstudios/salon-booking/internal/timezone"
)

const datesCacheTTL = 60 * time.Second

type ListAvailableDates struct {
	ledger domain.SlotLedger
	cache  DatesCache
	tz     string
	log    zerolog.Logger
}

func NewListAvailableDates(
	ledger domain.SlotLedger,
	datesCache DatesCache,
	tz string,
	log zerolog.Logger,
) *ListAvailableDates {
	return &ListAvailableDates{
		ledger: ledger,
		cache:  datesCache,
		tz:     tz,
		log:    log.With().Str("usecase", "list_available_dates").Logger(),
	}
}

// Execute lists dates with remaining capacity from today forward. A
// month parameter (YYYY-MM) windows the result; the lower bound is
// clamped so past days never appear even inside the requested month.
func (uc *ListAvailableDates) Execute(
	ctx context.Context,
	month string,
) ([]models.AvailableDate, error) {

	today := timezone.Today(uc.tz)

	from := today
	var until *time.Time

	cacheKey := cache.DatesPrefix + "all"

	if month != "" {
		monthStart, err := timezone.ParseMonth(uc.tz, month)
		if err != nil {
			return nil, httperr.ErrBusinessf("invalid_month", "expected YYYY-MM")
		}

		if monthStart.After(today) {
			from = monthStart
		}
		monthEnd := monthStart.AddDate(0, 1, 0)
		until = &monthEnd

		cacheKey = cache.DatesPrefix + month
	}

	var cached []models.AvailableDate
	if hit, err := uc.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	dates, err := uc.ledger.ListAvailable(ctx, from, until)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetJSON(ctx, cacheKey, dates, datesCacheTTL); err != nil {
		uc.log.Warn().Err(err).Msg("dates cache write failed")
	}

	return dates, nil
}
