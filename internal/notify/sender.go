package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// BookingNotice is the confirmation message payload. Delivery is
// fire-and-forget: failure never rolls back a booking.
type BookingNotice struct {
	Name     string
	Phone    string
	Whatsapp string
	Service  string
	Date     string
	TimeSlot string
	Total    float64
}

type Sender interface {
	SendConfirmation(ctx context.Context, notice BookingNotice) error
}

// LogSender records the notice instead of delivering it. The WhatsApp
// integration lives outside this service.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log.With().Str("component", "notify").Logger()}
}

func (s *LogSender) SendConfirmation(ctx context.Context, notice BookingNotice) error {
	s.log.Info().
		Str("name", notice.Name).
		Str("whatsapp", notice.Whatsapp).
		Str("service", notice.Service).
		Str("date", notice.Date).
		Str("time", notice.TimeSlot).
		Float64("total", notice.Total).
		Msg("booking confirmation notice")
	return nil
}

var _ Sender = (*LogSender)(nil)
