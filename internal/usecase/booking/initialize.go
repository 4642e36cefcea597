package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/idohairstudios/salon-booking/internal/audit"
	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/metrics"
	"github.com/idohairstudios/salon-booking/internal/models"
	"github.com/idohairstudios/salon-booking/internal/payment"
	"github.com/idohairstudios/salon-booking/internal/timezone"
	"github.com/idohairstudios/salon-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type InitializeBookingInput struct {
	Name     string
	Phone    string
	Whatsapp string
	Snapchat string

	ServiceID string // style value, name or id
	Variation string

	Date     string // 2006-01-02
	TimeSlot string

	HairColor       string
	PreferredLength string

	AddOns []domain.SelectedAddOn
}

type InitializeBookingResult struct {
	AuthorizationURL string  `json:"authorization_url"`
	AccessCode       string  `json:"access_code"`
	Reference        string  `json:"reference"`
	Amount           float64 `json:"amount"`
}

// ======================================================
// USE CASE
// ======================================================

// InitializeBooking runs the DRAFT -> PENDING_PAYMENT transition:
// validate the cart, pre-check the date, persist a pending appointment
// and open the payment session. Capacity is NOT consumed here, that
// happens at reconciliation, so abandoned payments never hold a slot.
type InitializeBooking struct {
	ledger  domain.SlotLedger
	store   domain.AppointmentStore
	catalog domain.CatalogReader
	gateway payment.Gateway
	audit   Auditor

	appURL      string
	emailDomain string
	tz          string
	log         zerolog.Logger
}

func NewInitializeBooking(
	ledger domain.SlotLedger,
	store domain.AppointmentStore,
	catalog domain.CatalogReader,
	gateway payment.Gateway,
	auditDispatcher Auditor,
	appURL string,
	emailDomain string,
	tz string,
	log zerolog.Logger,
) *InitializeBooking {
	return &InitializeBooking{
		ledger:      ledger,
		store:       store,
		catalog:     catalog,
		gateway:     gateway,
		audit:       auditDispatcher,
		appURL:      appURL,
		emailDomain: emailDomain,
		tz:          tz,
		log:         log.With().Str("usecase", "initialize_booking").Logger(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *InitializeBooking) Execute(
	ctx context.Context,
	in InitializeBookingInput,
) (*InitializeBookingResult, error) {

	// --------------------------------------------------
	// 1. Date and time in the salon timezone
	// --------------------------------------------------
	day, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return nil, httperr.ErrBusinessf("invalid_date", "expected YYYY-MM-DD")
	}

	if day.Before(timezone.Today(uc.tz)) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	if !domain.IsTimeSlot(in.TimeSlot) {
		return nil, httperr.ErrBusinessf("invalid_time_slot", in.TimeSlot)
	}

	if !validators.IsPhoneValid(in.Phone) {
		return nil, httperr.ErrBusinessf("missing_required_fields", "phone is invalid")
	}

	// --------------------------------------------------
	// 2. Catalog lookup + price snapshot
	// --------------------------------------------------
	style, err := uc.catalog.FindStyle(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	cart := domain.Cart{}.
		WithStyle(domain.SelectedStyle{
			Name:      style.Name,
			Category:  style.Category,
			Variation: in.Variation,
			Price:     domain.StylePrice(style, in.Variation),
		}).
		WithSchedule(day, in.TimeSlot).
		WithCustomer(domain.Customer{
			Name:            in.Name,
			Phone:           in.Phone,
			Whatsapp:        in.Whatsapp,
			Snapchat:        in.Snapchat,
			HairColor:       in.HairColor,
			PreferredLength: in.PreferredLength,
		})

	for _, addOn := range in.AddOns {
		cart = cart.WithAddOn(addOn)
	}

	if err := cart.Complete(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Availability pre-check (read only)
	// --------------------------------------------------
	date, err := uc.ledger.FindByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if date.IsFull() {
		return nil, httperr.ErrBusiness("date_fully_booked")
	}

	// --------------------------------------------------
	// 4. Pending appointment + correlation reference
	// --------------------------------------------------
	reference := newReference()

	hairColor := in.HairColor
	if hairColor == "" {
		hairColor = "black"
	}

	addOnRows := make([]models.AppointmentAddOn, 0, len(cart.AddOns))
	for _, a := range cart.AddOns {
		addOnRows = append(addOnRows, models.AppointmentAddOn{
			Name:  a.Name,
			Price: a.Price,
		})
	}

	ap := &models.Appointment{
		Name:             in.Name,
		Phone:            in.Phone,
		Whatsapp:         in.Whatsapp,
		Snapchat:         in.Snapchat,
		Service:          style.Name,
		ServiceCategory:  style.Category,
		Date:             day,
		TimeSlot:         in.TimeSlot,
		HairColor:        hairColor,
		PreferredLength:  in.PreferredLength,
		AddOns:           addOnRows,
		TotalAmount:      cart.Total(),
		AmountPaid:       0,
		PaymentStatus:    string(domain.PaymentUnpaid),
		Status:           string(domain.InitialStatus()),
		PaymentReference: reference,
	}

	if err := uc.store.CreatePending(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Payment session; compensate on failure
	// --------------------------------------------------
	email := fmt.Sprintf("%s@%s", validators.PhoneDigits(in.Phone), uc.emailDomain)

	initResult, err := uc.gateway.Initialize(ctx, payment.InitializeInput{
		Amount:      ap.TotalAmount,
		Email:       email,
		Reference:   reference,
		CallbackURL: fmt.Sprintf("%s/payment-success?reference=%s", uc.appURL, reference),
		Metadata: map[string]any{
			"service":          style.Name,
			"service_category": style.Category,
			"date":             in.Date,
			"time":             in.TimeSlot,
			"phone":            in.Phone,
		},
	})
	if err != nil {
		metrics.IncPaymentInitFailure()

		if delErr := uc.store.DeleteByReference(ctx, reference); delErr != nil {
			// The compensating delete failed; this pending appointment is
			// now orphaned and needs operator attention.
			uc.log.Error().
				Err(delErr).
				Str("reference", reference).
				Msg("compensating delete failed, orphaned pending appointment")
		}

		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_initialized",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"reference": reference,
			"service":   style.Name,
			"date":      in.Date,
			"amount":    ap.TotalAmount,
		},
	})
	metrics.IncBookingInitialized()

	return &InitializeBookingResult{
		AuthorizationURL: initResult.AuthorizationURL,
		AccessCode:       initResult.AccessCode,
		Reference:        reference,
		Amount:           ap.TotalAmount,
	}, nil
}

func newReference() string {
	return fmt.Sprintf("HAIRSLOT_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
