package booking

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/idohairstudios/salon-booking/internal/audit"
	"github.com/idohairstudios/salon-booking/internal/models"
	"github.com/idohairstudios/salon-booking/internal/notify"
	"github.com/idohairstudios/salon-booking/internal/payment"
)

// ------- slot ledger -------

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) FindByDay(ctx context.Context, day time.Time) (*models.AvailableDate, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailableDate), args.Error(1)
}

func (m *mockLedger) ListAvailable(ctx context.Context, from time.Time, until *time.Time) ([]models.AvailableDate, error) {
	args := m.Called(ctx, from, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AvailableDate), args.Error(1)
}

func (m *mockLedger) Reserve(ctx context.Context, dateID uint) error {
	return m.Called(ctx, dateID).Error(0)
}

func (m *mockLedger) Release(ctx context.Context, dateID uint) error {
	return m.Called(ctx, dateID).Error(0)
}

func (m *mockLedger) Create(ctx context.Context, day time.Time, maxAppointments int) (*models.AvailableDate, error) {
	args := m.Called(ctx, day, maxAppointments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailableDate), args.Error(1)
}

func (m *mockLedger) CreateRange(ctx context.Context, from, to time.Time, maxAppointments int) ([]models.AvailableDate, error) {
	args := m.Called(ctx, from, to, maxAppointments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AvailableDate), args.Error(1)
}

func (m *mockLedger) Get(ctx context.Context, dateID uint) (*models.AvailableDate, error) {
	args := m.Called(ctx, dateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailableDate), args.Error(1)
}

func (m *mockLedger) Delete(ctx context.Context, dateID uint) error {
	return m.Called(ctx, dateID).Error(0)
}

// ------- appointment store -------

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreatePending(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockStore) FindByReference(ctx context.Context, reference string) (*models.Appointment, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockStore) DeleteByReference(ctx context.Context, reference string) error {
	return m.Called(ctx, reference).Error(0)
}

func (m *mockStore) Update(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockStore) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockStore) CountActiveOn(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

// ------- catalog -------

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) FindStyle(ctx context.Context, idOrName string) (*models.HairStyle, error) {
	args := m.Called(ctx, idOrName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HairStyle), args.Error(1)
}

// ------- payment gateway -------

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Initialize(ctx context.Context, in payment.InitializeInput) (*payment.InitializeResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.InitializeResult), args.Error(1)
}

func (m *mockGateway) Verify(ctx context.Context, reference string) (*payment.VerifyResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.VerifyResult), args.Error(1)
}

// ------- reconcile guard -------

type mockGuard struct {
	mock.Mock
}

func (m *mockGuard) AcquireOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockGuard) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// openGuard always grants the lock.
func openGuard() *mockGuard {
	g := &mockGuard{}
	g.On("AcquireOnce", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	g.On("Release", mock.Anything, mock.Anything).Return(nil)
	return g
}

// ------- dates cache -------

type fakeCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	return false, nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (c *fakeCache) InvalidatePrefix(ctx context.Context, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, prefix)
}

// ------- audit sink -------

type fakeAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *fakeAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *fakeAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

// ------- notifier -------

type fakeSender struct {
	mu      sync.Mutex
	notices []notify.BookingNotice
}

func (s *fakeSender) SendConfirmation(ctx context.Context, notice notify.BookingNotice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, notice)
	return nil
}
