package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/idohairstudios/salon-booking/internal/httperr"
)

func completeCart() Cart {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	return Cart{}.
		WithStyle(SelectedStyle{Name: "Knotless Braids", Category: "braids", Price: 400}).
		WithAddOn(SelectedAddOn{Name: "Deep Wash", Price: 50}).
		WithSchedule(day, "10:00 AM").
		WithCustomer(Customer{
			Name:     "Ama Mensah",
			Phone:    "0244123456",
			Whatsapp: "0244123456",
		})
}

func TestCartReducersDoNotMutateReceiver(t *testing.T) {
	base := Cart{}.WithStyle(SelectedStyle{Name: "Twists", Price: 300})

	withAddOn := base.WithAddOn(SelectedAddOn{Name: "Deep Wash", Price: 50})
	assert.Empty(t, base.AddOns, "receiver must stay unchanged")
	assert.Len(t, withAddOn.AddOns, 1)

	cleared := withAddOn.WithoutAddOn("Deep Wash")
	assert.Len(t, withAddOn.AddOns, 1, "receiver must stay unchanged")
	assert.Empty(t, cleared.AddOns)

	restyled := base.WithStyle(SelectedStyle{Name: "Locs", Price: 600})
	assert.Equal(t, "Twists", base.Style.Name)
	assert.Equal(t, "Locs", restyled.Style.Name)
}

func TestCartWithAddOnReplacesSameName(t *testing.T) {
	cart := Cart{}.
		WithAddOn(SelectedAddOn{Name: "Deep Wash", Price: 50}).
		WithAddOn(SelectedAddOn{Name: "Deep Wash", Price: 70})

	assert.Len(t, cart.AddOns, 1)
	assert.Equal(t, 70.0, cart.AddOns[0].Price)
}

func TestCartTotal(t *testing.T) {
	t.Run("style plus add-ons", func(t *testing.T) {
		cart := completeCart()
		assert.Equal(t, 450.0, cart.Total())
	})

	t.Run("unpriced style floors at the minimum", func(t *testing.T) {
		cart := Cart{}.WithStyle(SelectedStyle{Name: "Consultation", Price: 0})
		assert.Equal(t, MinimumBookingAmount, cart.BasePrice())
		assert.Equal(t, MinimumBookingAmount, cart.Total())
	})

	t.Run("empty cart floors at the minimum", func(t *testing.T) {
		assert.Equal(t, MinimumBookingAmount, Cart{}.Total())
	})
}

func TestCartComplete(t *testing.T) {
	assert.NoError(t, completeCart().Complete())

	cases := []struct {
		name   string
		mutate func(Cart) Cart
	}{
		{"no style", func(c Cart) Cart { c.Style = nil; return c }},
		{"no date", func(c Cart) Cart { c.Date = time.Time{}; return c }},
		{"no time", func(c Cart) Cart { c.TimeSlot = ""; return c }},
		{"no customer", func(c Cart) Cart { c.Customer = nil; return c }},
		{"no name", func(c Cart) Cart { c.Customer.Name = ""; return c }},
		{"no phone", func(c Cart) Cart { c.Customer.Phone = ""; return c }},
		{"no whatsapp", func(c Cart) Cart { c.Customer.Whatsapp = ""; return c }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mutate(completeCart()).Complete()
			assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))
		})
	}
}

func TestCartReset(t *testing.T) {
	cart := completeCart().Reset()

	assert.Nil(t, cart.Style)
	assert.Nil(t, cart.Customer)
	assert.Empty(t, cart.AddOns)
	assert.True(t, cart.Date.IsZero())
}

func TestIsTimeSlot(t *testing.T) {
	assert.True(t, IsTimeSlot("08:00 AM"))
	assert.True(t, IsTimeSlot("05:00 PM"))
	assert.False(t, IsTimeSlot("06:00 PM"))
	assert.False(t, IsTimeSlot("8:00 AM"))
	assert.False(t, IsTimeSlot(""))
}
