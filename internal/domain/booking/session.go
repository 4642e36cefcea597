package booking

import (
	"time"

	"github.com/idohairstudios/salon-booking/internal/httperr"
)

// MinimumBookingAmount is the floor applied to every checkout total,
// in major currency units.
const MinimumBookingAmount = 10.0

type SelectedStyle struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Variation string  `json:"variation,omitempty"`
	Price     float64 `json:"price"`
}

type SelectedAddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Customer struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Whatsapp        string `json:"whatsapp"`
	Snapchat        string `json:"snapchat,omitempty"`
	HairColor       string `json:"hair_color"`
	PreferredLength string `json:"preferred_length"`
}

// Cart is the single-session booking state. It is an immutable value:
// every With* reducer returns a new Cart and never mutates the receiver,
// so a Cart can be passed around request scopes without shared state.
type Cart struct {
	Style    *SelectedStyle
	AddOns   []SelectedAddOn
	Date     time.Time
	TimeSlot string
	Customer *Customer
}

func (c Cart) WithStyle(style SelectedStyle) Cart {
	out := c.clone()
	out.Style = &style
	return out
}

// WithAddOn adds an add-on, replacing any previous selection with the
// same name.
func (c Cart) WithAddOn(addOn SelectedAddOn) Cart {
	out := c.clone()
	filtered := make([]SelectedAddOn, 0, len(out.AddOns)+1)
	for _, a := range out.AddOns {
		if a.Name != addOn.Name {
			filtered = append(filtered, a)
		}
	}
	out.AddOns = append(filtered, addOn)
	return out
}

func (c Cart) WithoutAddOn(name string) Cart {
	out := c.clone()
	filtered := make([]SelectedAddOn, 0, len(out.AddOns))
	for _, a := range out.AddOns {
		if a.Name != name {
			filtered = append(filtered, a)
		}
	}
	out.AddOns = filtered
	return out
}

func (c Cart) WithSchedule(date time.Time, timeSlot string) Cart {
	out := c.clone()
	out.Date = date
	out.TimeSlot = timeSlot
	return out
}

func (c Cart) WithCustomer(customer Customer) Cart {
	out := c.clone()
	out.Customer = &customer
	return out
}

func (c Cart) Reset() Cart {
	return Cart{}
}

// BasePrice falls back to the minimum booking amount when the style has
// no configured price.
func (c Cart) BasePrice() float64 {
	if c.Style == nil || c.Style.Price <= 0 {
		return MinimumBookingAmount
	}
	return c.Style.Price
}

func (c Cart) AddOnsTotal() float64 {
	var sum float64
	for _, a := range c.AddOns {
		sum += a.Price
	}
	return sum
}

func (c Cart) Total() float64 {
	total := c.BasePrice() + c.AddOnsTotal()
	if total < MinimumBookingAmount {
		return MinimumBookingAmount
	}
	return total
}

// Complete reports whether the cart holds everything checkout needs.
func (c Cart) Complete() error {
	switch {
	case c.Style == nil:
		return httperr.ErrBusinessf("missing_required_fields", "no style selected")
	case c.Date.IsZero():
		return httperr.ErrBusinessf("missing_required_fields", "no date selected")
	case c.TimeSlot == "":
		return httperr.ErrBusinessf("missing_required_fields", "no time selected")
	case c.Customer == nil:
		return httperr.ErrBusinessf("missing_required_fields", "no customer details")
	case c.Customer.Name == "":
		return httperr.ErrBusinessf("missing_required_fields", "name is required")
	case c.Customer.Phone == "":
		return httperr.ErrBusinessf("missing_required_fields", "phone is required")
	case c.Customer.Whatsapp == "":
		return httperr.ErrBusinessf("missing_required_fields", "whatsapp is required")
	}
	return nil
}

func (c Cart) clone() Cart {
	out := c
	if c.Style != nil {
		style := *c.Style
		out.Style = &style
	}
	if c.Customer != nil {
		customer := *c.Customer
		out.Customer = &customer
	}
	out.AddOns = append([]SelectedAddOn(nil), c.AddOns...)
	return out
}
