package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Whatsapp string `gorm:"size:20;not null" json:"whatsapp"`
	Snapchat string `gorm:"size:50" json:"snapchat"`

	// Snapshot of the catalog entry at booking time. Later catalog edits
	// must not change what the customer agreed to pay.
	Service         string `gorm:"size:100;not null" json:"service"`
	ServiceCategory string `gorm:"size:50" json:"service_category"`

	Date     time.Time `gorm:"index;not null" json:"date"`
	TimeSlot string    `gorm:"size:20;not null" json:"time"`

	HairColor       string `gorm:"size:30;default:'black'" json:"hair_color"`
	PreferredLength string `gorm:"size:30" json:"preferred_length"`

	AddOns []AppointmentAddOn `gorm:"foreignKey:AppointmentID" json:"add_ons"`

	TotalAmount float64 `json:"total_amount"`
	AmountPaid  float64 `json:"amount_paid"`

	// PaymentStatus is derived from AmountPaid vs TotalAmount; it is never
	// written independently (see booking.DerivePaymentStatus).
	PaymentStatus string `gorm:"size:10;default:'unpaid'" json:"payment_status"`
	Status        string `gorm:"size:20;default:'pending'" json:"status"`

	// PaymentReference correlates the external payment session with this
	// appointment. Unique per transaction attempt.
	PaymentReference string `gorm:"size:64;uniqueIndex;not null" json:"payment_reference"`

	Payments []PaymentRecord `gorm:"foreignKey:AppointmentID" json:"payments"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentAddOn is a name+price snapshot, not a live reference to the
// add-on catalog.
type AppointmentAddOn struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	AppointmentID uint    `gorm:"index" json:"appointment_id"`
	Name          string  `gorm:"size:100;not null" json:"name"`
	Price         float64 `json:"price"`
}

type PaymentRecord struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	Amount    float64   `json:"amount"`
	Method    string    `gorm:"size:30" json:"method"`
	Reference string    `gorm:"size:64;index" json:"reference"`
	Note      string    `gorm:"size:255" json:"note"`
	PaidAt    time.Time `json:"paid_at"`
}
