package models

import "time"

// AvailableDate is one bookable calendar day with a capacity counter.
// CurrentAppointments is only ever moved through the conditional updates
// in the slot ledger repository, so current <= max holds under load.
type AvailableDate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date                time.Time `gorm:"uniqueIndex;not null" json:"date"`
	MaxAppointments     int       `gorm:"not null;default:1" json:"max_appointments"`
	CurrentAppointments int       `gorm:"not null;default:0" json:"current_appointments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *AvailableDate) SpotsLeft() int {
	left := d.MaxAppointments - d.CurrentAppointments
	if left < 0 {
		return 0
	}
	return left
}

func (d *AvailableDate) IsFull() bool {
	return d.CurrentAppointments >= d.MaxAppointments
}
