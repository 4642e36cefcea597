package dto

import "github.com/idohairstudios/salon-booking/internal/models"

type AddOnDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AppointmentSummaryDTO struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Service         string     `json:"service"`
	ServiceCategory string     `json:"service_category"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	AddOns          []AddOnDTO `json:"add_ons"`
	TotalAmount     float64    `json:"total_amount"`
	AmountPaid      float64    `json:"amount_paid"`
	PaymentStatus   string     `json:"payment_status"`
	Status          string     `json:"status"`
	Reference       string     `json:"reference"`
}

func AppointmentSummary(ap *models.Appointment) AppointmentSummaryDTO {
	addOns := make([]AddOnDTO, 0, len(ap.AddOns))
	for _, a := range ap.AddOns {
		addOns = append(addOns, AddOnDTO{Name: a.Name, Price: a.Price})
	}

	return AppointmentSummaryDTO{
		ID:              ap.ID,
		Name:            ap.Name,
		Service:         ap.Service,
		ServiceCategory: ap.ServiceCategory,
		Date:            ap.Date.Format("2006-01-02"),
		Time:            ap.TimeSlot,
		AddOns:          addOns,
		TotalAmount:     ap.TotalAmount,
		AmountPaid:      ap.AmountPaid,
		PaymentStatus:   ap.PaymentStatus,
		Status:          ap.Status,
		Reference:       ap.PaymentReference,
	}
}
