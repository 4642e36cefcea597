package booking

// TimeSlots are the display times the salon offers on every bookable
// day. The slot ledger tracks capacity at day granularity only; the
// time is a display string carried on the appointment.
var TimeSlots = []string{
	"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM",
	"04:00 PM", "05:00 PM",
}

func IsTimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}
