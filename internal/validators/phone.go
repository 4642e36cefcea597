package validators

import "strings"

// PhoneDigits strips everything but digits from a phone number.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid accepts any number with at least 7 digits; customers
// enter numbers in wildly different formats.
func IsPhoneValid(phone string) bool {
	return len(PhoneDigits(phone)) >= 7
}
