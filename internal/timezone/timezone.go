package timezone

import "time"

const DefaultTimezone = "Africa/Accra"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today returns midnight of the current day in the salon timezone.
func Today(tz string) time.Time {
	now := NowIn(tz)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func ParseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}

func ParseMonth(tz string, monthStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01", monthStr, Location(tz))
}
