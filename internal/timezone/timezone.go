package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

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

// ParseDateTime combina data (2006-01-02) e hora (15:04) no timezone
// informado, produzindo o instante agendado da reserva.
func ParseDateTime(dateStr, timeStr, tz string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		Location(tz),
	)
}

func ParseDate(dateStr, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}
