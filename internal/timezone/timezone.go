package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location resolves a shop timezone name, falling back to the default for
// empty or unknown names.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
