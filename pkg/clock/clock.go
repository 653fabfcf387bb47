package clock

import "time"

// Clock supplies the current time to code that stamps or renders dates.
type Clock interface {
	Now() time.Time
}

type System struct {
	Location *time.Location
}

func NewSystem(location *time.Location) System {
	if location == nil {
		location = time.UTC
	}
	return System{Location: location}
}

func (c System) Now() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (c Fixed) Now() time.Time {
	return time.Time(c)
}

// LoadLocation falls back to a fixed UTC+7 zone when the tz database is
// missing from the host.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name == "Asia/Jakarta" {
			return time.FixedZone("WIB", 7*60*60)
		}
		return time.UTC
	}
	return loc
}
