package utils

import (
	"time"
)

// OrderDateLayout renders as e.g. 2024-03-09-Sat 14:05:00.
const OrderDateLayout = "2006-01-02-Mon 15:04:05"

var displayLocation = time.FixedZone("KST", 9*60*60)

// SetDisplayLocation changes the zone JSONTime renders in. Call once at startup.
func SetDisplayLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	displayLocation = loc
	return nil
}

func DisplayLocation() *time.Location {
	return displayLocation
}

type JSONTime time.Time

func (t JSONTime) String() string {
	return time.Time(t).In(displayLocation).Format(OrderDateLayout)
}

func (t JSONTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *JSONTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := time.ParseInLocation(`"`+OrderDateLayout+`"`, string(data), displayLocation)
	if err != nil {
		return err
	}
	*t = JSONTime(parsed)
	return nil
}
