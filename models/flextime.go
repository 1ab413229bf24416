package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FlexTime is the canonical in-memory date for transactions. Clients submit
// dates either as ISO-8601 strings or as {seconds, nanoseconds} epoch pairs;
// both decode into a plain time.Time here so nothing downstream has to care.
// A value that cannot be parsed decodes to the zero time instead of erroring,
// and zero-dated transactions are excluded from savings calculations.
type FlexTime struct {
	time.Time
}

type epochPair struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (f *FlexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		f.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		for _, layout := range isoLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				f.Time = t
				return nil
			}
		}
		f.Time = time.Time{}
		return nil
	}

	var pair epochPair
	if err := json.Unmarshal(data, &pair); err == nil && pair.Seconds != 0 {
		f.Time = time.Unix(pair.Seconds, pair.Nanoseconds)
		return nil
	}

	// Unparseable dates are a data-quality issue, not an error.
	f.Time = time.Time{}
	return nil
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Time.Format(time.RFC3339))
}

// Scan maps a nullable timestamptz column onto the zero time.
func (f *FlexTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		f.Time = time.Time{}
		return nil
	case time.Time:
		f.Time = v
		return nil
	default:
		return fmt.Errorf("cannot scan %T into FlexTime", src)
	}
}

func (f FlexTime) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}
