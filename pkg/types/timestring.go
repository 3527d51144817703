package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// Used for opening-hours arithmetic where only the time-of-day component matters.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a parseable "HH:MM" time.
func (t TimeString) Validate() error {
	if t == "" {
		return fmt.Errorf("time string is empty")
	}
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero returns true for an empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format("15:04")), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Comparison is lexicographic, which is correct for zero-padded "HH:MM".
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer so the type can be written directly to SQL.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}
