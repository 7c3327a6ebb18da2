// Package dates parses the date formats the SPA sends.
//
// Form inputs submit bare calendar dates (2024-01-15) while API clients
// send full RFC 3339 timestamps; both are accepted everywhere a date is
// expected.
package dates

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Parse accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want RFC 3339 or YYYY-MM-DD)", s)
}

// Flexible is a time.Time that unmarshals from either accepted format.
// An empty string or null leaves the zero value.
type Flexible struct {
	time.Time
}

func (d *Flexible) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := Parse(*s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Flexible) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time)
}

// Ptr returns the contained time as a *time.Time, or nil when unset.
func (d Flexible) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
