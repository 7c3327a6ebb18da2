package dates

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse_CalendarDate(t *testing.T) {
	got, err := Parse("2024-01-15")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_RFC3339(t *testing.T) {
	got, err := Parse("2024-01-15T10:30:00Z")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Hour() != 10 || got.Minute() != 30 {
		t.Errorf("got %v, want 10:30", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "15/01/2024", "not a date", "2024-13-99"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error", s)
		}
	}
}

func TestFlexible_UnmarshalJSON(t *testing.T) {
	var v struct {
		When Flexible `json:"when"`
	}

	if err := json.Unmarshal([]byte(`{"when":"2024-07-15"}`), &v); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if v.When.IsZero() {
		t.Error("expected date to be set")
	}

	v.When = Flexible{}
	if err := json.Unmarshal([]byte(`{"when":null}`), &v); err != nil {
		t.Fatalf("unmarshal null failed: %v", err)
	}
	if !v.When.IsZero() {
		t.Error("expected null to leave zero value")
	}

	if err := json.Unmarshal([]byte(`{"when":"garbage"}`), &v); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestFlexible_Ptr(t *testing.T) {
	var zero Flexible
	if zero.Ptr() != nil {
		t.Error("expected nil for zero value")
	}

	set := Flexible{Time: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)}
	if p := set.Ptr(); p == nil || !p.Equal(set.Time) {
		t.Error("expected pointer to contained time")
	}
}
