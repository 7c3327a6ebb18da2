package status

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestForIntern(t *testing.T) {
	now := date("2024-08-01")

	tests := []struct {
		name    string
		endDate *time.Time
		want    string
	}{
		{"no end date", nil, InternActive},
		{"end date in past", datePtr("2024-07-15"), InternCompleted},
		{"end date in future", datePtr("2024-09-01"), InternActive},
		{"end date equals now", &now, InternCompleted}, // inclusive boundary
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForIntern(tt.endDate, now)
			if got != tt.want {
				t.Errorf("ForIntern: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForProject(t *testing.T) {
	start := date("2025-04-23")
	end := datePtr("2025-04-27")

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before start", date("2025-04-20"), ProjectUpcoming},
		{"between start and end", date("2025-04-25"), ProjectActive},
		{"after end", date("2025-05-01"), ProjectCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForProject(start, end, tt.now)
			if got != tt.want {
				t.Errorf("ForProject(now=%s): got %q, want %q", tt.now.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestForProject_NoEndDate(t *testing.T) {
	start := date("2025-01-01")
	if got := ForProject(start, nil, date("2025-06-01")); got != ProjectActive {
		t.Errorf("got %q, want %q", got, ProjectActive)
	}
}

// The boundary operators are asymmetric on purpose: a project whose start
// date equals now is not upcoming, and a project whose end date equals now
// is still active — while an intern whose end date equals now is already
// completed.
func TestForProject_BoundaryInstants(t *testing.T) {
	now := date("2025-04-23")

	if got := ForProject(now, nil, now); got != ProjectActive {
		t.Errorf("start == now: got %q, want %q", got, ProjectActive)
	}

	start := date("2025-04-01")
	if got := ForProject(start, &now, now); got != ProjectActive {
		t.Errorf("end == now: got %q, want %q", got, ProjectActive)
	}
}

func TestForProject_UpcomingWinsOverEndDate(t *testing.T) {
	// A future start date makes the project upcoming even if the end
	// date is already in the past (malformed but possible input).
	start := date("2025-06-01")
	end := datePtr("2025-01-01")
	if got := ForProject(start, end, date("2025-03-01")); got != ProjectUpcoming {
		t.Errorf("got %q, want %q", got, ProjectUpcoming)
	}
}
