// Package status derives the display status of interns and projects
// from their date fields.
//
// Status is never stored authoritatively: both record stores call these
// functions on every create and update, overwriting whatever the caller
// supplied. The two rules deliberately use different boundary operators:
// an intern whose end date equals "now" is completed, while a project
// whose end date equals "now" is still active. Clients depend on this
// distinction; the tests pin it.
package status

import "time"

// Intern statuses.
const (
	InternActive    = "active"
	InternCompleted = "completed"
)

// Project statuses.
const (
	ProjectUpcoming  = "upcoming"
	ProjectActive    = "active"
	ProjectCompleted = "completed"
)

// ForIntern returns the intern status at the instant now.
// An intern is completed once its end date has been reached (inclusive).
func ForIntern(endDate *time.Time, now time.Time) string {
	if endDate != nil && !endDate.After(now) {
		return InternCompleted
	}
	return InternActive
}

// ForProject returns the project status at the instant now.
// A project is upcoming strictly before its start date, completed
// strictly after its end date, and active otherwise (including a
// project whose end date equals now exactly).
func ForProject(startDate time.Time, endDate *time.Time, now time.Time) string {
	if startDate.After(now) {
		return ProjectUpcoming
	}
	if endDate != nil && endDate.Before(now) {
		return ProjectCompleted
	}
	return ProjectActive
}
