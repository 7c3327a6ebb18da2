// internal/app/features/projects/types.go
package projects

import (
	"github.com/dalemusser/internhub/internal/app/system/dates"
	"github.com/dalemusser/internhub/internal/domain/models"
)

// projectPayload is the request body for create and update. Status is
// accepted but ignored; it is always re-derived from the dates before
// persistence.
type projectPayload struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	StartDate      dates.Flexible `json:"startDate"`
	EndDate        dates.Flexible `json:"endDate"`
	RequiredPeople int            `json:"requiredPeople"`
	TechStacks     []string       `json:"techStacks"`
	Status         string         `json:"status"`
}

func (p projectPayload) toModel() models.Project {
	return models.Project{
		Name:           p.Name,
		Description:    p.Description,
		StartDate:      p.StartDate.Time,
		EndDate:        p.EndDate.Ptr(),
		RequiredPeople: p.RequiredPeople,
		TechStacks:     p.TechStacks,
	}
}

// assignedIntern is the trimmed intern view embedded in a single
// project response, mirroring what the SPA's detail page needs.
type assignedIntern struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// projectView is a project with its assigned intern references
// resolved into embedded documents.
type projectView struct {
	models.Project
	AssignedInterns []assignedIntern `json:"assignedInterns"`
}
