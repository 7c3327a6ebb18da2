// internal/app/features/interns/types.go
package interns

import (
	"fmt"

	"github.com/dalemusser/internhub/internal/app/system/dates"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// internPayload is the request body for create and update. Dates arrive
// as strings in either form the SPA sends; status is accepted but
// ignored (it is always re-derived before persistence).
type internPayload struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`

	ImageURL string `json:"imageUrl"`
	FunFact  string `json:"funFact"`

	JoinDate dates.Flexible `json:"joinDate"`
	EndDate  dates.Flexible `json:"endDate"`
	Status   string         `json:"status"`

	University string `json:"university"`
	Degree     string `json:"degree"`
	ResumeURL  string `json:"resumeUrl"`

	Documents []models.Document `json:"documents"`
	MentorID  string            `json:"mentorId"`

	TechStacks  []string           `json:"techStacks"`
	Performance models.Performance `json:"performance"`
}

// toModel converts the payload to a model, resolving the optional
// mentor reference. The assignment list and derived status are left for
// the store and coordinator to manage.
func (p internPayload) toModel() (models.Intern, error) {
	in := models.Intern{
		Name:        p.Name,
		Role:        p.Role,
		Department:  p.Department,
		Email:       p.Email,
		Phone:       p.Phone,
		ImageURL:    p.ImageURL,
		FunFact:     p.FunFact,
		JoinDate:    p.JoinDate.Time,
		EndDate:     p.EndDate.Ptr(),
		University:  p.University,
		Degree:      p.Degree,
		ResumeURL:   p.ResumeURL,
		Documents:   p.Documents,
		TechStacks:  p.TechStacks,
		Performance: p.Performance,
	}

	if p.MentorID != "" {
		oid, err := primitive.ObjectIDFromHex(p.MentorID)
		if err != nil {
			return models.Intern{}, fmt.Errorf("invalid mentor ID format")
		}
		in.MentorID = &oid
	}

	return in, nil
}

// techStacksPayload is the request body for the techstacks endpoint.
// The list replaces the intern's current one wholesale.
type techStacksPayload struct {
	TechStacks []string `json:"techStacks"`
}
