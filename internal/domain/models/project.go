// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project represents a project that interns can be assigned to.
//
// NOTE:
//   - Status is derived from StartDate/EndDate on every create/update
//     (see system/status); a caller-supplied value is never trusted.
//   - AssignedInterns is the mirror of Intern.AssignedProjects and is
//     maintained only by the assignment coordinator.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Description string             `bson:"description" json:"description"`

	StartDate time.Time  `bson:"start_date" json:"startDate"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`

	RequiredPeople int `bson:"required_people" json:"requiredPeople"`

	TechStacks      []string             `bson:"tech_stacks,omitempty" json:"techStacks"`
	AssignedInterns []primitive.ObjectID `bson:"assigned_interns,omitempty" json:"assignedInterns"`

	Status string `bson:"status" json:"status"` // "upcoming" | "active" | "completed"

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
