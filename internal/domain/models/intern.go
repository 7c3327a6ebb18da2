// internal/domain/models/intern.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Intern represents a single intern record.
//
// NOTE:
//   - Status is derived from EndDate on every create/update
//     (see system/status); a caller-supplied value is never trusted.
//   - AssignedProjects is maintained only by the assignment
//     coordinator (system/assignment). No other code path may
//     mutate it, and the mirror list on Project must always agree.
type Intern struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	NameCI     string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Role       string             `bson:"role" json:"role"`
	Department string             `bson:"department" json:"department"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`

	ImageURL string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	FunFact  string `bson:"fun_fact,omitempty" json:"funFact,omitempty"`

	JoinDate time.Time  `bson:"join_date" json:"joinDate"`
	EndDate  *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Status   string     `bson:"status" json:"status"` // "active" | "completed"

	University string `bson:"university,omitempty" json:"university,omitempty"`
	Degree     string `bson:"degree,omitempty" json:"degree,omitempty"`
	ResumeURL  string `bson:"resume_url,omitempty" json:"resumeUrl,omitempty"`

	Documents []Document          `bson:"documents,omitempty" json:"documents,omitempty"`
	MentorID  *primitive.ObjectID `bson:"mentor_id,omitempty" json:"mentorId,omitempty"`

	TechStacks       []string             `bson:"tech_stacks,omitempty" json:"techStacks"`
	AssignedProjects []primitive.ObjectID `bson:"assigned_projects,omitempty" json:"assignedProjects"`

	Performance Performance `bson:"performance,omitempty" json:"performance"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Document is an uploaded document reference (offer letter, ID, etc.).
type Document struct {
	Type string `bson:"type" json:"type"`
	URL  string `bson:"url" json:"url"`
}

// Performance is the embedded review record for an intern.
type Performance struct {
	Rating   string              `bson:"rating,omitempty" json:"rating,omitempty"`
	Sprints  int                 `bson:"sprints,omitempty" json:"sprints,omitempty"`
	Projects []PerformanceItem   `bson:"projects,omitempty" json:"projects,omitempty"`
	Courses  []PerformanceCourse `bson:"courses,omitempty" json:"courses,omitempty"`
}

// PerformanceItem is one internal project entry in a performance record.
type PerformanceItem struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Status      string `bson:"status" json:"status"` // "in-progress" | "completed"
}

// PerformanceCourse is one training course entry in a performance record.
type PerformanceCourse struct {
	ID     int    `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Status string `bson:"status" json:"status"` // "In Progress" | "Completed"
}
