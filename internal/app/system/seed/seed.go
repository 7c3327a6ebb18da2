// Package seed loads demo data for local development.
//
// Seeding runs only when the interns collection is empty, so restarting
// a dev server never duplicates records. All assignment links are
// created through the coordinator so the seeded data respects the
// two-sided invariant.
package seed

import (
	"context"
	"fmt"
	"time"

	internstore "github.com/dalemusser/internhub/internal/app/store/interns"
	projectstore "github.com/dalemusser/internhub/internal/app/store/projects"
	"github.com/dalemusser/internhub/internal/app/system/assignment"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

// Run inserts demo interns and projects if the database is empty.
func Run(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	n, err := db.Collection("interns").CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count interns: %w", err)
	}
	if n > 0 {
		logger.Info("seed: interns collection not empty, skipping")
		return nil
	}

	interns := internstore.New(db)
	projects := projectstore.New(db)
	coord := assignment.New(interns, projects, logger)

	alex, err := interns.Create(ctx, models.Intern{
		Name:       "Alex Johnson",
		Role:       "Frontend Developer Intern",
		Department: "Engineering",
		Email:      "alex.johnson@example.com",
		Phone:      "+1 (555) 123-4567",
		ImageURL:   "https://randomuser.me/api/portraits/men/1.jpg",
		FunFact:    "Can solve a Rubik's cube in under a minute!",
		JoinDate:   date("2024-01-15"),
		EndDate:    datePtr("2024-07-15"),
		University: "Stanford University",
		Degree:     "Computer Science",
		TechStacks: []string{"JavaScript", "React", "Node.js", "HTML/CSS"},
		Performance: models.Performance{
			Rating:  "4.7",
			Sprints: 6,
			Projects: []models.PerformanceItem{
				{ID: 1, Name: "Company Website Redesign", Description: "Implemented responsive design components", Status: "in-progress"},
				{ID: 2, Name: "Internal Dashboard", Description: "Built data visualization components", Status: "completed"},
			},
			Courses: []models.PerformanceCourse{
				{ID: 1, Name: "Advanced React Patterns", Status: "Completed"},
				{ID: 2, Name: "State Management with Redux", Status: "In Progress"},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("seed intern: %w", err)
	}

	samantha, err := interns.Create(ctx, models.Intern{
		Name:       "Samantha Lee",
		Role:       "UI/UX Design Intern",
		Department: "Design",
		Email:      "samantha.lee@example.com",
		Phone:      "+1 (555) 987-6543",
		FunFact:    "Has visited 12 countries before turning 20",
		JoinDate:   date("2025-02-01"),
		University: "Rhode Island School of Design",
		Degree:     "Graphic Design",
		TechStacks: []string{"Figma", "Sketch", "Adobe XD"},
	})
	if err != nil {
		return fmt.Errorf("seed intern: %w", err)
	}

	portal, err := projects.Create(ctx, models.Project{
		Name:           "Customer Portal Revamp",
		Description:    "Rebuild the customer-facing portal with a modern component library.",
		StartDate:      date("2025-03-01"),
		EndDate:        datePtr("2025-09-30"),
		RequiredPeople: 2,
		TechStacks:     []string{"React", "Node.js"},
	})
	if err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	analytics, err := projects.Create(ctx, models.Project{
		Name:        "Analytics Pipeline",
		Description: "Event collection and reporting for product usage metrics.",
		StartDate:   date("2026-01-15"),
		TechStacks:  []string{"Go", "MongoDB"},
	})
	if err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	for _, pair := range []struct {
		intern  models.Intern
		project models.Project
	}{
		{alex, portal},
		{samantha, portal},
		{samantha, analytics},
	} {
		if err := coord.Assign(ctx, pair.intern.ID, pair.project.ID); err != nil {
			return fmt.Errorf("seed assignment: %w", err)
		}
	}

	logger.Info("seed: demo data loaded",
		zap.Int("interns", 2),
		zap.Int("projects", 2),
	)
	return nil
}
