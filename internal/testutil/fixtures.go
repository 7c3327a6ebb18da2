// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/status"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Repeated calls accumulate parameters on the same route context.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateIntern inserts a test intern with the given name and email.
// The join date is set in the past so the derived status is active.
func (f *Fixtures) CreateIntern(ctx context.Context, name, email string) models.Intern {
	f.t.Helper()

	now := time.Now().UTC()
	in := models.Intern{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Role:       "Software Intern",
		Department: "Engineering",
		Email:      email,
		Phone:      "555-0100",
		JoinDate:   now.AddDate(0, -1, 0),
		Status:     status.InternActive,
		Performance: models.Performance{
			Rating:  "4.0",
			Sprints: 1,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("interns").InsertOne(ctx, in); err != nil {
		f.t.Fatalf("failed to create test intern: %v", err)
	}

	return in
}

// CreateCompletedIntern inserts a test intern whose end date has
// already passed.
func (f *Fixtures) CreateCompletedIntern(ctx context.Context, name, email string) models.Intern {
	f.t.Helper()

	now := time.Now().UTC()
	end := now.AddDate(0, 0, -7)
	in := models.Intern{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Role:       "Software Intern",
		Department: "Engineering",
		Email:      email,
		Phone:      "555-0100",
		JoinDate:   now.AddDate(0, -6, 0),
		EndDate:    &end,
		Status:     status.InternCompleted,
		Performance: models.Performance{
			Rating:  "4.0",
			Sprints: 1,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("interns").InsertOne(ctx, in); err != nil {
		f.t.Fatalf("failed to create test intern: %v", err)
	}

	return in
}

// CreateProject inserts a test project with the given name. The start
// date is set in the past and no end date, so the derived status is
// active.
func (f *Fixtures) CreateProject(ctx context.Context, name string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:             primitive.NewObjectID(),
		Name:           name,
		NameCI:         text.Fold(name),
		Description:    "Test project",
		StartDate:      now.AddDate(0, -1, 0),
		RequiredPeople: 1,
		Status:         status.ProjectActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}

	return p
}

// CreateUpcomingProject inserts a test project whose start date is in
// the future.
func (f *Fixtures) CreateUpcomingProject(ctx context.Context, name string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:             primitive.NewObjectID(),
		Name:           name,
		NameCI:         text.Fold(name),
		Description:    "Test project",
		StartDate:      now.AddDate(0, 1, 0),
		RequiredPeople: 1,
		Status:         status.ProjectUpcoming,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}

	return p
}
