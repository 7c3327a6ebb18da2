// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/status"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// ValidationError reports a missing or malformed field on create/update.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validate(p *models.Project) error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if p.Description == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if p.StartDate.IsZero() {
		return &ValidationError{Field: "startDate", Reason: "is required"}
	}
	if p.RequiredPeople < 1 {
		return &ValidationError{Field: "requiredPeople", Reason: "must be at least 1"}
	}
	return nil
}

// normalizeFields cleans user-supplied text, folds the case-insensitive
// name, and derives status from the date fields. Status supplied by the
// caller is always discarded.
func normalizeFields(p *models.Project, now time.Time) {
	p.Name = normalize.Name(p.Name)
	p.NameCI = text.Fold(p.Name)
	p.Description = htmlsanitize.Sanitize(p.Description)
	if p.RequiredPeople == 0 {
		p.RequiredPeople = 1
	}
	p.Status = status.ForProject(p.StartDate, p.EndDate, now)
}

// List returns all projects.
func (s *Store) List(ctx context.Context) ([]models.Project, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Project
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads a project by ObjectID. Returns mongo.ErrNoDocuments if
// no such project exists.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project after normalizing and validating fields.
// The assigned-interns list always starts empty; only the assignment
// coordinator may populate it.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	now := time.Now().UTC()

	p.ID = primitive.NewObjectID()
	p.AssignedInterns = nil
	normalizeFields(&p, now)
	if err := validate(&p); err != nil {
		return models.Project{}, err
	}

	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update replaces the project's mutable fields. CreatedAt and the
// assigned-interns list are preserved from the stored document, and
// status is re-derived from the (possibly new) dates.
// Returns mongo.ErrNoDocuments if the project does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.Project) (models.Project, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	now := time.Now().UTC()
	p.ID = id
	p.AssignedInterns = existing.AssignedInterns
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = now
	normalizeFields(&p, now)
	if err := validate(&p); err != nil {
		return models.Project{}, err
	}

	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Delete removes the project document itself. Callers must go through
// the assignment coordinator, which detaches intern references first.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddInternRef adds internID to the project's assigned-interns list
// with set semantics (adding an already-present ID is a no-op).
func (s *Store) AddInternRef(ctx context.Context, projectID, internID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": projectID},
		bson.M{
			"$addToSet": bson.M{"assigned_interns": internID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RemoveInternRef removes internID from the project's assigned-interns list.
func (s *Store) RemoveInternRef(ctx context.Context, projectID, internID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": projectID},
		bson.M{
			"$pull": bson.M{"assigned_interns": internID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RemoveInternRefFromAll removes internID from every project in projectIDs.
// Used by the delete-intern cascade.
func (s *Store) RemoveInternRefFromAll(ctx context.Context, projectIDs []primitive.ObjectID, internID primitive.ObjectID) error {
	if len(projectIDs) == 0 {
		return nil
	}
	_, err := s.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": projectIDs}},
		bson.M{
			"$pull": bson.M{"assigned_interns": internID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return err
}
