// internal/app/store/interns/internstore.go
package internstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/status"
	"github.com/dalemusser/internhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("interns")}
}

// ErrDuplicateEmail is returned when creating or updating an intern with
// an email that already belongs to another intern.
var ErrDuplicateEmail = errors.New("an intern with this email already exists")

// ValidationError reports a missing or malformed field on create/update.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func required(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

func validate(in *models.Intern) error {
	if err := required("name", in.Name); err != nil {
		return err
	}
	if err := required("role", in.Role); err != nil {
		return err
	}
	if err := required("department", in.Department); err != nil {
		return err
	}
	if err := required("email", in.Email); err != nil {
		return err
	}
	if err := required("phone", in.Phone); err != nil {
		return err
	}
	if in.JoinDate.IsZero() {
		return &ValidationError{Field: "joinDate", Reason: "is required"}
	}
	for i, d := range in.Documents {
		if d.Type == "" || d.URL == "" {
			return &ValidationError{Field: fmt.Sprintf("documents[%d]", i), Reason: "requires type and url"}
		}
	}
	return nil
}

// normalizeFields cleans user-supplied text, folds the case-insensitive
// name, and derives status from the end date. Status supplied by the
// caller is always discarded.
func normalizeFields(in *models.Intern, now time.Time) {
	in.Name = normalize.Name(in.Name)
	in.NameCI = text.Fold(in.Name)
	in.Email = normalize.Email(in.Email)
	in.FunFact = htmlsanitize.Sanitize(in.FunFact)
	in.Status = status.ForIntern(in.EndDate, now)
	if in.Performance.Rating == "" {
		in.Performance.Rating = "4.0"
	}
	if in.Performance.Sprints == 0 {
		in.Performance.Sprints = 1
	}
}

// List returns all interns.
func (s *Store) List(ctx context.Context) ([]models.Intern, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Intern
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads an intern by ObjectID. Returns mongo.ErrNoDocuments if
// no such intern exists.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Intern, error) {
	var in models.Intern
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&in); err != nil {
		return nil, err
	}
	return &in, nil
}

// GetByIDs loads the interns whose IDs are in ids. Missing IDs are
// silently skipped.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Intern, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Intern
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new intern after normalizing and validating fields.
// The assigned-projects list always starts empty; only the assignment
// coordinator may populate it.
func (s *Store) Create(ctx context.Context, in models.Intern) (models.Intern, error) {
	now := time.Now().UTC()

	in.ID = primitive.NewObjectID()
	in.AssignedProjects = nil
	normalizeFields(&in, now)
	if err := validate(&in); err != nil {
		return models.Intern{}, err
	}

	in.CreatedAt = now
	in.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, in); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Intern{}, ErrDuplicateEmail
		}
		return models.Intern{}, err
	}
	return in, nil
}

// Update replaces the intern's mutable fields. CreatedAt and the
// assigned-projects list are preserved from the stored document, and
// status is re-derived from the (possibly new) end date.
// Returns mongo.ErrNoDocuments if the intern does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in models.Intern) (models.Intern, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Intern{}, err
	}

	now := time.Now().UTC()
	in.ID = id
	in.AssignedProjects = existing.AssignedProjects
	in.CreatedAt = existing.CreatedAt
	in.UpdatedAt = now
	normalizeFields(&in, now)
	if err := validate(&in); err != nil {
		return models.Intern{}, err
	}

	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, in); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Intern{}, ErrDuplicateEmail
		}
		return models.Intern{}, err
	}
	return in, nil
}

// Delete removes the intern document itself. Callers must go through
// the assignment coordinator, which detaches project references first.
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

// SetTechStacks replaces the intern's tech-stack list and returns the
// updated document. Returns mongo.ErrNoDocuments if the intern does
// not exist.
func (s *Store) SetTechStacks(ctx context.Context, id primitive.ObjectID, stacks []string) (*models.Intern, error) {
	cleaned := make([]string, 0, len(stacks))
	for _, st := range stacks {
		if st = normalize.Name(st); st != "" {
			cleaned = append(cleaned, st)
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var in models.Intern
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"tech_stacks": cleaned, "updated_at": time.Now().UTC()}},
		opts,
	).Decode(&in)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// AddProjectRef adds projectID to the intern's assigned-projects list
// with set semantics (adding an already-present ID is a no-op).
func (s *Store) AddProjectRef(ctx context.Context, internID, projectID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": internID},
		bson.M{
			"$addToSet": bson.M{"assigned_projects": projectID},
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

// RemoveProjectRef removes projectID from the intern's assigned-projects list.
func (s *Store) RemoveProjectRef(ctx context.Context, internID, projectID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": internID},
		bson.M{
			"$pull": bson.M{"assigned_projects": projectID},
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

// RemoveProjectRefFromAll removes projectID from every intern in internIDs.
// Used by the delete-project cascade.
func (s *Store) RemoveProjectRefFromAll(ctx context.Context, internIDs []primitive.ObjectID, projectID primitive.ObjectID) error {
	if len(internIDs) == 0 {
		return nil
	}
	_, err := s.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": internIDs}},
		bson.M{
			"$pull": bson.M{"assigned_projects": projectID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return err
}
