// Package assignment owns the bidirectional intern/project association.
//
// A pair (intern I, project P) is assigned iff P's assigned-interns list
// contains I and I's assigned-projects list contains P. The two lists
// live on separate documents in separate collections, so they can only
// stay in agreement if every mutation goes through this coordinator —
// it is the sole writer of both lists.
//
// The persistence layer guarantees atomicity per document, not per
// pair: Assign and Unassign update one side, then the other. When the
// second step fails the coordinator reports a *PartialError rather than
// success, so the caller can re-issue the operation (both list
// mutations are idempotent set operations, so a retry converges).
package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// InternStore is the slice of the intern record store the coordinator
// consumes.
type InternStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Intern, error)
	AddProjectRef(ctx context.Context, internID, projectID primitive.ObjectID) error
	RemoveProjectRef(ctx context.Context, internID, projectID primitive.ObjectID) error
	RemoveProjectRefFromAll(ctx context.Context, internIDs []primitive.ObjectID, projectID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProjectStore is the slice of the project record store the coordinator
// consumes.
type ProjectStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	AddInternRef(ctx context.Context, projectID, internID primitive.ObjectID) error
	RemoveInternRef(ctx context.Context, projectID, internID primitive.ObjectID) error
	RemoveInternRefFromAll(ctx context.Context, projectIDs []primitive.ObjectID, internID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Coordinator enforces the two-sided assignment invariant.
type Coordinator struct {
	interns  InternStore
	projects ProjectStore
	log      *zap.Logger
}

// New constructs a Coordinator over the two record stores.
func New(interns InternStore, projects ProjectStore, logger *zap.Logger) *Coordinator {
	return &Coordinator{interns: interns, projects: projects, log: logger}
}

// load fetches both sides of a pair, mapping store not-found signals to
// the coordinator's error taxonomy.
func (c *Coordinator) load(ctx context.Context, internID, projectID primitive.ObjectID) (*models.Intern, *models.Project, error) {
	p, err := c.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("load project: %w", err)
	}

	in, err := c.interns.GetByID(ctx, internID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrInternNotFound
		}
		return nil, nil, fmt.Errorf("load intern: %w", err)
	}

	return in, p, nil
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Assign associates the intern with the project on both sides.
//
// Fails with ErrInternNotFound/ErrProjectNotFound when either record is
// missing and with ErrAlreadyAssigned when the pair is already linked on
// BOTH sides. A one-sided link, as left behind by an earlier partial
// failure, is not a conflict: the set writes are idempotent, so
// re-issuing Assign completes the half-written pair.
//
// The project's list is updated first; if the intern-side update then
// fails, a *PartialError is returned.
func (c *Coordinator) Assign(ctx context.Context, internID, projectID primitive.ObjectID) error {
	in, p, err := c.load(ctx, internID, projectID)
	if err != nil {
		return err
	}

	if containsID(p.AssignedInterns, internID) && containsID(in.AssignedProjects, projectID) {
		return ErrAlreadyAssigned
	}

	if err := c.projects.AddInternRef(ctx, projectID, internID); err != nil {
		return fmt.Errorf("add intern to project: %w", err)
	}

	if err := c.interns.AddProjectRef(ctx, internID, projectID); err != nil {
		c.log.Error("assign half-completed",
			zap.String("intern_id", internID.Hex()),
			zap.String("project_id", projectID.Hex()),
			zap.Error(err))
		return &PartialError{Op: "assign", Done: "project", Failed: "intern", Err: err}
	}

	return nil
}

// Unassign removes the association on both sides.
//
// Fails with ErrInternNotFound/ErrProjectNotFound when either record is
// missing and with ErrNotAssigned when NEITHER side links the pair. A
// one-sided link is cleaned up rather than rejected, so re-issuing
// Unassign after a partial failure clears the leftover reference.
//
// The project's list is updated first; if the intern-side update then
// fails, a *PartialError is returned.
func (c *Coordinator) Unassign(ctx context.Context, internID, projectID primitive.ObjectID) error {
	in, p, err := c.load(ctx, internID, projectID)
	if err != nil {
		return err
	}

	if !containsID(p.AssignedInterns, internID) && !containsID(in.AssignedProjects, projectID) {
		return ErrNotAssigned
	}

	if err := c.projects.RemoveInternRef(ctx, projectID, internID); err != nil {
		return fmt.Errorf("remove intern from project: %w", err)
	}

	if err := c.interns.RemoveProjectRef(ctx, internID, projectID); err != nil {
		c.log.Error("unassign half-completed",
			zap.String("intern_id", internID.Hex()),
			zap.String("project_id", projectID.Hex()),
			zap.Error(err))
		return &PartialError{Op: "unassign", Done: "project", Failed: "intern", Err: err}
	}

	return nil
}

// DeleteIntern detaches the intern from every project that references it,
// then deletes the intern record. Detach runs first so no project is
// ever left pointing at a deleted intern.
func (c *Coordinator) DeleteIntern(ctx context.Context, internID primitive.ObjectID) error {
	in, err := c.interns.GetByID(ctx, internID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInternNotFound
		}
		return fmt.Errorf("load intern: %w", err)
	}

	if len(in.AssignedProjects) > 0 {
		if err := c.projects.RemoveInternRefFromAll(ctx, in.AssignedProjects, internID); err != nil {
			return fmt.Errorf("detach intern from projects: %w", err)
		}
	}

	if err := c.interns.Delete(ctx, internID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInternNotFound
		}
		c.log.Error("intern delete half-completed",
			zap.String("intern_id", internID.Hex()),
			zap.Error(err))
		return &PartialError{Op: "delete-intern", Done: "detach", Failed: "delete", Err: err}
	}
	return nil
}

// DeleteProject detaches the project from every intern that references
// it, then deletes the project record.
func (c *Coordinator) DeleteProject(ctx context.Context, projectID primitive.ObjectID) error {
	p, err := c.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("load project: %w", err)
	}

	if len(p.AssignedInterns) > 0 {
		if err := c.interns.RemoveProjectRefFromAll(ctx, p.AssignedInterns, projectID); err != nil {
			return fmt.Errorf("detach project from interns: %w", err)
		}
	}

	if err := c.projects.Delete(ctx, projectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProjectNotFound
		}
		c.log.Error("project delete half-completed",
			zap.String("project_id", projectID.Hex()),
			zap.Error(err))
		return &PartialError{Op: "delete-project", Done: "detach", Failed: "delete", Err: err}
	}
	return nil
}
