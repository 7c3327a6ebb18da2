package assignment

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// fakeInternStore is an in-memory InternStore with injectable failures,
// used to exercise paths a live database cannot produce on demand
// (notably the half-completed two-step mutation).
type fakeInternStore struct {
	interns map[primitive.ObjectID]*models.Intern

	failAddRef    error
	failRemoveRef error
	failDelete    error
}

func newFakeInternStore() *fakeInternStore {
	return &fakeInternStore{interns: make(map[primitive.ObjectID]*models.Intern)}
}

func (f *fakeInternStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Intern, error) {
	in, ok := f.interns[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *in
	cp.AssignedProjects = append([]primitive.ObjectID(nil), in.AssignedProjects...)
	return &cp, nil
}

func (f *fakeInternStore) AddProjectRef(_ context.Context, internID, projectID primitive.ObjectID) error {
	if f.failAddRef != nil {
		return f.failAddRef
	}
	in, ok := f.interns[internID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if !containsID(in.AssignedProjects, projectID) {
		in.AssignedProjects = append(in.AssignedProjects, projectID)
	}
	return nil
}

func (f *fakeInternStore) RemoveProjectRef(_ context.Context, internID, projectID primitive.ObjectID) error {
	if f.failRemoveRef != nil {
		return f.failRemoveRef
	}
	in, ok := f.interns[internID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	in.AssignedProjects = removeID(in.AssignedProjects, projectID)
	return nil
}

func (f *fakeInternStore) RemoveProjectRefFromAll(_ context.Context, internIDs []primitive.ObjectID, projectID primitive.ObjectID) error {
	for _, id := range internIDs {
		if in, ok := f.interns[id]; ok {
			in.AssignedProjects = removeID(in.AssignedProjects, projectID)
		}
	}
	return nil
}

func (f *fakeInternStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.interns[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.interns, id)
	return nil
}

type fakeProjectStore struct {
	projects map[primitive.ObjectID]*models.Project

	failAddRef    error
	failRemoveRef error
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[primitive.ObjectID]*models.Project)}
}

func (f *fakeProjectStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	cp.AssignedInterns = append([]primitive.ObjectID(nil), p.AssignedInterns...)
	return &cp, nil
}

func (f *fakeProjectStore) AddInternRef(_ context.Context, projectID, internID primitive.ObjectID) error {
	if f.failAddRef != nil {
		return f.failAddRef
	}
	p, ok := f.projects[projectID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if !containsID(p.AssignedInterns, internID) {
		p.AssignedInterns = append(p.AssignedInterns, internID)
	}
	return nil
}

func (f *fakeProjectStore) RemoveInternRef(_ context.Context, projectID, internID primitive.ObjectID) error {
	if f.failRemoveRef != nil {
		return f.failRemoveRef
	}
	p, ok := f.projects[projectID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.AssignedInterns = removeID(p.AssignedInterns, internID)
	return nil
}

func (f *fakeProjectStore) RemoveInternRefFromAll(_ context.Context, projectIDs []primitive.ObjectID, internID primitive.ObjectID) error {
	for _, id := range projectIDs {
		if p, ok := f.projects[id]; ok {
			p.AssignedInterns = removeID(p.AssignedInterns, internID)
		}
	}
	return nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.projects[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.projects, id)
	return nil
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type world struct {
	interns  *fakeInternStore
	projects *fakeProjectStore
	coord    *Coordinator
}

func newWorld() *world {
	is := newFakeInternStore()
	ps := newFakeProjectStore()
	return &world{
		interns:  is,
		projects: ps,
		coord:    New(is, ps, zap.NewNop()),
	}
}

func (w *world) addIntern() primitive.ObjectID {
	id := primitive.NewObjectID()
	w.interns.interns[id] = &models.Intern{ID: id, Name: "Test Intern"}
	return id
}

func (w *world) addProject() primitive.ObjectID {
	id := primitive.NewObjectID()
	w.projects.projects[id] = &models.Project{ID: id, Name: "Test Project"}
	return id
}

func countID(ids []primitive.ObjectID, id primitive.ObjectID) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}

func TestAssign_RoundTrip(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	if err := w.coord.Assign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	in, _ := w.interns.GetByID(context.Background(), internID)
	if got := countID(in.AssignedProjects, projectID); got != 1 {
		t.Errorf("intern's project list contains project %d times, want 1", got)
	}

	p, _ := w.projects.GetByID(context.Background(), projectID)
	if got := countID(p.AssignedInterns, internID); got != 1 {
		t.Errorf("project's intern list contains intern %d times, want 1", got)
	}
}

func TestAssign_ProjectNotFound(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()

	err := w.coord.Assign(context.Background(), internID, primitive.NewObjectID())
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestAssign_InternNotFound(t *testing.T) {
	w := newWorld()
	projectID := w.addProject()

	err := w.coord.Assign(context.Background(), primitive.NewObjectID(), projectID)
	if !errors.Is(err, ErrInternNotFound) {
		t.Errorf("expected ErrInternNotFound, got %v", err)
	}
}

func TestAssign_DuplicateConflict(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	if err := w.coord.Assign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("first Assign failed: %v", err)
	}

	err := w.coord.Assign(context.Background(), internID, projectID)
	if !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
	}

	// Neither list may have picked up a duplicate entry.
	in, _ := w.interns.GetByID(context.Background(), internID)
	if got := countID(in.AssignedProjects, projectID); got != 1 {
		t.Errorf("intern list count after duplicate assign: got %d, want 1", got)
	}
	p, _ := w.projects.GetByID(context.Background(), projectID)
	if got := countID(p.AssignedInterns, internID); got != 1 {
		t.Errorf("project list count after duplicate assign: got %d, want 1", got)
	}
}

func TestAssign_SecondStepFailure_ReportsPartial(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	boom := errors.New("write failed")
	w.interns.failAddRef = boom

	err := w.coord.Assign(context.Background(), internID, projectID)
	if err == nil {
		t.Fatal("expected error, got success with a half-completed mutation")
	}

	var pe *PartialError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PartialError, got %T: %v", err, err)
	}
	if pe.Op != "assign" || pe.Done != "project" || pe.Failed != "intern" {
		t.Errorf("PartialError fields: got %+v", pe)
	}
	if !errors.Is(err, boom) {
		t.Error("expected PartialError to wrap the underlying failure")
	}
}

func TestAssign_RetryAfterPartialFailure_Converges(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	w.interns.failAddRef = errors.New("write failed")

	err := w.coord.Assign(context.Background(), internID, projectID)
	var pe *PartialError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PartialError, got %v", err)
	}

	// The relation is one-sided: project links the intern, intern does
	// not. A retry must complete the pair, not report a conflict.
	w.interns.failAddRef = nil

	if err := w.coord.Assign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("retry Assign failed: %v", err)
	}

	in, _ := w.interns.GetByID(context.Background(), internID)
	if got := countID(in.AssignedProjects, projectID); got != 1 {
		t.Errorf("intern list count after retry: got %d, want 1", got)
	}
	p, _ := w.projects.GetByID(context.Background(), projectID)
	if got := countID(p.AssignedInterns, internID); got != 1 {
		t.Errorf("project list count after retry: got %d, want 1", got)
	}
}

func TestAssign_FirstStepFailure_NotPartial(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	w.projects.failAddRef = errors.New("write failed")

	err := w.coord.Assign(context.Background(), internID, projectID)
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *PartialError
	if errors.As(err, &pe) {
		t.Error("first-step failure leaves both lists untouched; should not be a PartialError")
	}
}

func TestUnassign_RemovesBothSides(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	if err := w.coord.Assign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if err := w.coord.Unassign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("Unassign failed: %v", err)
	}

	in, _ := w.interns.GetByID(context.Background(), internID)
	if len(in.AssignedProjects) != 0 {
		t.Errorf("intern list not emptied: %v", in.AssignedProjects)
	}
	p, _ := w.projects.GetByID(context.Background(), projectID)
	if len(p.AssignedInterns) != 0 {
		t.Errorf("project list not emptied: %v", p.AssignedInterns)
	}
}

func TestUnassign_NotAssigned(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	err := w.coord.Unassign(context.Background(), internID, projectID)
	if !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned, got %v", err)
	}

	// Both lists unchanged.
	in, _ := w.interns.GetByID(context.Background(), internID)
	if len(in.AssignedProjects) != 0 {
		t.Errorf("intern list changed: %v", in.AssignedProjects)
	}
	p, _ := w.projects.GetByID(context.Background(), projectID)
	if len(p.AssignedInterns) != 0 {
		t.Errorf("project list changed: %v", p.AssignedInterns)
	}
}

func TestUnassign_SecondStepFailure_ReportsPartial(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	if err := w.coord.Assign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	w.interns.failRemoveRef = errors.New("write failed")

	err := w.coord.Unassign(context.Background(), internID, projectID)
	var pe *PartialError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PartialError, got %v", err)
	}
	if pe.Op != "unassign" {
		t.Errorf("Op: got %q, want %q", pe.Op, "unassign")
	}
}

func TestUnassign_RetryAfterPartialFailure_Converges(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	if err := w.coord.Assign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	w.interns.failRemoveRef = errors.New("write failed")

	err := w.coord.Unassign(context.Background(), internID, projectID)
	var pe *PartialError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PartialError, got %v", err)
	}

	// Project side is cleared, intern side still holds the reference.
	// A retry must clean up the leftover rather than report not-assigned.
	w.interns.failRemoveRef = nil

	if err := w.coord.Unassign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("retry Unassign failed: %v", err)
	}

	in, _ := w.interns.GetByID(context.Background(), internID)
	if len(in.AssignedProjects) != 0 {
		t.Errorf("intern list not emptied after retry: %v", in.AssignedProjects)
	}
	p, _ := w.projects.GetByID(context.Background(), projectID)
	if len(p.AssignedInterns) != 0 {
		t.Errorf("project list not emptied after retry: %v", p.AssignedInterns)
	}
}

func TestDeleteIntern_CascadesAcrossProjects(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	p1 := w.addProject()
	p2 := w.addProject()

	for _, pid := range []primitive.ObjectID{p1, p2} {
		if err := w.coord.Assign(context.Background(), internID, pid); err != nil {
			t.Fatalf("Assign failed: %v", err)
		}
	}

	if err := w.coord.DeleteIntern(context.Background(), internID); err != nil {
		t.Fatalf("DeleteIntern failed: %v", err)
	}

	if _, err := w.interns.GetByID(context.Background(), internID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected intern to be gone, got %v", err)
	}
	for _, pid := range []primitive.ObjectID{p1, p2} {
		p, _ := w.projects.GetByID(context.Background(), pid)
		if containsID(p.AssignedInterns, internID) {
			t.Errorf("project %s still references deleted intern", pid.Hex())
		}
	}
}

func TestDeleteIntern_DeleteFailureAfterDetach_ReportsPartial(t *testing.T) {
	w := newWorld()
	internID := w.addIntern()
	projectID := w.addProject()

	if err := w.coord.Assign(context.Background(), internID, projectID); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	w.interns.failDelete = errors.New("write failed")

	err := w.coord.DeleteIntern(context.Background(), internID)
	var pe *PartialError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PartialError, got %v", err)
	}
	if pe.Op != "delete-intern" || pe.Done != "detach" || pe.Failed != "delete" {
		t.Errorf("PartialError fields: got %+v", pe)
	}

	// The detach already happened; the record is orphaned but consistent.
	p, _ := w.projects.GetByID(context.Background(), projectID)
	if containsID(p.AssignedInterns, internID) {
		t.Error("project still references intern after detach")
	}
}

func TestDeleteIntern_NotFound(t *testing.T) {
	w := newWorld()
	err := w.coord.DeleteIntern(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrInternNotFound) {
		t.Errorf("expected ErrInternNotFound, got %v", err)
	}
}

func TestDeleteProject_CascadesAcrossInterns(t *testing.T) {
	w := newWorld()
	projectID := w.addProject()
	i1 := w.addIntern()
	i2 := w.addIntern()

	for _, iid := range []primitive.ObjectID{i1, i2} {
		if err := w.coord.Assign(context.Background(), iid, projectID); err != nil {
			t.Fatalf("Assign failed: %v", err)
		}
	}

	if err := w.coord.DeleteProject(context.Background(), projectID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	if _, err := w.projects.GetByID(context.Background(), projectID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected project to be gone, got %v", err)
	}
	for _, iid := range []primitive.ObjectID{i1, i2} {
		in, _ := w.interns.GetByID(context.Background(), iid)
		if containsID(in.AssignedProjects, projectID) {
			t.Errorf("intern %s still references deleted project", iid.Hex())
		}
	}
}

func TestDeleteProject_NotFound(t *testing.T) {
	w := newWorld()
	err := w.coord.DeleteProject(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}
