// internal/app/features/projects/assign.go
package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/assignment"
	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleAssign handles POST /api/projects/{id}/assign/{internId}.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	projectID, internID, ok := h.assignmentIDs(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Coord.Assign(ctx, internID, projectID); err != nil {
		h.writeAssignmentError(w, err, "assign intern")
		return
	}

	httpjson.Message(w, http.StatusOK, "Intern assigned to project successfully")
}

// HandleUnassign handles DELETE /api/projects/{id}/assign/{internId}.
func (h *Handler) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	projectID, internID, ok := h.assignmentIDs(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Coord.Unassign(ctx, internID, projectID); err != nil {
		h.writeAssignmentError(w, err, "unassign intern")
		return
	}

	httpjson.Message(w, http.StatusOK, "Intern removed from project successfully")
}

// assignmentIDs extracts and validates both route IDs, writing the
// error response itself when either is malformed.
func (h *Handler) assignmentIDs(w http.ResponseWriter, r *http.Request) (projectID, internID primitive.ObjectID, ok bool) {
	projectID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid project ID format")
		return primitive.ObjectID{}, primitive.ObjectID{}, false
	}
	internID, err = primitive.ObjectIDFromHex(chi.URLParam(r, "internId"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid intern ID format")
		return primitive.ObjectID{}, primitive.ObjectID{}, false
	}
	return projectID, internID, true
}

// writeAssignmentError maps coordinator failures onto the API's status
// codes. A partial two-step mutation is never reported as success; it
// surfaces as a 502 so the caller knows the relation may be one-sided.
func (h *Handler) writeAssignmentError(w http.ResponseWriter, err error, op string) {
	var pe *assignment.PartialError

	switch {
	case errors.Is(err, assignment.ErrInternNotFound):
		httpjson.Message(w, http.StatusNotFound, "Intern not found")
	case errors.Is(err, assignment.ErrProjectNotFound):
		httpjson.Message(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, assignment.ErrAlreadyAssigned):
		httpjson.Message(w, http.StatusConflict, "Intern is already assigned to this project")
	case errors.Is(err, assignment.ErrNotAssigned):
		httpjson.Message(w, http.StatusBadRequest, "Intern is not assigned to this project")
	case errors.As(err, &pe):
		h.Log.Error("assignment left partial state", zap.Error(err))
		httpjson.Message(w, http.StatusBadGateway, "Assignment incomplete; the relation may be one-sided")
	default:
		h.Log.Error(op, zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to %s", op)
	}
}
