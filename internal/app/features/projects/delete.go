// internal/app/features/projects/delete.go
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

// HandleDelete handles DELETE /api/projects/{id}. The delete cascades
// through the coordinator so no intern keeps a dangling reference.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Coord.DeleteProject(ctx, id); err != nil {
		var pe *assignment.PartialError
		switch {
		case errors.Is(err, assignment.ErrProjectNotFound):
			httpjson.Message(w, http.StatusNotFound, "Project not found")
		case errors.As(err, &pe):
			h.Log.Error("delete project left partial state",
				zap.String("project_id", id.Hex()), zap.Error(err))
			httpjson.Message(w, http.StatusBadGateway, "Project delete incomplete; some intern references may remain")
		default:
			h.Log.Error("delete project", zap.Error(err))
			httpjson.Message(w, http.StatusInternalServerError, "Failed to delete project")
		}
		return
	}

	httpjson.Message(w, http.StatusOK, "Project deleted successfully")
}
