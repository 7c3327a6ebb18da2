// internal/app/features/interns/delete.go
package interns

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

// HandleDelete handles DELETE /api/interns/{id}. The delete cascades
// through the coordinator so no project keeps a dangling reference.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid intern ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Coord.DeleteIntern(ctx, id); err != nil {
		var pe *assignment.PartialError
		switch {
		case errors.Is(err, assignment.ErrInternNotFound):
			httpjson.Message(w, http.StatusNotFound, "Intern not found")
		case errors.As(err, &pe):
			h.Log.Error("delete intern left partial state",
				zap.String("intern_id", id.Hex()), zap.Error(err))
			httpjson.Message(w, http.StatusBadGateway, "Intern delete incomplete; some project references may remain")
		default:
			h.Log.Error("delete intern", zap.Error(err))
			httpjson.Message(w, http.StatusInternalServerError, "Failed to delete intern")
		}
		return
	}

	httpjson.Message(w, http.StatusOK, "Intern deleted successfully")
}
