// internal/app/features/projects/view.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeView handles GET /api/projects/{id}. The assigned intern
// references are resolved into trimmed embedded documents so the detail
// page does not need a request per intern.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, err, "fetch project")
		return
	}

	view := projectView{
		Project:         *p,
		AssignedInterns: []assignedIntern{},
	}

	if len(p.AssignedInterns) > 0 {
		ins, err := h.Interns.GetByIDs(ctx, p.AssignedInterns)
		if err != nil {
			h.writeStoreError(w, err, "fetch project")
			return
		}
		for _, in := range ins {
			view.AssignedInterns = append(view.AssignedInterns, assignedIntern{
				ID:         in.ID.Hex(),
				Name:       in.Name,
				Role:       in.Role,
				Department: in.Department,
				Email:      in.Email,
			})
		}
	}

	httpjson.Write(w, http.StatusOK, view)
}
