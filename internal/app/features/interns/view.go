// internal/app/features/interns/view.go
package interns

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeView handles GET /api/interns/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid intern ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	in, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, err, "fetch intern")
		return
	}

	httpjson.Write(w, http.StatusOK, in)
}
