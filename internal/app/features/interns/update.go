// internal/app/features/interns/update.go
package interns

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleUpdate handles PUT /api/interns/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid intern ID format")
		return
	}

	var payload internPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "%s", err.Error())
		return
	}

	in, err := payload.toModel()
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "%s", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, id, in)
	if err != nil {
		h.writeStoreError(w, err, "update intern")
		return
	}

	httpjson.Write(w, http.StatusOK, updated)
}
