// internal/app/features/projects/create.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
)

// HandleCreate handles POST /api/projects.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "%s", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, payload.toModel())
	if err != nil {
		h.writeStoreError(w, err, "create project")
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}
