// internal/app/features/interns/create.go
package interns

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
)

// HandleCreate handles POST /api/interns.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	created, err := h.Store.Create(ctx, in)
	if err != nil {
		h.writeStoreError(w, err, "create intern")
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}
