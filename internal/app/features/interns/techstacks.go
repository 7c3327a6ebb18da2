// internal/app/features/interns/techstacks.go
package interns

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleTechStacks handles POST /api/interns/{id}/techstacks. The body
// must carry a JSON array under techStacks; it replaces the intern's
// list wholesale.
func (h *Handler) HandleTechStacks(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid intern ID format")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var payload techStacksPayload
	if err := json.Unmarshal(body, &payload); err != nil || !hasArrayField(body, "techStacks") {
		httpjson.Message(w, http.StatusBadRequest, "Tech stacks must be an array")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.SetTechStacks(ctx, id, payload.TechStacks)
	if err != nil {
		h.writeStoreError(w, err, "update tech stacks")
		return
	}

	httpjson.Write(w, http.StatusOK, updated)
}

// hasArrayField reports whether the named top-level field is present
// and is a JSON array. A missing or non-array field must be rejected
// rather than silently treated as empty.
func hasArrayField(body []byte, field string) bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return false
	}
	v, ok := raw[field]
	if !ok {
		return false
	}
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) > 0 && trimmed[0] == '['
}
