// internal/app/features/projects/list.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/domain/models"
)

// ServeList handles GET /api/projects.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.writeStoreError(w, err, "fetch projects")
		return
	}
	if list == nil {
		list = []models.Project{}
	}

	httpjson.Write(w, http.StatusOK, list)
}
