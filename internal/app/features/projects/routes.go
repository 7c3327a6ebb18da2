// internal/app/features/projects/routes.go
package projects

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	// Everything under /projects requires a valid bearer token
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireToken)

		// LIST
		pr.Get("/", h.ServeList)

		// CREATE
		pr.Post("/", h.HandleCreate)

		// VIEW (assigned interns embedded)
		pr.Get("/{id}", h.ServeView)

		// UPDATE
		pr.Put("/{id}", h.HandleUpdate)

		// DELETE (cascades through the coordinator)
		pr.Delete("/{id}", h.HandleDelete)

		// ASSIGNMENT (the coordinator owns both sides of the relation)
		pr.Post("/{id}/assign/{internId}", h.HandleAssign)
		pr.Delete("/{id}/assign/{internId}", h.HandleUnassign)
	})

	return r
}
