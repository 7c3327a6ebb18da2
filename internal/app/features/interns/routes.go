// internal/app/features/interns/routes.go
package interns

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	// Everything under /interns requires a valid bearer token
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireToken)

		// LIST
		pr.Get("/", h.ServeList)

		// CREATE
		pr.Post("/", h.HandleCreate)

		// VIEW
		pr.Get("/{id}", h.ServeView)

		// UPDATE
		pr.Put("/{id}", h.HandleUpdate)

		// DELETE (cascades through the coordinator)
		pr.Delete("/{id}", h.HandleDelete)

		// TECH STACKS (wholesale replace)
		pr.Post("/{id}/techstacks", h.HandleTechStacks)
	})

	return r
}
