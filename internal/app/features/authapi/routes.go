// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the auth endpoints. Login is public;
// verify sits behind the token middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(h.Tokens.RequireToken)
		pr.Get("/verify", h.HandleVerify)
	})

	return r
}
