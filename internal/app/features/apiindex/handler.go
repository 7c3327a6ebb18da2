// internal/app/features/apiindex/handler.go
package apiindex

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
)

// Version is the API version reported by the index document.
const Version = "1.0.0"

// indexResponse is the welcome document served at the API root so a
// browser poking the service sees what lives where.
type indexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Serve handles GET /.
func Serve(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, indexResponse{
		Message: "Welcome to the InternHub API",
		Version: Version,
		Endpoints: map[string]string{
			"auth":     "/api/auth",
			"interns":  "/api/interns",
			"projects": "/api/projects",
			"health":   "/health",
		},
	})
}
