// internal/app/features/authapi/handler.go
package authapi

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Handler holds dependencies for the token endpoints.
type Handler struct {
	Creds  auth.AdminCredentials
	Tokens *auth.TokenManager
	Log    *zap.Logger
}

// NewHandler constructs an authapi Handler.
func NewHandler(creds auth.AdminCredentials, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		Creds:  creds,
		Tokens: tokens,
		Log:    logger,
	}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    userInfo `json:"user"`
}

// HandleLogin handles POST /api/auth/login. Credential checks are
// constant-time; success and failure responses never reveal which part
// was wrong.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "%s", err.Error())
		return
	}

	if !h.Creds.Check(payload.Username, payload.Password) {
		httpjson.Message(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.Tokens.Issue(payload.Username, "admin")
	if err != nil {
		h.Log.Error("issue token", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	httpjson.Write(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    userInfo{Username: payload.Username, Role: "admin"},
	})
}

type verifyResponse struct {
	IsAuthenticated bool     `json:"isAuthenticated"`
	User            userInfo `json:"user"`
}

// HandleVerify handles GET /api/auth/verify. The route is mounted
// behind the token middleware, so reaching it means the token checked
// out.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Invalid or expired token. Please log in again.")
		return
	}

	httpjson.Write(w, http.StatusOK, verifyResponse{
		IsAuthenticated: true,
		User:            userInfo{Username: u.Username, Role: u.Role},
	})
}
