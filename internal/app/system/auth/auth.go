// Package auth issues and validates the bearer tokens that gate the
// API's resource collections.
//
// The admin identity and signing secret are injected configuration
// resolved at process start; nothing here embeds a credential literal.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidToken is returned for tokens that fail signature or
	// claim validation, including expired ones.
	ErrInvalidToken = errors.New("invalid or expired token")

	errEmptySecret = errors.New("token secret must not be empty")
)

// Claims is the token payload: the admin identity plus standard
// registered claims (expiry, issued-at).
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// SessionUser is the identity injected into the request context once a
// token has been validated.
type SessionUser struct {
	Username string
	Role     string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated user from the request context.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a user into the request context, bypassing token
// validation. For handler tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// AdminCredentials holds the configured admin login. Exactly one of
// Password or PasswordHash should be set; when both are present the
// bcrypt hash wins.
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string // bcrypt
}

// Check reports whether the supplied username/password match the
// configured credentials. Comparisons are constant-time.
func (c AdminCredentials) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	if c.PasswordHash != "" {
		return userOK && bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}

// HashPassword produces a bcrypt hash suitable for the
// admin_password_hash config value.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// TokenManager signs and validates bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	log    *zap.Logger
}

// NewTokenManager constructs a TokenManager. The secret must be
// non-empty; ttl bounds how long an issued token stays valid.
func NewTokenManager(secret string, ttl time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, log: logger}, nil
}

// Issue signs a token embedding the given identity.
func (tm *TokenManager) Issue(username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(tm.secret)
}

// Verify validates a token string and returns its claims.
func (tm *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header.
// Returns "" when the header is missing or not a Bearer scheme.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// RequireToken is middleware that rejects requests without a valid
// bearer token and injects the token's identity into context.
func (tm *TokenManager) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Tests may have pre-injected an identity.
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		raw := BearerToken(r)
		if raw == "" {
			httpjson.Message(w, http.StatusUnauthorized, "No token provided. Please log in.")
			return
		}

		claims, err := tm.Verify(raw)
		if err != nil {
			httpjson.Message(w, http.StatusUnauthorized, "Invalid or expired token. Please log in again.")
			return
		}

		u := &SessionUser{Username: claims.Username, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), currentUserKey, u)))
	})
}
