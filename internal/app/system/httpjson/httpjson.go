// Package httpjson provides small helpers for the JSON API surface.
//
// Every response body in the API is JSON; failures are always
// {"message": "..."} with a human-readable description, matching what
// the SPA expects.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; API payloads are small documents.
const maxBodyBytes = 1 << 20

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": ...} body with the given status code.
// Used for every error response and for operation acknowledgements.
func Message(w http.ResponseWriter, statusCode int, format string, args ...any) {
	Write(w, statusCode, map[string]string{"message": fmt.Sprintf(format, args...)})
}

// Decode reads the request body into dst, rejecting unknown garbage
// with an error suitable for a 400 response.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
