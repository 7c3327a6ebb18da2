// internal/app/features/interns/errors.go
package interns

import (
	"errors"
	"net/http"

	internstore "github.com/dalemusser/internhub/internal/app/store/interns"
	"github.com/dalemusser/internhub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// writeStoreError maps record-store failures onto the API's status
// codes. Validation problems name the offending field; anything
// unrecognized is logged and reported as a 500.
func (h *Handler) writeStoreError(w http.ResponseWriter, err error, op string) {
	var ve *internstore.ValidationError

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.Message(w, http.StatusNotFound, "Intern not found")
	case errors.Is(err, internstore.ErrDuplicateEmail):
		httpjson.Message(w, http.StatusBadRequest, "%s", err.Error())
	case errors.As(err, &ve):
		httpjson.Message(w, http.StatusBadRequest, "Validation failed: %s %s", ve.Field, ve.Reason)
	default:
		h.Log.Error(op, zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to %s", op)
	}
}
