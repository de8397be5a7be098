package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/alfagnish/demoapi/internal/models"
	"github.com/go-chi/chi/v5"
)

// writeJSON serialises v as JSON and writes it to the response with the
// given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a standard JSON error response of the form
// {"detail": "message"}.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeValidationError writes a 422 listing the offending fields.
func writeValidationError(w http.ResponseWriter, fields []models.FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"detail": "validation failed",
		"errors": fields,
	})
}

// errTrailingData reports bytes after the first JSON value of a body.
var errTrailingData = errors.New("unexpected data after JSON value")

// decodeSingle decodes exactly one JSON value from rd. Anything but
// whitespace after that value is an error.
func decodeSingle(rd io.Reader, v interface{}) error {
	dec := json.NewDecoder(rd)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return errTrailingData
	}
	return nil
}

type validatable interface {
	Validate() error
}

// decodeBody decodes the JSON request body into v and validates it. On
// failure it writes the error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v validatable) bool {
	if err := decodeSingle(r.Body, v); err != nil {
		var (
			tooLarge *http.MaxBytesError
			mistyped *json.UnmarshalTypeError
		)
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.As(err, &mistyped):
			writeValidationError(w, []models.FieldError{{
				Field:  mistyped.Field,
				Reason: "expected " + mistyped.Type.String(),
			}})
		default:
			writeError(w, http.StatusBadRequest, "invalid JSON body")
		}
		return false
	}

	if err := v.Validate(); err != nil {
		writeValidationError(w, models.FieldErrors(err))
		return false
	}
	return true
}

// userIDParam parses the {user_id} path parameter. On failure it writes a
// 422 and returns false.
func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		writeValidationError(w, []models.FieldError{{
			Field:  "user_id",
			Reason: "value is not a valid integer",
		}})
		return 0, false
	}
	return id, true
}
