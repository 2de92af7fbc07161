package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-store/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/platform/auth"
	"github.com/jsamuelsen11/todo-store/internal/platform/logging"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

// callerFrom returns the identity resolved by the Identity middleware. A
// mutating route reached without one is a wiring error, reported as 401.
func callerFrom(r *http.Request) (todo.Identity, error) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return caller, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

var errInvalidJSON = &domain.ValidationError{Fields: map[string]string{"body": "invalid JSON"}}

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. When optional
// is true an empty body leaves dst untouched. On failure, it writes a 400
// error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	dto.WriteErrorResponse(w, r, errInvalidJSON)
	return false
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T, optional bool) bool {
	if !decodeJSONBody(w, r, dst, optional) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
