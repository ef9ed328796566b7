package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/roomiesync/internal/auth"
	"github.com/mmynk/roomiesync/internal/storage"
)

var (
	// ErrBadRequest marks malformed or invalid request bodies.
	ErrBadRequest = errors.New("bad request")
	// ErrForbidden is returned when a non-admin calls an admin-only endpoint.
	ErrForbidden = errors.New("admin role required")
)

var validate = validator.New()

// HandlerFunc is an HTTP handler that reports failures by returning an error.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Wrap adapts fn to http.Handler, rendering a returned error as {"error": msg}
// with a status code derived from the error.
func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			code := statusFor(err)
			if code >= http.StatusInternalServerError {
				slog.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
			}
			WriteError(w, err, code)
		}
	})
}

// Decode reads a JSON body into T.
func Decode[T any](r *http.Request) (T, error) {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		return t, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return t, nil
}

// DecodeValid decodes a struct body and runs its validate tags.
func DecodeValid[T any](r *http.Request) (T, error) {
	t, err := Decode[T](r)
	if err != nil {
		return t, err
	}
	if err := validate.Struct(t); err != nil {
		return t, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return t, nil
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg}.
func WriteError(w http.ResponseWriter, err error, code int) {
	WriteJSON(w, map[string]string{"error": err.Error()}, code)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
