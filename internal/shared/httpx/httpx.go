package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"social-service/internal/apperr"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Wrap turns an error-returning handler into an http.Handler.
// Domain errors keep their status and message as a plain-text body;
// anything else is a 500.
func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			var ae *apperr.Error
			if errors.As(err, &ae) {
				http.Error(w, ae.Message, ae.Status)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	err := json.NewDecoder(r.Body).Decode(&t)
	return t, err
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// PathID reads a numeric path segment registered with ServeMux patterns.
func PathID(r *http.Request, name string) (uint, error) {
	s := r.PathValue(name)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid " + name)
	}
	return uint(n), nil
}

func QueryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
