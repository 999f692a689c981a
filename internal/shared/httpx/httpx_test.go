package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social-service/internal/apperr"
)

func TestWrapDomainError(t *testing.T) {
	h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return apperr.Forbidden("You can't see these posts")
	})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "You can't see these posts" {
		t.Errorf("unexpected body: %q", rr.Body.String())
	}
}

func TestWrapWrappedDomainError(t *testing.T) {
	h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return errors.Join(errors.New("context"), apperr.NotFound("User not found"))
	})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestWrapUnknownError(t *testing.T) {
	h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("boom")
	})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestWrapNoError(t *testing.T) {
	h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	req, _ := http.NewRequest(http.MethodPut, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func TestQueryInt(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/?followerId=7&bad=x", nil)

	if got := QueryInt(req, "followerId", 0); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := QueryInt(req, "bad", 3); got != 3 {
		t.Errorf("expected fallback 3, got %d", got)
	}
	if got := QueryInt(req, "missing", 5); got != 5 {
		t.Errorf("expected fallback 5, got %d", got)
	}
}
