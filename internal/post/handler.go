package post

import (
	"net/http"
	"strconv"

	"social-service/internal/shared/httpx"
	"social-service/pkg/res"
)

type Handler struct {
	service Service
}

func NewHandler(router *http.ServeMux, service Service) {
	handler := &Handler{service: service}
	router.Handle("POST /users/{userId}/posts", httpx.Wrap(handler.create))
	router.Handle("GET /users/{userId}/posts", httpx.Wrap(handler.list))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	userID, err := httpx.PathID(r, "userId")
	if err != nil {
		return err
	}
	payload, err := httpx.Decode[CreatePostRequest](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	p, err := h.service.Create(r.Context(), userID, payload.Text)
	if err != nil {
		return err
	}
	res.Json(w, toResponse(p), http.StatusCreated)
	return nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	userID, err := httpx.PathID(r, "userId")
	if err != nil {
		return err
	}

	// An unparsable header resolves to user 0, which never exists, so it
	// falls out as "Nonexistent followerId" like any other unknown id.
	var followerID *uint
	if raw := r.Header.Get("followerId"); raw != "" {
		n, convErr := strconv.ParseUint(raw, 10, 64)
		id := uint(0)
		if convErr == nil {
			id = uint(n)
		}
		followerID = &id
	}

	posts, err := h.service.ListVisible(r.Context(), userID, followerID)
	if err != nil {
		return err
	}
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toResponse(&posts[i]))
	}
	res.Json(w, out, http.StatusOK)
	return nil
}
