package follower

import (
	"net/http"

	"social-service/internal/shared/httpx"
	"social-service/pkg/res"
)

type Handler struct {
	service Service
}

func NewHandler(router *http.ServeMux, service Service) {
	handler := &Handler{service: service}
	router.Handle("PUT /users/{userId}/followers", httpx.Wrap(handler.follow))
	router.Handle("GET /users/{userId}/followers", httpx.Wrap(handler.list))
	router.Handle("DELETE /users/{userId}/followers", httpx.Wrap(handler.unfollow))
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) error {
	userID, err := httpx.PathID(r, "userId")
	if err != nil {
		return err
	}
	payload, err := httpx.Decode[FollowRequest](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if err := h.service.Follow(r.Context(), userID, payload.FollowerID); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	userID, err := httpx.PathID(r, "userId")
	if err != nil {
		return err
	}
	resp, err := h.service.ListFollowers(r.Context(), userID)
	if err != nil {
		return err
	}
	res.Json(w, resp, http.StatusOK)
	return nil
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) error {
	userID, err := httpx.PathID(r, "userId")
	if err != nil {
		return err
	}
	// Absent or unparsable followerId deletes nothing; unfollow is idempotent.
	followerID := uint(httpx.QueryInt(r, "followerId", 0))
	if err := h.service.Unfollow(r.Context(), userID, followerID); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
