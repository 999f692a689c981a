package user

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
	router.Handle("POST /users", httpx.Wrap(handler.create))
	router.Handle("GET /users", httpx.Wrap(handler.list))
	router.Handle("GET /users/{userId}", httpx.Wrap(handler.getByID))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	payload, err := httpx.Decode[CreateUserRequest](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	u, err := h.service.Create(r.Context(), payload.Name, payload.Age)
	if err != nil {
		return err
	}
	res.Json(w, toResponse(u), http.StatusCreated)
	return nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	users, err := h.service.List(r.Context())
	if err != nil {
		return err
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toResponse(&users[i]))
	}
	res.Json(w, out, http.StatusOK)
	return nil
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r, "userId")
	if err != nil {
		return err
	}
	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}
	res.Json(w, toResponse(u), http.StatusOK)
	return nil
}
