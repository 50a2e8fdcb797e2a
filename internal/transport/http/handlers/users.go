package handlers

import (
	"net/http"

	"github.com/jeunessebiere/site-api/internal/service"
	"github.com/jeunessebiere/site-api/internal/transport/http/response"
)

type UsersHandler struct {
	svc *service.UsersService
}

func NewUsersHandler(svc *service.UsersService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, users)
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	user, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user)
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := parseUserInput(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	user, err := h.svc.Create(r.Context(), in)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]any{
		"id":      user.ID,
		"message": "User created successfully",
	})
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	in, err := parseUserInput(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	if err := h.svc.Update(r.Context(), id, in); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusOK, "User updated successfully")
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusOK, "User deleted successfully")
}

func parseUserInput(r *http.Request) (service.UserInput, error) {
	var req struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		return service.UserInput{}, err
	}
	return service.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, nil
}
