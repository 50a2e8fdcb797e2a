package handlers

import (
	"net/http"

	"github.com/jeunessebiere/site-api/internal/service"
	"github.com/jeunessebiere/site-api/internal/transport/http/response"
)

type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit is the only unauthenticated write endpoint of the API.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := decodeJSON(r, &in); err != nil {
		response.Err(w, err)
		return
	}

	if _, err := h.svc.Submit(r.Context(), in); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusCreated, "Message sent successfully")
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messages)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	msg, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, msg)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Message deleted successfully")
}
