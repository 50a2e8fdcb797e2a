package handlers

import (
	"net/http"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/service"
	"github.com/jeunessebiere/site-api/internal/transport/http/response"
)

type MembersHandler struct {
	svc *service.MembersService
}

func NewMembersHandler(svc *service.MembersService) *MembersHandler {
	return &MembersHandler{svc: svc}
}

func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, members)
}

func (h *MembersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	member, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, member)
}

func (h *MembersHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, closeFile, err := parseMemberInput(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	defer closeFile()

	member, err := h.svc.Create(r.Context(), in)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, member)
}

func (h *MembersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	in, closeFile, err := parseMemberInput(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	defer closeFile()

	member, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, member)
}

func (h *MembersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Member deleted successfully")
}

// parseMemberInput accepts either a JSON body or a multipart form with
// an optional photo part.
func parseMemberInput(r *http.Request) (service.MemberInput, func(), error) {
	noop := func() {}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return service.MemberInput{}, noop, domain.ErrValidation("Invalid request body")
		}
		photo, closeFile, err := formFile(r, "photo")
		if err != nil {
			return service.MemberInput{}, noop, err
		}
		in := service.MemberInput{
			FirstName: formValue(r, "firstName"),
			LastName:  formValue(r, "lastName"),
			Email:     formValue(r, "email"),
			Phone:     formValue(r, "phone"),
			Role:      formValue(r, "role"),
			Photo:     photo,
		}
		return in, closeFile, nil
	}

	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Role      *string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		return service.MemberInput{}, noop, err
	}
	in := service.MemberInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
	}
	return in, noop, nil
}
