package handlers

import (
	"net/http"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/service"
	"github.com/jeunessebiere/site-api/internal/transport/http/response"
)

type CarouselHandler struct {
	svc *service.CarouselService
}

func NewCarouselHandler(svc *service.CarouselService) *CarouselHandler {
	return &CarouselHandler{svc: svc}
}

func (h *CarouselHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, images)
}

func (h *CarouselHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	img, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, img)
}

func (h *CarouselHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, closeFile, err := parseCarouselInput(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	defer closeFile()

	img, err := h.svc.Create(r.Context(), in)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, img)
}

func (h *CarouselHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	in, closeFile, err := parseCarouselInput(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	defer closeFile()

	img, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, img)
}

func (h *CarouselHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Image deleted successfully")
}

func parseCarouselInput(r *http.Request) (service.CarouselInput, func(), error) {
	noop := func() {}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return service.CarouselInput{}, noop, domain.ErrValidation("Invalid request body")
		}
		order, err := formInt(r, "order")
		if err != nil {
			return service.CarouselInput{}, noop, err
		}
		file, closeFile, err := formFile(r, "image")
		if err != nil {
			return service.CarouselInput{}, noop, err
		}
		in := service.CarouselInput{
			Title: formValue(r, "title"),
			Alt:   formValue(r, "alt"),
			Order: order,
			URL:   formValue(r, "url"),
			File:  file,
		}
		return in, closeFile, nil
	}

	var req struct {
		Title *string `json:"title"`
		Alt   *string `json:"alt"`
		Order *int    `json:"order"`
		URL   *string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		return service.CarouselInput{}, noop, err
	}
	in := service.CarouselInput{
		Title: req.Title,
		Alt:   req.Alt,
		Order: req.Order,
		URL:   req.URL,
	}
	return in, noop, nil
}
