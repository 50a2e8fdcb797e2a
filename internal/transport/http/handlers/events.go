package handlers

import (
	"net/http"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/service"
	"github.com/jeunessebiere/site-api/internal/transport/http/response"
)

type EventsHandler struct {
	svc *service.EventsService
}

func NewEventsHandler(svc *service.EventsService) *EventsHandler {
	return &EventsHandler{svc: svc}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, events)
}

func (h *EventsHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.Upcoming(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, events)
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	event, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, event)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, closeFile, err := parseEventInput(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	defer closeFile()

	event, err := h.svc.Create(r.Context(), in)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, event)
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	in, closeFile, err := parseEventInput(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	defer closeFile()

	event, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, event)
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Event deleted successfully")
}

func parseEventInput(r *http.Request) (service.EventInput, func(), error) {
	noop := func() {}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return service.EventInput{}, noop, domain.ErrValidation("Invalid request body")
		}
		date, err := formDate(r, "date")
		if err != nil {
			return service.EventInput{}, noop, err
		}
		image, closeFile, err := formFile(r, "image")
		if err != nil {
			return service.EventInput{}, noop, err
		}
		in := service.EventInput{
			Title:       formValue(r, "title"),
			Date:        date,
			Time:        formValue(r, "time"),
			Location:    formValue(r, "location"),
			Description: formValue(r, "description"),
			Image:       image,
		}
		return in, closeFile, nil
	}

	var req struct {
		Title       *string      `json:"title"`
		Date        *domain.Date `json:"date"`
		Time        *string      `json:"time"`
		Location    *string      `json:"location"`
		Description *string      `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		return service.EventInput{}, noop, err
	}
	in := service.EventInput{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
	}
	return in, noop, nil
}
