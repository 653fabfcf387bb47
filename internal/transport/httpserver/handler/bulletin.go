package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	bulletindomain "rt-portal-go/internal/domain/bulletin"
)

type publishNewsRequest struct {
	Title string `json:"title" validate:"max=200"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Body  string `json:"body" validate:"max=5000"`
}

type scheduleEventRequest struct {
	Name  string `json:"name" validate:"max=200"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time  string `json:"time" validate:"max=40"`
	Place string `json:"place" validate:"max=200"`
	Notes string `json:"notes" validate:"max=2000"`
}

type newsResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Body  string `json:"body"`
}

type eventResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Place string `json:"place"`
	Notes string `json:"notes"`
}

func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.Bulletin.ListNews(r.Context())
	if err != nil {
		h.log.InternalError("news.list: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toNewsResponses(items))
}

func (h *Handlers) PublishNews(w http.ResponseWriter, r *http.Request) {
	var req publishNewsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	post, err := h.Bulletin.PublishNews(r.Context(), bulletindomain.PublishNewsInput{
		Title: req.Title,
		Date:  date,
		Body:  req.Body,
	})
	if err != nil {
		if errors.Is(err, bulletindomain.ErrTitleRequired) {
			h.log.BusinessError("news.publish: title missing", err)
			writeError(w, http.StatusUnprocessableEntity, "title_required", "title is required")
			return
		}
		h.log.InternalError("news.publish: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, toNewsResponse(*post))
}

func (h *Handlers) RemoveNews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Bulletin.RemoveNews(r.Context(), id); err != nil {
		h.log.InternalError("news.remove: failed", err, "news_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	items, err := h.Bulletin.ListEvents(r.Context())
	if err != nil {
		h.log.InternalError("events.list: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(items))
}

func (h *Handlers) ScheduleEvent(w http.ResponseWriter, r *http.Request) {
	var req scheduleEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	event, err := h.Bulletin.ScheduleEvent(r.Context(), bulletindomain.ScheduleEventInput{
		Name:  req.Name,
		Date:  date,
		Time:  req.Time,
		Place: req.Place,
		Notes: req.Notes,
	})
	if err != nil {
		if errors.Is(err, bulletindomain.ErrNameRequired) {
			h.log.BusinessError("events.schedule: name missing", err)
			writeError(w, http.StatusUnprocessableEntity, "name_required", "name is required")
			return
		}
		h.log.InternalError("events.schedule: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(*event))
}

func (h *Handlers) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Bulletin.RemoveEvent(r.Context(), id); err != nil {
		h.log.InternalError("events.remove: failed", err, "event_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toNewsResponse(item bulletindomain.NewsPost) newsResponse {
	return newsResponse{
		ID:    item.ID,
		Title: item.Title,
		Date:  formatDate(item.Date),
		Body:  item.Body,
	}
}

func toEventResponse(item bulletindomain.Event) eventResponse {
	return eventResponse{
		ID:    item.ID,
		Name:  item.Name,
		Date:  formatDate(item.Date),
		Time:  item.Time,
		Place: item.Place,
		Notes: item.Notes,
	}
}
