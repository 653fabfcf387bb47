package handler

import (
	"net/http"

	"rt-portal-go/internal/domain/letterhead"
	"rt-portal-go/internal/export"
)

type letterRequest struct {
	Body string `json:"body" validate:"max=20000"`
}

type letterResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

func (h *Handlers) LetterTemplate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"body": letterhead.DefaultBody})
}

func (h *Handlers) PreviewLetter(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLetterRequest(w, r)
	if !ok {
		return
	}

	p, err := h.Profiles.Get(r.Context())
	if err != nil {
		h.log.InternalError("letters.preview: get profile failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	letter := h.Letters.Compose(p, req.Body)
	writeJSON(w, http.StatusOK, letterResponse{
		Filename: letter.Filename,
		Text:     letter.Text,
	})
}

func (h *Handlers) DownloadLetter(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLetterRequest(w, r)
	if !ok {
		return
	}

	p, err := h.Profiles.Get(r.Context())
	if err != nil {
		h.log.InternalError("letters.download: get profile failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	sink := export.NewDownload(w, "text/plain; charset=utf-8")
	if _, err := h.Letters.Export(r.Context(), sink, p, req.Body); err != nil {
		h.log.InternalError("letters.download: write failed", err)
	}
}

func (h *Handlers) decodeLetterRequest(w http.ResponseWriter, r *http.Request) (letterRequest, bool) {
	var req letterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return letterRequest{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return letterRequest{}, false
	}
	return req, true
}
