package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	residentsdomain "rt-portal-go/internal/domain/residents"
	"rt-portal-go/internal/export"
)

type residentRequest struct {
	Name    string `json:"name" validate:"max=120"`
	KK      string `json:"kk" validate:"max=32"`
	Address string `json:"address" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=40"`
	Status  string `json:"status" validate:"omitempty,oneof=Tetap Kontrak Kos"`
}

type residentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	KK      string `json:"kk"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

type residentListResponse struct {
	Items []residentResponse `json:"items"`
	Total int                `json:"total"`
}

func (h *Handlers) ListResidents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	items, err := h.Residents.List(r.Context(), query)
	if err != nil {
		h.log.InternalError("residents.list: failed", err, "query", query)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]residentResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResidentResponse(item))
	}
	writeJSON(w, http.StatusOK, residentListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) GetResident(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	resident, err := h.Residents.Get(r.Context(), id)
	if err != nil {
		h.writeResidentError(w, "residents.get", id, err)
		return
	}
	writeJSON(w, http.StatusOK, toResidentResponse(*resident))
}

func (h *Handlers) CreateResident(w http.ResponseWriter, r *http.Request) {
	var req residentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	resident, err := h.Residents.Create(r.Context(), req.input())
	if err != nil {
		h.writeResidentError(w, "residents.create", "", err)
		return
	}
	writeJSON(w, http.StatusCreated, toResidentResponse(*resident))
}

func (h *Handlers) UpdateResident(w http.ResponseWriter, r *http.Request) {
	var req residentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	resident, err := h.Residents.Update(r.Context(), id, req.input())
	if err != nil {
		h.writeResidentError(w, "residents.update", id, err)
		return
	}
	writeJSON(w, http.StatusOK, toResidentResponse(*resident))
}

func (h *Handlers) DeleteResident(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Residents.Delete(r.Context(), id); err != nil {
		h.log.InternalError("residents.delete: failed", err, "resident_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ExportResidents(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Residents.ExportCSV(r.Context(), &buf); err != nil {
		h.log.InternalError("residents.export: build csv failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	filename := residentsdomain.ExportFilename(h.clock.Now())
	sink := export.NewDownload(w, "text/csv; charset=utf-8")
	if err := sink.Export(r.Context(), filename, buf.Bytes()); err != nil {
		h.log.InternalError("residents.export: write failed", err, "filename", filename)
	}
}

func (h *Handlers) writeResidentError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, residentsdomain.ErrResidentNotFound):
		h.log.BusinessError(op+": resident not found", err, "resident_id", id)
		writeError(w, http.StatusNotFound, "resident_not_found", "resident not found")
	case errors.Is(err, residentsdomain.ErrInvalidStatus):
		h.log.BusinessError(op+": invalid status", err, "resident_id", id)
		writeError(w, http.StatusBadRequest, "invalid_status", "invalid resident status")
	default:
		h.log.InternalError(op+": failed", err, "resident_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (req residentRequest) input() residentsdomain.ResidentInput {
	return residentsdomain.ResidentInput{
		Name:             req.Name,
		FamilyCardNumber: req.KK,
		Address:          req.Address,
		Phone:            req.Phone,
		Status:           residentsdomain.Status(req.Status),
	}
}

func toResidentResponse(item residentsdomain.Resident) residentResponse {
	return residentResponse{
		ID:      item.ID,
		Name:    item.Name,
		KK:      item.FamilyCardNumber,
		Address: item.Address,
		Phone:   item.Phone,
		Status:  string(item.Status),
	}
}
