package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	complaintsdomain "rt-portal-go/internal/domain/complaints"
)

type submitComplaintRequest struct {
	Citizen  string `json:"citizen" validate:"max=120"`
	Category string `json:"category" validate:"omitempty,oneof=Kebersihan Keamanan Administrasi 'Fasilitas Umum'"`
	Message  string `json:"message" validate:"max=2000"`
}

type setComplaintStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=baru proses selesai"`
}

type complaintResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Citizen  string `json:"citizen"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Status   string `json:"status"`
}

func (h *Handlers) ListComplaints(w http.ResponseWriter, r *http.Request) {
	items, err := h.Complaints.List(r.Context())
	if err != nil {
		h.log.InternalError("complaints.list: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]complaintResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toComplaintResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	var req submitComplaintRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	complaint, err := h.Complaints.Submit(r.Context(), complaintsdomain.SubmitInput{
		Citizen:  req.Citizen,
		Category: complaintsdomain.Category(req.Category),
		Message:  req.Message,
	})
	if err != nil {
		h.writeComplaintError(w, "complaints.submit", "", err)
		return
	}
	writeJSON(w, http.StatusCreated, toComplaintResponse(*complaint))
}

func (h *Handlers) SetComplaintStatus(w http.ResponseWriter, r *http.Request) {
	var req setComplaintStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	complaint, err := h.Complaints.SetStatus(r.Context(), id, complaintsdomain.Status(req.Status))
	if err != nil {
		h.writeComplaintError(w, "complaints.set_status", id, err)
		return
	}
	writeJSON(w, http.StatusOK, toComplaintResponse(*complaint))
}

func (h *Handlers) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Complaints.Delete(r.Context(), id); err != nil {
		h.log.InternalError("complaints.delete: failed", err, "complaint_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeComplaintError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, complaintsdomain.ErrComplaintNotFound):
		h.log.BusinessError(op+": complaint not found", err, "complaint_id", id)
		writeError(w, http.StatusNotFound, "complaint_not_found", "complaint not found")
	case errors.Is(err, complaintsdomain.ErrIncompleteComplaint):
		h.log.BusinessError(op+": incomplete complaint", err)
		writeError(w, http.StatusUnprocessableEntity, "incomplete_complaint", "citizen and message are required")
	case errors.Is(err, complaintsdomain.ErrInvalidCategory):
		h.log.BusinessError(op+": invalid category", err)
		writeError(w, http.StatusBadRequest, "invalid_category", "invalid complaint category")
	case errors.Is(err, complaintsdomain.ErrInvalidStatus):
		h.log.BusinessError(op+": invalid status", err, "complaint_id", id)
		writeError(w, http.StatusBadRequest, "invalid_status", "invalid complaint status")
	default:
		h.log.InternalError(op+": failed", err, "complaint_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func toComplaintResponse(item complaintsdomain.Complaint) complaintResponse {
	return complaintResponse{
		ID:       item.ID,
		Date:     item.Date.Format(dateLayout),
		Citizen:  item.Citizen,
		Category: string(item.Category),
		Message:  item.Message,
		Status:   string(item.Status),
	}
}
