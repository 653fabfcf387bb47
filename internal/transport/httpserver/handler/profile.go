package handler

import (
	"net/http"

	profiledomain "rt-portal-go/internal/domain/profile"
)

type updateProfileRequest struct {
	RT          *string `json:"rt" validate:"omitempty,max=8"`
	RW          *string `json:"rw" validate:"omitempty,max=8"`
	Village     *string `json:"village" validate:"omitempty,max=120"`
	Subdistrict *string `json:"subdistrict" validate:"omitempty,max=120"`
	City        *string `json:"city" validate:"omitempty,max=120"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=40"`
	Email       *string `json:"email" validate:"omitempty,max=120"`
	Chairman    *string `json:"chairman" validate:"omitempty,max=120"`
	Receiver    *string `json:"receiver" validate:"omitempty,max=120"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.Profiles.Get(r.Context())
	if err != nil {
		h.log.InternalError("profile.get: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	p, err := h.Profiles.Update(r.Context(), profiledomain.UpdateProfileInput{
		RT:          req.RT,
		RW:          req.RW,
		Village:     req.Village,
		Subdistrict: req.Subdistrict,
		City:        req.City,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Chairman:    req.Chairman,
		Receiver:    req.Receiver,
	})
	if err != nil {
		h.log.InternalError("profile.update: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
