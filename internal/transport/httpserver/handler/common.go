package handler

import (
	"net/http"
	"time"

	bulletindomain "rt-portal-go/internal/domain/bulletin"
	profiledomain "rt-portal-go/internal/domain/profile"
)

type profileResponse struct {
	RT          string `json:"rt"`
	RW          string `json:"rw"`
	Village     string `json:"village"`
	Subdistrict string `json:"subdistrict"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Chairman    string `json:"chairman"`
	Receiver    string `json:"receiver"`
}

type homeResponse struct {
	Profile        profileResponse `json:"profile"`
	News           []newsResponse  `json:"news"`
	Events         []eventResponse `json:"events"`
	Balance        int64           `json:"balance"`
	BalanceDisplay string          `json:"balance_display"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   h.clock.Now().Format(time.RFC3339),
	})
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Homepage.Summary(r.Context())
	if err != nil {
		h.log.InternalError("home.summary: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, homeResponse{
		Profile:        toProfileResponse(summary.Profile),
		News:           toNewsResponses(summary.News),
		Events:         toEventResponses(summary.Events),
		Balance:        summary.Balance,
		BalanceDisplay: h.money.Format(summary.Balance),
	})
}

func toProfileResponse(p profiledomain.Profile) profileResponse {
	return profileResponse{
		RT:          p.RT,
		RW:          p.RW,
		Village:     p.Village,
		Subdistrict: p.Subdistrict,
		City:        p.City,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Chairman:    p.Chairman,
		Receiver:    p.Receiver,
	}
}

func toNewsResponses(items []bulletindomain.NewsPost) []newsResponse {
	response := make([]newsResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toNewsResponse(item))
	}
	return response
}

func toEventResponses(items []bulletindomain.Event) []eventResponse {
	response := make([]eventResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toEventResponse(item))
	}
	return response
}
