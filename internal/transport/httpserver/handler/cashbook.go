package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	cashbookdomain "rt-portal-go/internal/domain/cashbook"
	"rt-portal-go/internal/export"
)

type addCashEntryRequest struct {
	Date        string      `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description string      `json:"description" validate:"max=255"`
	Direction   string      `json:"direction" validate:"omitempty,oneof=+ -"`
	Amount      amountValue `json:"amount" validate:"max=1000000000000"`
}

type cashEntryResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	Direction      string `json:"direction"`
	Kind           string `json:"kind"`
	Amount         int64  `json:"amount"`
	AmountDisplay  string `json:"amount_display"`
	RunningBalance int64  `json:"running_balance"`
}

type cashStatementResponse struct {
	Items          []cashEntryResponse `json:"items"`
	TotalCredit    int64               `json:"total_credit"`
	TotalDebit     int64               `json:"total_debit"`
	Balance        int64               `json:"balance"`
	BalanceDisplay string              `json:"balance_display"`
}

func (h *Handlers) CashStatement(w http.ResponseWriter, r *http.Request) {
	statement, err := h.Cash.Statement(r.Context())
	if err != nil {
		h.log.InternalError("cash.statement: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]cashEntryResponse, 0, len(statement.Lines))
	for _, line := range statement.Lines {
		item := h.toCashEntryResponse(line.Entry)
		item.RunningBalance = line.RunningBalance
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, cashStatementResponse{
		Items:          items,
		TotalCredit:    statement.TotalCredit,
		TotalDebit:     statement.TotalDebit,
		Balance:        statement.Balance,
		BalanceDisplay: h.money.Format(statement.Balance),
	})
}

func (h *Handlers) AddCashEntry(w http.ResponseWriter, r *http.Request) {
	var req addCashEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	entry, err := h.Cash.Add(r.Context(), cashbookdomain.AddEntryInput{
		Date:        date,
		Description: req.Description,
		Direction:   cashbookdomain.Direction(req.Direction),
		Amount:      int64(req.Amount),
	})
	if err != nil {
		switch {
		case errors.Is(err, cashbookdomain.ErrIncompleteEntry):
			h.log.BusinessError("cash.add: incomplete entry", err)
			writeError(w, http.StatusUnprocessableEntity, "incomplete_entry", "date, description and amount are required")
		case errors.Is(err, cashbookdomain.ErrNegativeAmount):
			h.log.BusinessError("cash.add: negative amount", err, "amount", int64(req.Amount))
			writeError(w, http.StatusBadRequest, "invalid_amount", "amount must not be negative")
		case errors.Is(err, cashbookdomain.ErrAmountTooLarge):
			h.log.BusinessError("cash.add: amount too large", err, "amount", int64(req.Amount))
			writeError(w, http.StatusBadRequest, "invalid_amount", "amount exceeds the ledger ceiling")
		case errors.Is(err, cashbookdomain.ErrInvalidDirection):
			h.log.BusinessError("cash.add: invalid direction", err, "direction", req.Direction)
			writeError(w, http.StatusBadRequest, "invalid_direction", "invalid cash direction")
		default:
			h.log.InternalError("cash.add: failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	response := h.toCashEntryResponse(*entry)
	response.RunningBalance, err = h.Cash.Balance(r.Context())
	if err != nil {
		h.log.InternalError("cash.add: balance failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handlers) RemoveCashEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Cash.Remove(r.Context(), id); err != nil {
		h.log.InternalError("cash.remove: failed", err, "entry_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ExportCash(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Cash.ExportCSV(r.Context(), &buf); err != nil {
		h.log.InternalError("cash.export: build csv failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	filename := cashbookdomain.ExportFilename(h.clock.Now())
	sink := export.NewDownload(w, "text/csv; charset=utf-8")
	if err := sink.Export(r.Context(), filename, buf.Bytes()); err != nil {
		h.log.InternalError("cash.export: write failed", err, "filename", filename)
	}
}

func (h *Handlers) toCashEntryResponse(entry cashbookdomain.Entry) cashEntryResponse {
	return cashEntryResponse{
		ID:            entry.ID,
		Date:          entry.Date.Format(dateLayout),
		Description:   entry.Description,
		Direction:     string(entry.Direction),
		Kind:          entry.Direction.Label(),
		Amount:        entry.Amount,
		AmountDisplay: h.money.Format(entry.Amount),
	}
}
