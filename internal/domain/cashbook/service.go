package cashbook

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var csvHeader = []string{"Tanggal", "Uraian", "Jenis", "Jumlah"}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

// Add records an entry at the end of the ledger. Entries missing a date,
// description or amount are rejected and nothing is stored.
func (s *Service) Add(ctx context.Context, input AddEntryInput) (*Entry, error) {
	description := strings.TrimSpace(input.Description)
	if input.Date.IsZero() || description == "" || input.Amount == 0 {
		return nil, ErrIncompleteEntry
	}
	if input.Amount < 0 {
		return nil, ErrNegativeAmount
	}
	if input.Amount > MaxAmount {
		return nil, ErrAmountTooLarge
	}

	direction := input.Direction
	if direction == "" {
		direction = DirectionCredit
	}
	if !direction.Valid() {
		return nil, ErrInvalidDirection
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	entry := Entry{
		ID:          id.String(),
		Date:        input.Date,
		Description: description,
		Direction:   direction,
		Amount:      input.Amount,
	}
	if err := s.repo.Append(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove is a no-op for unknown ids.
func (s *Service) Remove(ctx context.Context, id string) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}

// Balance is summed from the current entries on every call.
func (s *Service) Balance(ctx context.Context) (int64, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	var balance int64
	for _, entry := range entries {
		if balance, err = checkedAdd(balance, entry.Signed()); err != nil {
			return 0, err
		}
	}
	return balance, nil
}

func (s *Service) Statement(ctx context.Context) (Statement, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return Statement{}, err
	}

	statement := Statement{Lines: make([]StatementLine, 0, len(entries))}
	for _, entry := range entries {
		if entry.Direction == DirectionDebit {
			statement.TotalDebit, err = checkedAdd(statement.TotalDebit, entry.Amount)
		} else {
			statement.TotalCredit, err = checkedAdd(statement.TotalCredit, entry.Amount)
		}
		if err != nil {
			return Statement{}, err
		}
		if statement.Balance, err = checkedAdd(statement.Balance, entry.Signed()); err != nil {
			return Statement{}, err
		}
		statement.Lines = append(statement.Lines, StatementLine{Entry: entry, RunningBalance: statement.Balance})
	}
	return statement, nil
}

func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		row := []string{
			entry.Date.Format("2006-01-02"),
			entry.Description,
			entry.Direction.Label(),
			strconv.FormatInt(entry.Amount, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func ExportFilename(now time.Time) string {
	return "kas_rt_" + strconv.FormatInt(now.UnixMilli(), 10) + ".csv"
}

const rupiahPrefix = "Rp"

var groupedAmountRegex = regexp.MustCompile(`^-?[0-9]{1,3}(\.[0-9]{3})+$`)

// ParseAmount coerces user input to whole rupiah. Dot thousands separators
// ("500.000") and an "Rp" or "Rp." prefix in any case are accepted; fractions
// are not. Empty input is zero, which Add rejects.
func ParseAmount(value string) (int64, error) {
	cleaned := strings.TrimSpace(value)
	if len(cleaned) >= 2 && strings.EqualFold(cleaned[:2], rupiahPrefix) {
		cleaned = strings.TrimPrefix(cleaned[2:], ".")
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, nil
	}
	if groupedAmountRegex.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}
	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return amount, nil
}

// checkedAdd sums ledger amounts, failing instead of wrapping around.
func checkedAdd(total, delta int64) (int64, error) {
	if (delta > 0 && total > math.MaxInt64-delta) || (delta < 0 && total < math.MinInt64-delta) {
		return 0, ErrBalanceOverflow
	}
	return total + delta, nil
}
