package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	cashbookdomain "rt-portal-go/internal/domain/cashbook"
)

const dateLayout = "2006-01-02"

func parseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseDateRequired(value string) (time.Time, error) {
	parsed, err := parseDateParam(value)
	if err != nil {
		return time.Time{}, err
	}
	if parsed == nil {
		return time.Time{}, nil
	}
	return *parsed, nil
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(dateLayout)
}

// amountValue accepts a JSON number or a string such as "500.000" or
// "Rp 85.000". Fractions are rejected.
type amountValue int64

func (a *amountValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		parsed, err := cashbookdomain.ParseAmount(raw)
		if err != nil {
			return err
		}
		*a = amountValue(parsed)
		return nil
	}

	parsed, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("amount must be a whole number: %w", err)
	}
	*a = amountValue(parsed)
	return nil
}
