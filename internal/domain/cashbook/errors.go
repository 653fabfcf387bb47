package cashbook

import "errors"

var (
	ErrIncompleteEntry  = errors.New("date, description and amount are required")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidDirection = errors.New("invalid cash direction")
	ErrAmountTooLarge   = errors.New("amount exceeds the ledger ceiling")
	ErrBalanceOverflow  = errors.New("ledger total out of range")
)
