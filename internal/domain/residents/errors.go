package residents

import "errors"

var (
	ErrResidentNotFound = errors.New("resident not found")
	ErrInvalidStatus    = errors.New("invalid resident status")
)
