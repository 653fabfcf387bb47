package complaints

import "errors"

var (
	ErrComplaintNotFound   = errors.New("complaint not found")
	ErrIncompleteComplaint = errors.New("citizen and message are required")
	ErrInvalidCategory     = errors.New("invalid complaint category")
	ErrInvalidStatus       = errors.New("invalid complaint status")
)
