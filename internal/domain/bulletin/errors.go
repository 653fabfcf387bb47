package bulletin

import "errors"

var (
	ErrTitleRequired = errors.New("title is required")
	ErrNameRequired  = errors.New("name is required")
)
