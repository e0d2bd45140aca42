package records

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrDuplicateID        = errors.New("identifier already exists")
	ErrInvalidDirection   = errors.New("direction must be -1 or 1")
)
