package repositories

import "errors"

// Sentinel errors callers branch on.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
