package contract

import "errors"

// Repository sentinel errors. Adapters translate driver errors into these.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
