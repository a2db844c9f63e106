package repository

import "errors"

// ErrNotFound is the single "does not exist" sentinel for every store.
var ErrNotFound = errors.New("not found")
