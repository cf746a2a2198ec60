package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrNotPending = errors.New("item no longer accepts a parent response")
)
