package domain

import "errors"

var (
	ErrEmptyPlan       = errors.New("workout plan has no entries")
	ErrInvalidSetCount = errors.New("set count must be at least 1")
)
