package scheduler

import "errors"

var (
	ErrInvalidQuantum   = errors.New("scheduler: time quantum must be positive")
	ErrUnknownAlgorithm = errors.New("scheduler: unknown algorithm")
)
