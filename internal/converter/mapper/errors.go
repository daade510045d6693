package mapper

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidGraph = errors.New("invalid flow graph")
	ErrEmptyInput   = errors.New("empty flow document")
)

// ConvertError is returned when a flow document cannot be converted at all.
type ConvertError struct {
	Op    string // stage that failed, e.g. "decode"
	Cause error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrInvalidGraph, e.Cause)
}

func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// Is matches ErrInvalidGraph; causes are reached through Unwrap.
func (e *ConvertError) Is(target error) bool {
	return target == ErrInvalidGraph
}
