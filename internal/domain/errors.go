package domain

import "errors"

// Input failures. Callers wrap these with the operation and line that produced them.
var (
	ErrMissingInput    = errors.New("input file not found")
	ErrUnreadableInput = errors.New("input file unreadable")
	ErrInstructionCode = errors.New("malformed instruction code")
	ErrMagnitude       = errors.New("malformed integer magnitude")
	ErrEmptySchedule   = errors.New("empty schedule input")
	ErrTimestamp       = errors.New("malformed timestamp")
	ErrInvalidPeriod   = errors.New("invalid period")
)
