package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidTime       = errors.New("invalid time, want HH:MM")
	ErrEmptySpan         = errors.New("end must be after start")
	ErrNoTimers          = errors.New("no timers configured")
)
