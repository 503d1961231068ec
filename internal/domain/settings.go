package domain

import "time"

// Settings is the typed configuration record the dashboard runs with.
type Settings struct {
	RefreshInterval time.Duration
	TimerConfigPath string
	LogLevel        string
	LogFile         string
	Chime           bool
}

// DefaultRefreshInterval is used when the settings file leaves it unset.
const DefaultRefreshInterval = 100 * time.Millisecond

// Schedule is the set of user-configured intervals loaded at startup.
// It is immutable for the lifetime of the process.
type Schedule struct {
	TimeBlocks []TimeBlock
	Timers     []Timer
}
