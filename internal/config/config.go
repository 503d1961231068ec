// Package config loads the dashboard settings and the timer/time-block
// schedule. Files are TOML or YAML, chosen by extension. Every error here
// is fatal: the dashboard never starts with a schedule it could not fully
// validate.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/timebar/internal/domain"
)

// Env var names that override CLI defaults. They may also come from a
// .env file in the working directory.
const (
	EnvConfigPath = "TIMEBAR_CONFIG"
	EnvLogLevel   = "TIMEBAR_LOG_LEVEL"
)

// DefaultPath is the settings file looked up when none is given.
const DefaultPath = "config.toml"

// DefaultLogFile keeps logs out of the terminal the dashboard draws on.
const DefaultLogFile = ".timebar/timebar.log"

type settingsFile struct {
	RefreshRateInMillis int64  `toml:"refresh_rate_in_millis" yaml:"refresh_rate_in_millis"`
	RefreshInterval     string `toml:"refresh_interval" yaml:"refresh_interval"`
	TimerConfigPath     string `toml:"timer_config_path" yaml:"timer_config_path"`
	LogLevel            string `toml:"log_level" yaml:"log_level"`
	LogFile             string `toml:"log_file" yaml:"log_file"`
	Chime               *bool  `toml:"chime" yaml:"chime"`
}

type scheduleFile struct {
	Timers     []timerEntry `toml:"timers" yaml:"timers"`
	TimeBlocks []blockEntry `toml:"time_blocks" yaml:"time_blocks"`
}

type timerEntry struct {
	Name    string `toml:"name" yaml:"name"`
	Time    string `toml:"time" yaml:"time"`
	Message string `toml:"message" yaml:"message"`
	Repeat  string `toml:"repeat" yaml:"repeat"`
}

type blockEntry struct {
	Name      string `toml:"name" yaml:"name"`
	StartTime string `toml:"start_time" yaml:"start_time"`
	EndTime   string `toml:"end_time" yaml:"end_time"`
}

// Load reads the settings file at path. A relative timer_config_path is
// resolved against the settings file's directory.
func Load(path string) (domain.Settings, error) {
	var raw settingsFile
	if err := decode(path, &raw); err != nil {
		return domain.Settings{}, err
	}

	s := domain.Settings{
		RefreshInterval: domain.DefaultRefreshInterval,
		LogLevel:        raw.LogLevel,
		LogFile:         raw.LogFile,
		Chime:           raw.Chime == nil || *raw.Chime,
	}
	if s.LogFile == "" {
		s.LogFile = DefaultLogFile
	}

	switch {
	case raw.RefreshInterval != "":
		d, err := time.ParseDuration(raw.RefreshInterval)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("%s: refresh_interval: %w", path, err)
		}
		s.RefreshInterval = d
	case raw.RefreshRateInMillis != 0:
		s.RefreshInterval = time.Duration(raw.RefreshRateInMillis) * time.Millisecond
	}
	if s.RefreshInterval <= 0 {
		return domain.Settings{}, fmt.Errorf("%s: refresh interval must be positive, got %s", path, s.RefreshInterval)
	}

	if raw.TimerConfigPath == "" {
		return domain.Settings{}, fmt.Errorf("%s: timer_config_path is required", path)
	}
	s.TimerConfigPath = raw.TimerConfigPath
	if !filepath.IsAbs(s.TimerConfigPath) {
		s.TimerConfigPath = filepath.Join(filepath.Dir(path), s.TimerConfigPath)
	}
	return s, nil
}

// LoadSchedule reads and validates the timers and time blocks at path.
// Malformed times, empty or inverted blocks and an empty timer list are
// all errors.
func LoadSchedule(path string) (domain.Schedule, error) {
	var raw scheduleFile
	if err := decode(path, &raw); err != nil {
		return domain.Schedule{}, err
	}

	if len(raw.Timers) == 0 {
		return domain.Schedule{}, fmt.Errorf("%s: %w", path, domain.ErrNoTimers)
	}

	var sched domain.Schedule
	for i, e := range raw.Timers {
		target, err := domain.ParseTimeOfDay(e.Time)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("%s: timer %d (%q): %w", path, i+1, e.Name, err)
		}
		sched.Timers = append(sched.Timers, domain.Timer{
			Name:    e.Name,
			Target:  target,
			Message: e.Message,
			Repeat:  e.Repeat,
		})
	}

	for i, e := range raw.TimeBlocks {
		start, err := domain.ParseTimeOfDay(e.StartTime)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("%s: time block %d (%q) start: %w", path, i+1, e.Name, err)
		}
		end, err := domain.ParseTimeOfDay(e.EndTime)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("%s: time block %d (%q) end: %w", path, i+1, e.Name, err)
		}
		b := domain.TimeBlock{Name: e.Name, Start: start, End: end}
		if err := b.Validate(); err != nil {
			return domain.Schedule{}, fmt.Errorf("%s: %w", path, err)
		}
		sched.TimeBlocks = append(sched.TimeBlocks, b)
	}
	return sched, nil
}

func decode(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q (%s)", domain.ErrUnsupportedFormat, ext, path)
	}
	return nil
}
