package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"07:30", 450},
		{"9:05", 545},
		{"23:59", 1439},
		{" 12:00 ", 720},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseTimeOfDayRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "12", "12:5", "ab:cd", "-1:00", "123:00"} {
		if _, err := ParseTimeOfDay(in); !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("ParseTimeOfDay(%q): expected ErrInvalidTime, got %v", in, err)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := MustTimeOfDay("7:05").String(); got != "07:05" {
		t.Fatalf("expected 07:05, got %s", got)
	}
	now := time.Date(2024, 3, 1, 14, 42, 59, 0, time.Local)
	if got := ClockOf(now); got != MustTimeOfDay("14:42") {
		t.Fatalf("ClockOf = %s", got)
	}
}

func TestTimeBlockValidate(t *testing.T) {
	ok := TimeBlock{Name: "work", Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("17:00")}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.Minutes() != 480 {
		t.Fatalf("expected 480 minutes, got %d", ok.Minutes())
	}

	for _, b := range []TimeBlock{
		{Name: "zero", Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("09:00")},
		{Name: "backwards", Start: MustTimeOfDay("17:00"), End: MustTimeOfDay("09:00")},
	} {
		if err := b.Validate(); !errors.Is(err, ErrEmptySpan) {
			t.Fatalf("%s: expected ErrEmptySpan, got %v", b.Name, err)
		}
	}
}
