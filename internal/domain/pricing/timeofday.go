package pricing

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock position expressed in minutes since midnight.
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay parses an "HH:MM" string. Malformed values are rejected here
// so the calculators never see an unparsed window boundary.
func NewTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func NewTimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %d minutes", ErrInvalidTimeOfDay, minutes)
	}
	return TimeOfDay{minutes: minutes}, nil
}

func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

// AddMinutes advances the clock, wrapping past midnight.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	m := (t.minutes + n) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay{minutes: m}
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// NightWindow is a half-open interval [Start, End) of wall-clock time.
// A window whose start is later than its end wraps past midnight
// (e.g. 20:00–06:00).
type NightWindow struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewNightWindow(start, end TimeOfDay) NightWindow {
	return NightWindow{start: start, end: end}
}

func ParseNightWindow(start, end string) (NightWindow, error) {
	s, err := NewTimeOfDay(start)
	if err != nil {
		return NightWindow{}, err
	}
	e, err := NewTimeOfDay(end)
	if err != nil {
		return NightWindow{}, err
	}
	return NightWindow{start: s, end: e}, nil
}

func (w NightWindow) Start() TimeOfDay { return w.start }
func (w NightWindow) End() TimeOfDay   { return w.end }

func (w NightWindow) wraps() bool {
	return w.start.minutes > w.end.minutes
}

// Contains reports whether t falls inside the window, honoring the
// midnight wrap.
func (w NightWindow) Contains(t TimeOfDay) bool {
	if w.wraps() {
		return t.minutes >= w.start.minutes || t.minutes < w.end.minutes
	}
	return t.minutes >= w.start.minutes && t.minutes < w.end.minutes
}
