package core

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ClockLayout is the canonical stored form of a time of day.
const ClockLayout = "15:04"

// DayLayout is the stored form of a calendar day.
const DayLayout = "2006-01-02"

var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM", "03:04 PM", "15:04:05"}

// ParseClock normalizes a time of day ("8:00 AM", "08:00", "20:00") to HH:MM.
func ParseClock(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", errors.Errorf("invalid time of day %q", s)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
