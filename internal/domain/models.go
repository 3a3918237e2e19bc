package domain

import (
	"fmt"
	"strings"
)

// Mode selects what the page view steps through
type Mode string

const (
	ModeInt      Mode = "int"
	ModeDay      Mode = "day"
	ModeWeek     Mode = "week"
	ModeMonth    Mode = "month"
	ModeHistoric Mode = "historic"
)

// Modes lists every supported mode
var Modes = []Mode{ModeInt, ModeDay, ModeWeek, ModeMonth, ModeHistoric}

// ParseMode parses a mode name, case-insensitively
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// IsDate reports whether the mode pages over time.Time identifiers
func (m Mode) IsDate() bool {
	return m != ModeInt
}
