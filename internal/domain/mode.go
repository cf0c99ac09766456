package domain

import (
	"fmt"
	"strings"
)

// Mode controls how much per-test progress a suite emits
type Mode int

const (
	// ModeNormal only reports failures
	ModeNormal Mode = iota
	// ModeVerbose also announces every test before it runs
	ModeVerbose
)

// String returns the config spelling of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeVerbose:
		return "verbose"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "normal" or "verbose" (case-insensitive). Empty means normal.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "nrml":
		return ModeNormal, nil
	case "verbose", "vrbs":
		return ModeVerbose, nil
	default:
		return ModeNormal, fmt.Errorf("unknown mode %q (want normal or verbose)", s)
	}
}
