package service

import (
	"fmt"
	"strings"
)

// Mode is the session operating mode. It is fixed at construction and gates
// every privileged operation for the session's lifetime.
type Mode int

const (
	// ModeManager permits only master catalog operations; no device access.
	ModeManager Mode = iota
	// ModeControl permits full device access: writes, frequency changes,
	// logging control, and teardown.
	ModeControl
	// ModeMonitor permits read-only device access: stream enablement and
	// tag reads, nothing mutating.
	ModeMonitor
)

func (m Mode) String() string {
	switch m {
	case ModeControl:
		return "control"
	case ModeMonitor:
		return "monitor"
	default:
		return "manager"
	}
}

// ParseMode maps a mode string onto a [Mode], case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manager":
		return ModeManager, nil
	case "control":
		return ModeControl, nil
	case "monitor":
		return ModeMonitor, nil
	default:
		return ModeManager, fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
	}
}

// SelectMode applies the construction rule: without a target identifier the
// session is always a manager session, whatever mode was requested;
// otherwise the requested mode wins.
func SelectMode(targetID, requested string) (Mode, error) {
	mode, err := ParseMode(requested)
	if err != nil {
		return ModeManager, err
	}
	if targetID == "" {
		return ModeManager, nil
	}
	return mode, nil
}
