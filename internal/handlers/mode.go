package handlers

import (
	"strconv"
	"time"

	"github.com/anddsdev/linda/internal/tuplespace"
)

// parseMode decodes the `mode` query parameter per SPEC_FULL.md §6: absent
// or "wait" blocks forever, "once" makes a single attempt, and any
// non-negative integer is a timeout in seconds.
func parseMode(raw string) (tuplespace.Mode, bool) {
	switch raw {
	case "", "wait":
		return tuplespace.ModeWait, true
	case "once":
		return tuplespace.ModeOnce, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return tuplespace.Mode{}, false
	}
	return tuplespace.ModeTimeout(time.Duration(n) * time.Second), true
}

// modeLabel normalizes the raw `mode` query parameter for the audit log so
// an absent mode (which means "wait") is recorded the same as an explicit one.
func modeLabel(raw string) string {
	if raw == "" {
		return "wait"
	}
	return raw
}
