// Package decode turns one candidate record substring into a structured
// Event. The export is not real CSV: only the first five fields are
// comma-delimited, everything after the fifth comma is the message and may
// contain commas and newlines.
package decode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// ErrBadShape is returned for records that do not have five comma-delimited
// leading fields followed by a message remainder.
var ErrBadShape = errors.New("record does not have five comma-delimited fields and a message")

const fieldCount = 6 // Level, Timestamp, Provider, EventID, placeholder, Message

// Decode parses one candidate record. The five leading fields are trimmed;
// the message keeps embedded commas and newlines and loses exactly one
// wrapping double-quote pair if present.
func Decode(raw string) (types.Event, error) {
	parts := strings.SplitN(raw, ",", fieldCount)
	if len(parts) < fieldCount {
		return types.Event{}, fmt.Errorf("%w: %q", ErrBadShape, snippet(raw))
	}
	return types.Event{
		Level:       strings.TrimSpace(parts[0]),
		Timestamp:   strings.TrimSpace(parts[1]),
		Provider:    strings.TrimSpace(parts[2]),
		EventID:     strings.TrimSpace(parts[3]),
		Message:     unquote(strings.TrimSpace(parts[5])),
		Explanation: types.ExplanationNA,
	}, nil
}

// unquote strips one wrapping double-quote pair spanning the whole value.
// Not recursive; inner quotes are untouched.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// snippet shortens a record for diagnostics.
func snippet(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}
