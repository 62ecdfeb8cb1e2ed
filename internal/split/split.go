// Package split reconstructs candidate record substrings from the export
// body. The export has no dedicated record delimiter: a record's message
// may itself contain newlines, so the only reliable boundary is a newline
// immediately followed by one of the severity tokens that open a record.
package split

import (
	"strings"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// Splitter yields candidate records from a body, lazily and in input order.
// Restart with Reset. Not safe for concurrent use.
type Splitter struct {
	body  string
	pos   int
	first bool
}

// New returns a Splitter over body (header line already consumed).
func New(body string) *Splitter {
	return &Splitter{body: body, first: true}
}

// Reset rewinds the Splitter to the start of the body.
func (s *Splitter) Reset() {
	s.pos = 0
	s.first = true
}

// Next returns the next non-blank candidate record, or ok=false when the
// body is exhausted. A body containing no severity marker at all yields
// zero records.
func (s *Splitter) Next() (raw string, ok bool) {
	for s.pos < len(s.body) {
		end := s.boundary(s.pos)
		raw := s.body[s.pos:end]
		first := s.first
		s.first = false
		s.pos = skipNewline(s.body, end)
		if first && end == len(s.body) && !startsWithMarker(raw) {
			// Single candidate spanning the whole body with no marker
			// anywhere: not a record stream.
			return "", false
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		return raw, true
	}
	return "", false
}

// Split returns all candidate records of body at once.
func Split(body string) []string {
	var out []string
	s := New(body)
	for raw, ok := s.Next(); ok; raw, ok = s.Next() {
		out = append(out, raw)
	}
	return out
}

// boundary returns the end index of the record starting at from: the
// position of the newline (or the \r of a \r\n pair) that is followed by a
// severity marker, or len(body) when no further marker follows.
func (s *Splitter) boundary(from int) int {
	for i := from; i < len(s.body); i++ {
		if s.body[i] != '\n' || i+1 >= len(s.body) {
			continue
		}
		if !startsWithMarker(s.body[i+1:]) {
			continue
		}
		if i > from && s.body[i-1] == '\r' {
			return i - 1
		}
		return i
	}
	return len(s.body)
}

// skipNewline advances past a \n or \r\n at i.
func skipNewline(body string, i int) int {
	if i < len(body) && body[i] == '\r' {
		i++
	}
	if i < len(body) && body[i] == '\n' {
		i++
	}
	return i
}

func startsWithMarker(s string) bool {
	for _, m := range types.Markers {
		if strings.HasPrefix(s, m) {
			return true
		}
	}
	return false
}
