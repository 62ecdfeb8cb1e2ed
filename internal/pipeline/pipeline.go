// Package pipeline orchestrates splitter -> decoder -> filter over one
// export body, preserving input order and enforcing the result cap.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/decode"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/filter"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/metrics"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/split"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// DefaultLimit caps the result set when the caller does not choose one.
const DefaultLimit = 50

// Pipeline runs the ingestion path. Per-record failures are written to
// Diag and never abort the run.
type Pipeline struct {
	Limit  int
	Filter *filter.Filter
	Diag   io.Writer
}

// New returns a Pipeline. A nil f keeps every decoded event; limit <= 0
// falls back to DefaultLimit; a nil diag discards diagnostics.
func New(f *filter.Filter, limit int, diag io.Writer) *Pipeline {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if diag == nil {
		diag = io.Discard
	}
	return &Pipeline{Limit: limit, Filter: f, Diag: diag}
}

// ReadExport opens the export file, discards the header line and returns
// the record body. Missing or unreadable files are fatal to the run.
func ReadExport(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open export: %w", err)
	}
	defer f.Close()
	r := bufio.NewReader(f)
	if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read export: %w", err)
	}
	return string(body), nil
}

// Run decodes and filters the body's records in input order, stopping the
// scan as soon as Limit events are accepted.
func (p *Pipeline) Run(body string) []types.Event {
	events := make([]types.Event, 0, p.Limit)
	sp := split.New(body)
	for raw, ok := sp.Next(); ok; raw, ok = sp.Next() {
		if len(events) >= p.Limit {
			break
		}
		metrics.RecordsSplit.Add(1)
		ev, err := decode.Decode(raw)
		if err != nil {
			metrics.RecordsRejected.Add(1)
			fmt.Fprintf(p.Diag, "[!] skipping malformed record: %v\n", err)
			continue
		}
		metrics.RecordsDecoded.Add(1)
		if p.Filter != nil {
			keep, err := p.Filter.Match(&ev)
			if err != nil {
				metrics.RecordsRejected.Add(1)
				fmt.Fprintf(p.Diag, "[!] skipping record: %v\n", err)
				continue
			}
			if !keep {
				metrics.EventsFiltered.Add(1)
				continue
			}
		}
		metrics.EventsKept.Add(1)
		events = append(events, ev)
	}
	return events
}
