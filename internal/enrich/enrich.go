// Package enrich attaches parsed message details and, when enabled, a
// cached online explanation to each event.
package enrich

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/extract"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/metrics"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// LookupFunc resolves an EventID to an explanation string. An error means
// the explanation is unavailable; it is never fatal to the run.
type LookupFunc func(ctx context.Context, eventID string) (string, error)

// Enricher fills Details and Explanation on events. The explanation cache
// is unbounded and lives for one run; a failed lookup is cached as "N/A"
// and not retried. Whether lookups happen at all is decided once at
// construction, not per event.
type Enricher struct {
	mu     sync.Mutex
	cache  map[string]string
	flight singleflight.Group
	lookup LookupFunc
	diag   io.Writer
}

// New returns an Enricher. lookup may be nil (or enabled false) to disable
// online lookups entirely; diag may be nil.
func New(lookup LookupFunc, enabled bool, diag io.Writer) *Enricher {
	if !enabled {
		lookup = nil
	}
	if diag == nil {
		diag = io.Discard
	}
	return &Enricher{
		cache:  make(map[string]string),
		lookup: lookup,
		diag:   diag,
	}
}

// Apply enriches events in place, in order. Only Details and Explanation
// are written; the decoded fields are never touched.
func (e *Enricher) Apply(ctx context.Context, events []types.Event) {
	for i := range events {
		ev := &events[i]
		ev.Details = extract.Details(ev.Message)
		ev.Explanation = e.Explain(ctx, ev.EventID)
	}
}

// Explain returns the cached or freshly looked-up explanation for eventID,
// or "N/A" when lookups are disabled or fail.
func (e *Enricher) Explain(ctx context.Context, eventID string) string {
	if e.lookup == nil || eventID == "" {
		return types.ExplanationNA
	}
	e.mu.Lock()
	if v, ok := e.cache[eventID]; ok {
		e.mu.Unlock()
		metrics.LookupHits.Add(1)
		return v
	}
	e.mu.Unlock()

	// One outstanding lookup per distinct EventID, even under concurrency.
	v, err, _ := e.flight.Do(eventID, func() (any, error) {
		metrics.LookupMisses.Add(1)
		return e.lookup(ctx, eventID)
	})
	if err != nil {
		metrics.LookupFailures.Add(1)
		fmt.Fprintf(e.diag, "[!] explanation lookup for event id %s failed: %v\n", eventID, err)
		e.store(eventID, types.ExplanationNA)
		return types.ExplanationNA
	}
	text, _ := v.(string)
	if text == "" {
		text = types.ExplanationNA
	}
	e.store(eventID, text)
	return text
}

func (e *Enricher) store(eventID, text string) {
	e.mu.Lock()
	e.cache[eventID] = text
	e.mu.Unlock()
}
