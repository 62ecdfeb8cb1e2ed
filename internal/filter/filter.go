// Package filter implements the AND-combined keep/drop predicate applied
// to decoded events: severity set, numeric Event-ID set, substring search.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// Filter holds the configured criteria. An empty criterion never excludes.
type Filter struct {
	levels map[string]struct{} // normalized (lower-case, trimmed)
	ids    map[int]struct{}
	search string // lower-cased
}

// New builds a Filter. Levels are normalized; ids and search are optional.
func New(levels []string, ids []int, search string) *Filter {
	f := &Filter{
		levels: make(map[string]struct{}, len(levels)),
		ids:    make(map[int]struct{}, len(ids)),
		search: strings.ToLower(search),
	}
	for _, l := range levels {
		f.levels[types.NormalizeLevel(l)] = struct{}{}
	}
	for _, id := range ids {
		f.ids[id] = struct{}{}
	}
	return f
}

// Match reports whether ev passes every configured criterion. A non-nil
// error means an ID criterion is configured but the event's EventID does
// not parse as an integer; the caller drops the event with a diagnostic
// rather than coercing it.
func (f *Filter) Match(ev *types.Event) (bool, error) {
	if len(f.levels) > 0 {
		if _, ok := f.levels[types.NormalizeLevel(ev.Level)]; !ok {
			return false, nil
		}
	}
	if len(f.ids) > 0 {
		id, err := strconv.Atoi(strings.TrimSpace(ev.EventID))
		if err != nil {
			return false, fmt.Errorf("event id %q is not numeric", ev.EventID)
		}
		if _, ok := f.ids[id]; !ok {
			return false, nil
		}
	}
	if f.search != "" && !strings.Contains(strings.ToLower(ev.Message), f.search) {
		return false, nil
	}
	return true, nil
}
