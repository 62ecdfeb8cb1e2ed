package metrics

import (
	"io"
	"strconv"
	"sync/atomic"
)

// Counters for pipeline observability. Optional; zero if not used.
var (
	RecordsSplit    atomic.Int64
	RecordsDecoded  atomic.Int64
	RecordsRejected atomic.Int64
	EventsFiltered  atomic.Int64
	EventsKept      atomic.Int64
	LookupHits      atomic.Int64
	LookupMisses    atomic.Int64
	LookupFailures  atomic.Int64
)

type counter struct {
	name string
	help string
	val  *atomic.Int64
}

func counters() []counter {
	return []counter{
		{"weorg_records_split_total", "Candidate records produced by the splitter", &RecordsSplit},
		{"weorg_records_decoded_total", "Records successfully decoded into events", &RecordsDecoded},
		{"weorg_records_rejected_total", "Records dropped for bad shape or bad event id", &RecordsRejected},
		{"weorg_events_filtered_total", "Decoded events dropped by the filter", &EventsFiltered},
		{"weorg_events_kept_total", "Events accepted into the result set", &EventsKept},
		{"weorg_lookup_hits_total", "Explanation cache hits", &LookupHits},
		{"weorg_lookup_misses_total", "Explanation lookups sent to the online database", &LookupMisses},
		{"weorg_lookup_failures_total", "Explanation lookups that failed or timed out", &LookupFailures},
	}
}

// WriteTo emits the counters in Prometheus text exposition format.
// The CLI prints this under --verbose; a batch tool has no metrics server.
func WriteTo(w io.Writer) {
	for _, c := range counters() {
		io.WriteString(w, "# HELP "+c.name+" "+c.help+"\n")
		io.WriteString(w, "# TYPE "+c.name+" counter\n")
		io.WriteString(w, c.name+" "+strconv.FormatInt(c.val.Load(), 10)+"\n")
	}
}

// Reset zeroes all counters. For tests.
func Reset() {
	for _, c := range counters() {
		c.val.Store(0)
	}
}
