package types

import "strings"

// ExplanationNA is the Explanation value for events that were not enriched
// (lookup disabled, failed, or unavailable). Reports render it as "nothing
// to display", never as an error.
const ExplanationNA = "N/A"

// Event is one decoded Windows Event Log record.
// Level, Timestamp, Provider, EventID and Message are always set once a
// record survives decoding. Details holds the optional extended fields
// recovered from the message body; key presence is meaningful, an absent
// key is not the same as an empty value.
type Event struct {
	Level     string
	Timestamp string
	Provider  string
	EventID   string
	Message   string

	// Details keys: "Security ID", "Account Name", "Logon ID",
	// "Process Name", "File Path", "Logon Type".
	Details map[string]string

	Explanation string
}

// Detail returns the extended field value for key and whether it was set.
func (e *Event) Detail(key string) (string, bool) {
	v, ok := e.Details[key]
	return v, ok
}

// Markers is the closed set of severity tokens that open a record in the
// export. Matching is case-sensitive: the export writes them exactly so.
var Markers = []string{
	"Sucesso da Auditoria",
	"Falha da Auditoria",
	"Information",
	"Warning",
	"Error",
	"Critical",
}

// NormalizeLevel canonicalizes a severity token for filtering (trim + lower).
func NormalizeLevel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidLevel reports whether s names a severity from the closed set,
// ignoring case and surrounding whitespace.
func ValidLevel(s string) bool {
	n := NormalizeLevel(s)
	for _, m := range Markers {
		if n == strings.ToLower(m) {
			return true
		}
	}
	return false
}
