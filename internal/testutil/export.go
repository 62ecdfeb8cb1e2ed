package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExportHeader mirrors the header line the export tool writes; the reader
// discards it.
const ExportHeader = "Level,Date and Time,Source,Event ID,Task Category,Message"

// WriteExport writes a header line plus records to path, one record per
// line (records may themselves contain newlines). Creates parent dirs.
func WriteExport(path string, records []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(ExportHeader)
	b.WriteString("\n")
	for _, r := range records {
		b.WriteString(r)
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// SampleRecords returns a small mixed-locale export body: an English logon
// failure with extended fields, a Portuguese audit success with a quoted
// multi-line message, and a plain warning.
func SampleRecords() []string {
	return []string{
		"Error,2024-03-01 10:00:00,Microsoft-Windows-Security-Auditing,4625,," +
			`"An account failed to log on.` + "\n" +
			"Security ID: S-1-0-0\n" +
			"Account Name: jdoe\n" +
			`Logon Type: 3"`,
		"Sucesso da Auditoria,2024-03-01 10:05:00,Microsoft-Windows-Security-Auditing,4624,," +
			`"Logon com êxito.` + "\n" +
			"Nome da conta: jsilva\n" +
			`Identificação de logon: 0x3E7"`,
		"Warning,2024-03-01 10:10:00,disk,51,,An error was detected on device during a paging operation.",
	}
}

// RepeatedIDRecords returns n well-formed records all sharing eventID, for
// enrichment-cache tests.
func RepeatedIDRecords(eventID string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Error,2024-03-01 10:%02d:00,Src,%s,,message %d", i, eventID, i)
	}
	return out
}
