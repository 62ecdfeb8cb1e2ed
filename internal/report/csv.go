package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// Fixed column names shared by every event.
var fixedColumns = []string{"Level", "Timestamp", "Provider", "EventID", "Message", "Explanation"}

// WriteCSV writes events with a header row of the sorted union of all keys
// seen across all events. Absent extended fields render as empty cells.
func WriteCSV(w io.Writer, events []types.Event) error {
	columns := unionColumns(events)
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	row := make([]string, len(columns))
	for i := range events {
		for j, col := range columns {
			row[j] = columnValue(&events[i], col)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV export to path. An unwritable path is fatal
// to the run.
func WriteCSVFile(path string, events []types.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv export: %w", err)
	}
	if err := WriteCSV(f, events); err != nil {
		f.Close()
		return fmt.Errorf("write csv export: %w", err)
	}
	return f.Close()
}

func unionColumns(events []types.Event) []string {
	seen := make(map[string]bool, len(fixedColumns))
	all := make([]string, 0, len(fixedColumns))
	for _, c := range fixedColumns {
		seen[c] = true
		all = append(all, c)
	}
	for i := range events {
		for k := range events[i].Details {
			if !seen[k] {
				seen[k] = true
				all = append(all, k)
			}
		}
	}
	sort.Strings(all)
	return all
}

func columnValue(ev *types.Event, col string) string {
	switch col {
	case "Level":
		return ev.Level
	case "Timestamp":
		return ev.Timestamp
	case "Provider":
		return ev.Provider
	case "EventID":
		return ev.EventID
	case "Message":
		return ev.Message
	case "Explanation":
		return ev.Explanation
	default:
		return ev.Details[col]
	}
}
