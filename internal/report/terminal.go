// Package report renders the final event sequence: terminal text, CSV
// export, HTML report. Sinks treat Explanation == "N/A" and absent
// extended fields as nothing to display.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/extract"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

var (
	styleCritical = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("196")).Bold(true)
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleWarning  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleInfo     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleAudit    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func levelStyle(level string) lipgloss.Style {
	switch types.NormalizeLevel(level) {
	case "critical":
		return styleCritical
	case "error", "falha da auditoria":
		return styleError
	case "warning":
		return styleWarning
	case "information":
		return styleInfo
	default:
		return styleAudit
	}
}

const rule = "--------------------------------------------------------------------------------"

// Printer writes events as per-event blocks to a terminal.
type Printer struct {
	W io.Writer
}

// Print renders all events, or a "no events" notice for an empty set.
func (p *Printer) Print(events []types.Event) {
	if len(events) == 0 {
		fmt.Fprintln(p.W, "[*] No events found matching the criteria.")
		return
	}
	fmt.Fprintf(p.W, "[*] Displaying %d event(s):\n", len(events))
	for i := range events {
		p.printEvent(&events[i])
	}
	fmt.Fprintln(p.W, rule)
}

func (p *Printer) printEvent(ev *types.Event) {
	fmt.Fprintln(p.W, rule)
	fmt.Fprintf(p.W, "  Timestamp: %s\n", orNA(ev.Timestamp))
	fmt.Fprintf(p.W, "  Level:     %s\n", levelStyle(ev.Level).Render(orNA(ev.Level)))
	fmt.Fprintf(p.W, "  Event ID:  %s\n", orNA(ev.EventID))
	if ev.Explanation != "" && ev.Explanation != types.ExplanationNA {
		fmt.Fprintf(p.W, "  Meaning:   %s\n", ev.Explanation)
	}
	account := orNAFromDetails(ev, extract.KeyAccountName)
	sid := orNAFromDetails(ev, extract.KeySecurityID)
	fmt.Fprintf(p.W, "  Account:   %s (SID: %s)\n", account, sid)
	if path, ok := ev.Detail(extract.KeyFilePath); ok {
		fmt.Fprintf(p.W, "  File Path: %s\n", path)
	}
	if proc, ok := ev.Detail(extract.KeyProcessName); ok {
		fmt.Fprintf(p.W, "  Process:   %s\n", proc)
	}
	fmt.Fprintf(p.W, "  Message:   %s\n", indentContinuations(ev.Message))
}

func orNA(s string) string {
	if s == "" {
		return types.ExplanationNA
	}
	return s
}

func orNAFromDetails(ev *types.Event, key string) string {
	if v, ok := ev.Detail(key); ok && v != "" {
		return v
	}
	return types.ExplanationNA
}

// indentContinuations keeps multi-line messages aligned with the label column.
func indentContinuations(msg string) string {
	return strings.ReplaceAll(msg, "\n", "\n             ")
}
