package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/extract"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// WriteHTML renders a self-contained interactive report: a summary table
// with one collapsible details row per event. All values are escaped by
// the template engine.
func WriteHTML(w io.Writer, events []types.Event) error {
	data := htmlData{Generated: time.Now().Format("2006-01-02 15:04:05")}
	for i := range events {
		ev := &events[i]
		row := htmlRow{
			Index:       i,
			Timestamp:   orNA(ev.Timestamp),
			Level:       orNA(ev.Level),
			LevelClass:  levelClass(ev.Level),
			EventID:     orNA(ev.EventID),
			Explanation: ev.Explanation,
			Message:     orNA(ev.Message),
		}
		if v, ok := ev.Detail(extract.KeyAccountName); ok {
			row.Account = v
		}
		if v, ok := ev.Detail(extract.KeySecurityID); ok {
			row.SID = v
		}
		if v, ok := ev.Detail(extract.KeyProcessName); ok {
			row.Process = v
		}
		if v, ok := ev.Detail(extract.KeyFilePath); ok {
			row.File = v
		}
		data.Rows = append(data.Rows, row)
	}
	return reportTemplate.Execute(w, data)
}

// WriteHTMLFile writes the HTML report to path.
func WriteHTMLFile(path string, events []types.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html report: %w", err)
	}
	if err := WriteHTML(f, events); err != nil {
		f.Close()
		return fmt.Errorf("write html report: %w", err)
	}
	return f.Close()
}

type htmlData struct {
	Generated string
	Rows      []htmlRow
}

type htmlRow struct {
	Index       int
	Timestamp   string
	Level       string
	LevelClass  string
	EventID     string
	Explanation string
	Message     string
	Account     string
	SID         string
	Process     string
	File        string
}

func levelClass(level string) string {
	switch types.NormalizeLevel(level) {
	case "critical":
		return "level-critical"
	case "error", "falha da auditoria":
		return "level-error"
	case "warning":
		return "level-warning"
	case "information":
		return "level-information"
	case "sucesso da auditoria":
		return "level-audit"
	default:
		return ""
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Interactive Event Log Report</title>
<style>
  :root {
    --bg-color: #f4f7f9; --text-color: #333; --container-bg: #fff;
    --header-bg: #2c3e50; --header-color: #fff; --border-color: #ddd;
    --row-alt-bg: #f2f2f2; --row-hover-bg: #e8f4fd; --row-active-bg: #d1e9fc;
    --details-bg: #fafafa; --details-text: #555; --shadow-color: rgba(0,0,0,0.1);
  }
  @media (prefers-color-scheme: dark) {
    :root {
      --bg-color: #1a1a1a; --text-color: #e0e0e0; --container-bg: #2c2c2c;
      --header-bg: #1f2937; --header-color: #fff; --border-color: #444;
      --row-alt-bg: #333; --row-hover-bg: #3a4149; --row-active-bg: #4a5159;
      --details-bg: #222; --details-text: #ccc; --shadow-color: rgba(0,0,0,0.4);
    }
  }
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; margin: 0; background-color: var(--bg-color); color: var(--text-color); }
  .container { max-width: 1400px; margin: 20px auto; padding: 20px; background-color: var(--container-bg); box-shadow: 0 2px 10px var(--shadow-color); border-radius: 8px; }
  h1 { color: var(--text-color); border-bottom: 2px solid var(--border-color); padding-bottom: 10px; }
  table { width: 100%; border-collapse: collapse; margin-top: 20px; }
  th, td { padding: 12px 15px; text-align: left; border-bottom: 1px solid var(--border-color); }
  th { background-color: var(--header-bg); color: var(--header-color); }
  .summary-row { cursor: pointer; }
  .summary-row:nth-child(even) { background-color: var(--row-alt-bg); }
  .summary-row:hover { background-color: var(--row-hover-bg); }
  .summary-row.active { background-color: var(--row-active-bg); }
  .details-row { display: none; }
  .details-cell { background-color: var(--details-bg); padding: 20px; }
  .details-cell pre { white-space: pre-wrap; word-wrap: break-word; font-family: 'Consolas', 'Monaco', monospace; font-size: 0.9em; color: var(--details-text); }
  .level { font-weight: bold; }
  .level-critical, .level-error { color: #e74c3c; }
  .level-warning { color: #f39c12; }
  .level-information { color: #3498db; }
  .level-audit { color: #7f8c8d; }
  .details, .explanation { word-break: break-word; font-size: 0.9em; }
  .details strong { color: var(--text-color); }
</style>
<script>
  function toggleDetails(index) {
    var detailsRow = document.getElementById('details-' + index);
    var summaryRow = document.getElementById('summary-' + index);
    if (detailsRow.style.display === 'table-row') {
      detailsRow.style.display = 'none';
      summaryRow.classList.remove('active');
    } else {
      detailsRow.style.display = 'table-row';
      summaryRow.classList.add('active');
    }
  }
</script>
</head>
<body>
<div class="container">
<h1>Interactive Event Log Report</h1>
<p>Generated on: {{.Generated}}. Click on a row to see the full event message.</p>
<table>
<thead><tr><th>Timestamp</th><th>Level</th><th>Event ID</th><th>Details</th><th class="explanation">Explanation</th></tr></thead>
<tbody>
{{range .Rows}}<tr id="summary-{{.Index}}" class="summary-row" onclick="toggleDetails({{.Index}})">
<td>{{.Timestamp}}</td>
<td><span class="level {{.LevelClass}}">{{.Level}}</span></td>
<td>{{.EventID}}</td>
<td class="details">{{if .Account}}<strong>Account:</strong> {{.Account}}<br>{{end}}{{if .SID}}<strong>SID:</strong> {{.SID}}<br>{{end}}{{if .Process}}<strong>Process:</strong> {{.Process}}<br>{{end}}{{if .File}}<strong>File:</strong> {{.File}}{{end}}</td>
<td class="explanation">{{.Explanation}}</td>
</tr>
<tr id="details-{{.Index}}" class="details-row">
<td colspan="5" class="details-cell"><pre><strong>Full Message:</strong>
{{.Message}}</pre></td>
</tr>
{{end}}</tbody>
</table>
</div>
</body>
</html>
`))
