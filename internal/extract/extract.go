// Package extract recovers semi-structured fields from the free-text
// message body of an event. Exports mix locales: each probe recognizes the
// English and Portuguese spellings of the same label and captures the rest
// of the line.
package extract

import (
	"regexp"
	"strings"
)

// Canonical Details keys. "File Path" is filled from the "Object Name"
// label on purpose: the report vocabulary differs from the log vocabulary.
const (
	KeySecurityID  = "Security ID"
	KeyAccountName = "Account Name"
	KeyLogonID     = "Logon ID"
	KeyProcessName = "Process Name"
	KeyFilePath    = "File Path"
	KeyLogonType   = "Logon Type"
)

type probe struct {
	key string
	re  *regexp.Regexp
}

// The stray t? after the Security ID label swallows a literal tab-escape
// artifact seen in real exports.
var probes = []probe{
	{KeySecurityID, regexp.MustCompile(`(?i)(?:Security ID|ID de segurança|Identificação de segurança):\s*t?\s*([^\r\n]+)`)},
	{KeyAccountName, regexp.MustCompile(`(?i)(?:Account Name|Nome da conta):\s*([^\r\n]+)`)},
	{KeyLogonID, regexp.MustCompile(`(?i)(?:Logon ID|ID de Logon|Identificação de logon):\s*([^\r\n]+)`)},
	{KeyProcessName, regexp.MustCompile(`(?i)(?:Process Name|Nome do processo):\s*([^\r\n]+)`)},
	{KeyFilePath, regexp.MustCompile(`(?i)(?:Object Name|Nome do objeto):\s*([^\r\n]+)`)},
	{KeyLogonType, regexp.MustCompile(`(?i)(?:Logon Type|Tipo de Logon):\s*([^\r\n]+)`)},
}

// Details probes message for every extended field and returns the matched
// ones, values trimmed. A field whose label is absent is omitted from the
// map entirely. Probes are independent; within one field the leftmost label
// occurrence in the message wins, whichever locale it is.
func Details(message string) map[string]string {
	details := make(map[string]string)
	if message == "" {
		return details
	}
	for _, p := range probes {
		if m := p.re.FindStringSubmatch(message); m != nil {
			details[p.key] = strings.TrimSpace(m[1])
		}
	}
	return details
}
