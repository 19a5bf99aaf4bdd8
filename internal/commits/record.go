package commits

import (
	"strings"
	"time"
)

// Record is the stored state of one commit
type Record struct {
	AbbrevHash string
	AuthorDate string // ISO-8601, set when first observed
	Subject    string
	Current    bool // present in the most recent log
	Sequence   int  // assigned once, never reused
	Selected   bool
	Note       string
}

// whenLayout is the display format for author dates
const whenLayout = "2006-01-02 15:04"

// When returns the author date formatted for display.
// Dates that do not parse are returned unchanged.
func (r Record) When() string {
	t, err := time.Parse(time.RFC3339, r.AuthorDate)
	if err != nil {
		return r.AuthorDate
	}
	return t.Format(whenLayout)
}

// Label returns the note if there is one, otherwise the subject, as a single line
func (r Record) Label() string {
	if strings.TrimSpace(r.Note) != "" {
		return firstLine(r.Note)
	}
	return firstLine(r.Subject)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}
	return s
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeText folds CRLF and bare CR line endings to LF so text survives a
// CSV round trip
func normalizeText(s string) string {
	return lineEndings.Replace(s)
}
