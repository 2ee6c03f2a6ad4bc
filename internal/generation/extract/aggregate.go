package extract

import "strings"

// FileText pairs a stored file id with its extracted text.
type FileText struct {
	ID   string
	Text string
}

// Aggregate concatenates extracted texts in the caller-supplied order, each
// section prefixed with a marker line naming the source file. Empty texts
// are kept verbatim; there is no size cap — the generation service's own
// limits govern truncation.
func Aggregate(files []FileText) string {
	var sb strings.Builder
	for _, f := range files {
		sb.WriteString("\n\n--- File: ")
		sb.WriteString(f.ID)
		sb.WriteString(" ---\n")
		sb.WriteString(f.Text)
	}
	return sb.String()
}
