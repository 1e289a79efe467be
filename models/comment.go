package models

import "strings"

// Comment is one comment extracted from a source file: either a maximal run
// of adjacent line comments or a single block comment. Immutable once built.
type Comment struct {
	FilePath  string   `json:"file_path"`
	StartLine int      `json:"start_line"` // 1-based line of the first comment line
	Lines     []string `json:"lines"`
}

// Text returns the comment body with one trailing newline per line, matching
// how the report reproduces it.
func (c Comment) Text() string {
	var b strings.Builder
	for _, l := range c.Lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
