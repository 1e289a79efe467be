package core

import (
	"fmt"
	"io"
	"strings"
	"todoscan/models"
)

// RenderReport writes the grouped report: one section per kind in first-seen
// order, each finding with a locator line and the comment text reproduced
// verbatim, then a SUMMARY block with per-kind counts and the overall total.
func RenderReport(w io.Writer, t *CommentTracker) {
	for _, kind := range t.Kinds() {
		comments := t.Comments(kind)
		fmt.Fprintf(w, "comments with %q: %d\n", kind, len(comments))
		for _, c := range comments {
			fmt.Fprintf(w, "  found %q in file %s line line %d\n", kind, c.FilePath, c.StartLine)
			for _, l := range c.Lines {
				fmt.Fprintf(w, "    %s\n", l)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "SUMMARY:\n\n")
	total := 0
	for _, kind := range t.Kinds() {
		n := len(t.Comments(kind))
		fmt.Fprintf(w, "comments with %q: %d\n", kind, n)
		total += n
	}
	fmt.Fprintf(w, "total comments found: %d\n", total)
}

// RenderStoredReport re-renders the report of a persisted scan. Findings
// must be ordered by (kind_rank, id), which is how the database layer
// returns them; that reproduces the original kind and discovery order.
func RenderStoredReport(w io.Writer, findings []models.Finding) {
	tracker := NewCommentTracker()
	for _, f := range findings {
		lines := strings.Split(strings.TrimRight(f.CommentText, "\n"), "\n")
		tracker.Record(f.Kind, models.Comment{
			FilePath:  f.FilePath,
			StartLine: int(f.StartLine),
			Lines:     lines,
		})
	}
	RenderReport(w, tracker)
}
