package core

import (
	"strings"
	"testing"
	"todoscan/models"

	"github.com/google/go-cmp/cmp"
)

func TestRenderReportEndToEnd(t *testing.T) {
	t.Parallel()
	content := "// TODO fix this\n// TODO-cleanup ugly\nfn f() {}\n"

	tracker := NewCommentTracker()
	for _, c := range collectComments("test.rs", content) {
		tracker.Track(c)
	}

	var buf strings.Builder
	RenderReport(&buf, tracker)

	want := `comments with "TODO": 1
  found "TODO" in file test.rs line line 1
    // TODO fix this
    // TODO-cleanup ugly

comments with "TODO-cleanup": 1
  found "TODO-cleanup" in file test.rs line line 1
    // TODO fix this
    // TODO-cleanup ugly

SUMMARY:

comments with "TODO": 1
comments with "TODO-cleanup": 1
total comments found: 2
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderReportEmptyTracker(t *testing.T) {
	t.Parallel()
	var buf strings.Builder
	RenderReport(&buf, NewCommentTracker())

	want := "SUMMARY:\n\ntotal comments found: 0\n"
	if got := buf.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestRenderStoredReportMatchesLiveReport(t *testing.T) {
	t.Parallel()
	content := "// XXX look here\n\n// TODO-security audit\n// spans two lines\nlet x = 1;\n/* FIXME block */\n"

	tracker := NewCommentTracker()
	for _, c := range collectComments("lib.rs", content) {
		tracker.Track(c)
	}

	var live strings.Builder
	RenderReport(&live, tracker)

	// Flatten the tracker the way the scan command persists it, then render
	// from the rows.
	var findings []models.Finding
	for rank, kind := range tracker.Kinds() {
		for _, c := range tracker.Comments(kind) {
			findings = append(findings, models.Finding{
				ScanID:      1,
				Kind:        kind,
				KindRank:    int64(rank),
				FilePath:    c.FilePath,
				StartLine:   int64(c.StartLine),
				CommentText: c.Text(),
			})
		}
	}

	var stored strings.Builder
	RenderStoredReport(&stored, findings)

	if diff := cmp.Diff(live.String(), stored.String()); diff != "" {
		t.Errorf("stored report differs from live report (-live +stored):\n%s", diff)
	}
}
