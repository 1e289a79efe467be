package core

import (
	"testing"
	"todoscan/models"

	"github.com/google/go-cmp/cmp"
)

func TestTrackerKindOrderIsFirstSeen(t *testing.T) {
	t.Parallel()
	tracker := NewCommentTracker()
	tracker.Track(comment("// XXX first kind seen"))
	tracker.Track(comment("// TODO second kind"))
	tracker.Track(comment("// XXX back to the first"))
	tracker.Track(comment("// FIXME third kind"))

	want := []string{"XXX", "TODO", "FIXME"}
	if diff := cmp.Diff(want, tracker.Kinds()); diff != "" {
		t.Errorf("kind order mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackerCrossKindComment(t *testing.T) {
	t.Parallel()
	tracker := NewCommentTracker()
	c := comment("// TODO-security and TODO-coverage in one comment")
	tracker.Track(c)

	if got, want := tracker.Total(), 2; got != want {
		t.Errorf("total: want %d, got %d", want, got)
	}
	for _, kind := range []string{"TODO-security", "TODO-coverage"} {
		if got := len(tracker.Comments(kind)); got != 1 {
			t.Errorf("comments under %q: want 1, got %d", kind, got)
		}
	}
}

func TestTrackerDedupPerKind(t *testing.T) {
	t.Parallel()
	tracker := NewCommentTracker()
	tracker.Track(comment("// TODO-a once and TODO-a twice"))

	if got := len(tracker.Comments("TODO-a")); got != 1 {
		t.Errorf("want comment recorded once under TODO-a, got %d times", got)
	}
	if got, want := tracker.Total(), 1; got != want {
		t.Errorf("total: want %d, got %d", want, got)
	}
}

func TestTrackerUntrackedComment(t *testing.T) {
	t.Parallel()
	tracker := NewCommentTracker()
	tracker.Track(comment("// nothing interesting"))

	if got := len(tracker.Kinds()); got != 0 {
		t.Errorf("want no kinds, got %d", got)
	}
	if got := tracker.Total(); got != 0 {
		t.Errorf("want total 0, got %d", got)
	}
}

func TestTrackerCommentsKeepDiscoveryOrder(t *testing.T) {
	t.Parallel()
	tracker := NewCommentTracker()
	first := models.Comment{FilePath: "a.rs", StartLine: 1, Lines: []string{"// TODO a"}}
	second := models.Comment{FilePath: "b.rs", StartLine: 9, Lines: []string{"// TODO b"}}
	tracker.Track(first)
	tracker.Track(second)

	got := tracker.Comments("TODO")
	want := []models.Comment{first, second}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("per-kind order mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackerSnapshotIsACopy(t *testing.T) {
	t.Parallel()
	tracker := NewCommentTracker()
	tracker.Track(comment("// TODO a"))

	snap := tracker.Snapshot()
	snap["TODO"][0].StartLine = 999

	if tracker.Comments("TODO")[0].StartLine == 999 {
		t.Error("mutating the snapshot leaked into the tracker")
	}
}
