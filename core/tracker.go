package core

import "todoscan/models"

// CommentTracker accumulates (kind, comment) findings across a scan. Kinds
// keep the order they were first seen; comments keep discovery order within
// each kind. Single writer only: the scan is strictly sequential.
type CommentTracker struct {
	kinds  []string
	byKind map[string][]models.Comment
	total  int
}

func NewCommentTracker() *CommentTracker {
	return &CommentTracker{
		byKind: make(map[string][]models.Comment),
	}
}

// Track classifies one comment and records it once per distinct kind found
// in it. Comments with no marker tokens are not tracked at all.
func (t *CommentTracker) Track(c models.Comment) {
	for _, kind := range ExtractKinds(c) {
		t.Record(kind, c)
	}
}

// Record appends the comment under the given kind, registering the kind if
// this is its first appearance.
func (t *CommentTracker) Record(kind string, c models.Comment) {
	if _, ok := t.byKind[kind]; !ok {
		t.kinds = append(t.kinds, kind)
	}
	t.byKind[kind] = append(t.byKind[kind], c)
	t.total++
}

// Kinds returns the kinds in first-seen order. Callers must not modify the
// returned slice.
func (t *CommentTracker) Kinds() []string {
	return t.kinds
}

// Comments returns the comments recorded under kind, in discovery order.
func (t *CommentTracker) Comments(kind string) []models.Comment {
	return t.byKind[kind]
}

// Total is the number of (kind, comment) pairs recorded. One comment
// matching two kinds counts twice.
func (t *CommentTracker) Total() int {
	return t.total
}

// Snapshot returns a copy of the kind-to-comments mapping for inspection.
func (t *CommentTracker) Snapshot() map[string][]models.Comment {
	snap := make(map[string][]models.Comment, len(t.byKind))
	for kind, comments := range t.byKind {
		snap[kind] = append([]models.Comment(nil), comments...)
	}
	return snap
}
