package core

import (
	"testing"
	"todoscan/models"

	"github.com/google/go-cmp/cmp"
)

func comment(lines ...string) models.Comment {
	return models.Comment{FilePath: "t.rs", StartLine: 1, Lines: lines}
}

func TestExtractKinds(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		c    models.Comment
		want []string
	}{
		{
			name: "plain markers",
			c:    comment("// TODO fix this", "// FIXME also this", "// XXX and this"),
			want: []string{"TODO", "FIXME", "XXX"},
		},
		{
			name: "qualified markers are taken verbatim",
			c:    comment("// TODO-security check the input", "// FIXME(alice) broken"),
			want: []string{"TODO-security", "FIXME(alice)"},
		},
		{
			name: "trailing punctuation makes a distinct kind",
			c:    comment("// TODO-like. but trailing dot sticks"),
			want: []string{"TODO-like."},
		},
		{
			name: "colon is part of the kind",
			c:    comment("// TODO: colon kept"),
			want: []string{"TODO:"},
		},
		{
			name: "duplicate tokens reported once",
			c:    comment("// TODO-a something", "// TODO-a again"),
			want: []string{"TODO-a"},
		},
		{
			name: "multiple kinds in one comment",
			c:    comment("// TODO-security and TODO-coverage both apply"),
			want: []string{"TODO-security", "TODO-coverage"},
		},
		{
			name: "no whitespace after delimiter",
			c:    comment("//TODO glued to the delimiter"),
			want: []string{"TODO"},
		},
		{
			name: "block comment continuation stars are stripped",
			c:    comment("/* FIXME top", "* TODO inner", "*/"),
			want: []string{"FIXME", "TODO"},
		},
		{
			name: "case sensitive",
			c:    comment("// todo lowercase is not a marker", "// Fixme neither"),
			want: nil,
		},
		{
			name: "prefix match inside a longer word",
			c:    comment("// XXXL is still a kind"),
			want: []string{"XXXL"},
		},
		{
			name: "marker must start the token",
			c:    comment("// pseudo-TODO does not count"),
			want: nil,
		},
		{
			name: "no markers",
			c:    comment("// nothing to see here"),
			want: nil,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractKinds(tc.c)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractKindsVerbatimTokensAreDistinct(t *testing.T) {
	t.Parallel()
	withDot := ExtractKinds(comment("// TODO-like. trailing"))
	without := ExtractKinds(comment("// TODO-like no trailing"))
	if withDot[0] == without[0] {
		t.Errorf("want distinct kinds for %q and %q, got both %q", "TODO-like.", "TODO-like", withDot[0])
	}
}
