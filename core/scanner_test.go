package core

import (
	"testing"
	"todoscan/models"

	"github.com/google/go-cmp/cmp"
)

func collectComments(path, content string) []models.Comment {
	scanner := NewCommentScanner(path, content)
	var comments []models.Comment
	for {
		c, ok := scanner.Next()
		if !ok {
			return comments
		}
		comments = append(comments, c)
	}
}

func TestCommentScanner(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		content string
		want    []models.Comment
	}{
		{
			name:    "single line comment",
			content: "// TODO fix this\nfn f() {}\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// TODO fix this"}},
			},
		},
		{
			name:    "adjacent line comments coalesce",
			content: "// TODO fix this\n// TODO-cleanup ugly\nfn f() {}\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// TODO fix this", "// TODO-cleanup ugly"}},
			},
		},
		{
			name:    "blank line starts a new comment",
			content: "// first\n\n// second\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// first"}},
				{FilePath: "t.rs", StartLine: 3, Lines: []string{"// second"}},
			},
		},
		{
			name:    "code line starts a new comment",
			content: "// first\nlet x = 1;\n// second\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// first"}},
				{FilePath: "t.rs", StartLine: 3, Lines: []string{"// second"}},
			},
		},
		{
			name:    "indented comments still coalesce",
			content: "    // one\n    // two\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// one", "// two"}},
			},
		},
		{
			name:    "single line block comment",
			content: "/* TODO inline */\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"/* TODO inline */"}},
			},
		},
		{
			name:    "multi line block comment",
			content: "fn main() {\n    /* FIXME broken\n       very broken */\n}\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 2, Lines: []string{"/* FIXME broken", "very broken */"}},
			},
		},
		{
			name:    "unterminated block comment extends to EOF",
			content: "/* TODO dangling\nmore text",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"/* TODO dangling", "more text"}},
			},
		},
		{
			name:    "line comment at EOF without newline",
			content: "// TODO last",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// TODO last"}},
			},
		},
		{
			name:    "comment-like text inside string literal is suppressed",
			content: "let s = \"// TODO not a comment\";\n",
			want:    nil,
		},
		{
			name:    "block start inside string literal is suppressed",
			content: "let s = \"/* TODO nope\";\nlet t = 1;\n",
			want:    nil,
		},
		{
			name:    "escaped quote does not close the string",
			content: "let s = \"say \\\"hi\\\" // TODO still string\";\n",
			want:    nil,
		},
		{
			name:    "comment after string on the same line",
			content: "let s = \"text\"; // TODO real\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// TODO real"}},
			},
		},
		{
			name:    "char literal does not hide a later comment",
			content: "let c = 'x'; // TODO after char\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// TODO after char"}},
			},
		},
		{
			name:    "comment after code does not join a preceding comment",
			content: "// prev\nlet x = 1; // TODO trailing\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// prev"}},
				{FilePath: "t.rs", StartLine: 2, Lines: []string{"// TODO trailing"}},
			},
		},
		{
			name:    "block comment breaks a line comment run",
			content: "// a\n/* b */\n// c\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// a"}},
				{FilePath: "t.rs", StartLine: 2, Lines: []string{"/* b */"}},
				{FilePath: "t.rs", StartLine: 3, Lines: []string{"// c"}},
			},
		},
		{
			name:    "first end sequence closes the block (no nesting)",
			content: "/* outer /* inner */ rest();\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"/* outer /* inner */"}},
			},
		},
		{
			name:    "multi-line string keeps line numbers right",
			content: "let s = \"line1\nTODO line2\";\n// FIXME real\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 3, Lines: []string{"// FIXME real"}},
			},
		},
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
		{
			name:    "crlf line endings",
			content: "// TODO windows\r\n// more\r\n",
			want: []models.Comment{
				{FilePath: "t.rs", StartLine: 1, Lines: []string{"// TODO windows", "// more"}},
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := collectComments("t.rs", tc.content)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("comments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommentScannerIsExhaustedAfterEOF(t *testing.T) {
	t.Parallel()
	scanner := NewCommentScanner("t.rs", "// TODO once\n")
	if _, ok := scanner.Next(); !ok {
		t.Fatal("want one comment, got none")
	}
	if _, ok := scanner.Next(); ok {
		t.Error("want exhausted scanner after EOF, got another comment")
	}
	if _, ok := scanner.Next(); ok {
		t.Error("scanner emitted a comment on a third call after exhaustion")
	}
}

func TestCommentScannerIdempotentOverSameInput(t *testing.T) {
	t.Parallel()
	content := "// TODO a\n\n/* FIXME b */\nlet x = 1; // XXX c\n"
	first := collectComments("t.rs", content)
	second := collectComments("t.rs", content)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("scanning the same input twice differed (-first +second):\n%s", diff)
	}
}
