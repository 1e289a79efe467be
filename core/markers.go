package core

import (
	"strings"
	"todoscan/models"
)

// markerPrefixes are the fixed, case-sensitive prefixes a token must start
// with to count as a marker.
var markerPrefixes = []string{"TODO", "FIXME", "XXX"}

// Leading comment-delimiter punctuation stripped from each line before
// tokenizing, so "//TODO x" and "*FIXME y" still match.
const leadingDelimiters = "/*! \t"

// ExtractKinds returns the distinct marker kinds found in one comment, in
// first-occurrence order. The kind is the whole whitespace-delimited token,
// verbatim: "TODO-security" and "TODO-security:" are different kinds. A
// token repeated within the same comment is reported once.
func ExtractKinds(c models.Comment) []string {
	var kinds []string
	seen := make(map[string]struct{})
	for _, line := range c.Lines {
		stripped := strings.TrimLeft(line, leadingDelimiters)
		for _, tok := range strings.Fields(stripped) {
			if !hasMarkerPrefix(tok) {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			kinds = append(kinds, tok)
		}
	}
	return kinds
}

func hasMarkerPrefix(tok string) bool {
	for _, p := range markerPrefixes {
		if strings.HasPrefix(tok, p) {
			return true
		}
	}
	return false
}
