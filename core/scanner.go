package core

import (
	"strings"
	"todoscan/models"
)

// scanState is the lexical state of the comment scanner. The scanner is a
// small explicit state machine so the known limitations (no nested block
// comments, best-effort string suppression) live in one place.
type scanState int

const (
	stateCode scanState = iota
	stateLineComment
	stateBlockComment
	stateString
	stateChar
)

// pendingComment accumulates adjacent line-comment lines until something
// breaks the run (a blank line, a code line, a block comment, or EOF).
type pendingComment struct {
	startLine int
	endLine   int
	lines     []string
}

// CommentScanner walks the raw text of one file character by character and
// emits Comments in the order they appear. It is a one-shot iterator: call
// Next until it returns false. String and character literals suppress
// comment detection; block comments do not nest (the first "*/" closes
// them); an unterminated comment extends to end of file.
type CommentScanner struct {
	path string
	src  string
	pos  int
	line int

	state   scanState
	pending *pendingComment

	lineBuf    strings.Builder // current line-comment line, from "//" onward
	blockBuf   strings.Builder // raw block comment, from "/*" onward
	blockStart int

	lineHadCode bool // non-whitespace code seen on the current line
}

// NewCommentScanner returns a scanner over the full text content of one file.
func NewCommentScanner(path, content string) *CommentScanner {
	return &CommentScanner{
		path:  path,
		src:   content,
		line:  1,
		state: stateCode,
	}
}

// Next returns the next Comment in the file, or false when the input is
// exhausted. Consuming input that is not valid source still produces
// best-effort output; Next never fails.
func (s *CommentScanner) Next() (models.Comment, bool) {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch s.state {
		case stateCode:
			switch {
			case c == '\n':
				s.pos++
				out := s.pending
				s.pending = nil
				s.line++
				s.lineHadCode = false
				// A line with no line comment on it breaks a run of
				// adjacent line comments.
				if out != nil {
					return s.finish(out), true
				}
			case c == '/' && s.peek() == '/':
				var out *pendingComment
				if s.pending != nil && (s.lineHadCode || s.pending.endLine != s.line-1) {
					out = s.pending
					s.pending = nil
				}
				if s.pending == nil {
					s.pending = &pendingComment{startLine: s.line, endLine: s.line - 1}
				}
				s.lineBuf.Reset()
				s.lineBuf.WriteString("//")
				s.pos += 2
				s.state = stateLineComment
				if out != nil {
					return s.finish(out), true
				}
			case c == '/' && s.peek() == '*':
				var out *pendingComment
				if s.pending != nil {
					out = s.pending
					s.pending = nil
				}
				s.blockBuf.Reset()
				s.blockBuf.WriteString("/*")
				s.blockStart = s.line
				s.pos += 2
				s.state = stateBlockComment
				if out != nil {
					return s.finish(out), true
				}
			case c == '"':
				s.lineHadCode = true
				s.pos++
				s.state = stateString
			case c == '\'':
				s.lineHadCode = true
				s.pos++
				s.state = stateChar
			case c == ' ' || c == '\t' || c == '\r':
				s.pos++
			default:
				s.lineHadCode = true
				s.pos++
			}

		case stateLineComment:
			if c == '\n' {
				s.pending.lines = append(s.pending.lines, strings.TrimRight(s.lineBuf.String(), " \t\r"))
				s.pending.endLine = s.line
				s.lineBuf.Reset()
				s.pos++
				s.line++
				s.lineHadCode = false
				s.state = stateCode
			} else {
				s.lineBuf.WriteByte(c)
				s.pos++
			}

		case stateBlockComment:
			switch {
			case c == '*' && s.peek() == '/':
				s.blockBuf.WriteString("*/")
				s.pos += 2
				s.state = stateCode
				return s.finishBlock(), true
			case c == '\n':
				s.blockBuf.WriteByte(c)
				s.pos++
				s.line++
			default:
				s.blockBuf.WriteByte(c)
				s.pos++
			}

		case stateString:
			switch {
			case c == '\\':
				if s.peek() == '\n' {
					s.line++
				}
				s.pos += 2
			case c == '"':
				s.pos++
				s.state = stateCode
			case c == '\n':
				// Multi-line string literals stay suppressed until the
				// closing quote.
				s.pos++
				s.line++
			default:
				s.pos++
			}

		case stateChar:
			switch {
			case c == '\\':
				s.pos += 2
			case c == '\'':
				s.pos++
				s.state = stateCode
			case c == '\n':
				// Char literals do not span lines. Bailing out here keeps a
				// stray single quote (e.g. a lifetime marker) from eating
				// the rest of the file.
				s.pos++
				s.line++
				s.lineHadCode = false
				s.state = stateCode
			default:
				s.pos++
			}
		}
	}

	// End of input: flush whatever is still open.
	switch s.state {
	case stateLineComment:
		s.pending.lines = append(s.pending.lines, strings.TrimRight(s.lineBuf.String(), " \t\r"))
		s.pending.endLine = s.line
		s.lineBuf.Reset()
		s.state = stateCode
		out := s.pending
		s.pending = nil
		return s.finish(out), true
	case stateBlockComment:
		// Unterminated block comment extends to end of file.
		s.state = stateCode
		return s.finishBlock(), true
	}
	if s.pending != nil {
		out := s.pending
		s.pending = nil
		return s.finish(out), true
	}
	return models.Comment{}, false
}

func (s *CommentScanner) peek() byte {
	if s.pos+1 < len(s.src) {
		return s.src[s.pos+1]
	}
	return 0
}

func (s *CommentScanner) finish(p *pendingComment) models.Comment {
	return models.Comment{
		FilePath:  s.path,
		StartLine: p.startLine,
		Lines:     p.lines,
	}
}

func (s *CommentScanner) finishBlock() models.Comment {
	raw := s.blockBuf.String()
	s.blockBuf.Reset()
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		lines = append(lines, strings.TrimSpace(l))
	}
	return models.Comment{
		FilePath:  s.path,
		StartLine: s.blockStart,
		Lines:     lines,
	}
}
