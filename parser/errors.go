package parser

import (
	"strings"
	"unicode/utf8"

	err "github.com/rotemdan/grammar-composer/errors"
	"github.com/rotemdan/grammar-composer/grammar"
)

const (
	ParseFailedError = iota + 1
)

// ParseError is returned by Parser.Parse on failure. It carries the same
// formatted message as any other *errors.Error in this module, plus the
// structured pieces of the best-failed-match diagnostic so a caller can
// build its own report without re-parsing the formatted text.
type ParseError struct {
	Err *err.Error

	bestFailedOffset int
	expected         []string
	line, col        int
}

// BestFailedOffset is the farthest offset any terminal failed at, or -1
// if the parse failed purely on length (no terminal ever failed).
func (e *ParseError) BestFailedOffset() int {
	return e.bestFailedOffset
}

// Expected lists the terminals that failed at BestFailedOffset, each
// rendered the same way the formatted message renders them ('content'
// for string terminals, name for pattern terminals), deduplicated and in
// first-occurrence order. Empty if BestFailedOffset is -1.
func (e *ParseError) Expected() []string {
	return e.expected
}

// LineCol is the 1-based line and column of BestFailedOffset (or of the
// parsed length, when no terminal failed) within the original input.
func (e *ParseError) LineCol() (line, col int) {
	return e.line, e.col
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func parseFailedError(s *state, input string, parsedLength int) *ParseError {
	if len(s.bestFailedTerminals) > 0 {
		expected := describeExpected(s.bestFailedTerminals)
		line, col := lineCol(input, s.bestFailedOffset)
		return &ParseError{
			Err: err.Format(
				ParseFailedError,
				"Failed parsing the input text. Expected %s at position %d.",
				formatExpected(expected), s.bestFailedOffset,
			),
			bestFailedOffset: s.bestFailedOffset,
			expected:         expected,
			line:             line,
			col:              col,
		}
	}

	line, col := lineCol(input, parsedLength)
	return &ParseError{
		Err: err.Format(
			ParseFailedError,
			"Failed parsing the input text. Parsed length was %d. Input length was %d.",
			parsedLength, len(input),
		),
		bestFailedOffset: -1,
		line:             line,
		col:              col,
	}
}

// describeExpected formats the set of terminals that failed at the
// farthest offset reached, deduplicated preserving first occurrence.
func describeExpected(terminals []*grammar.Node) []string {
	seen := make(map[string]bool, len(terminals))
	names := make([]string, 0, len(terminals))

	for _, n := range terminals {
		d := describeTerminal(n)
		if !seen[d] {
			seen[d] = true
			names = append(names, d)
		}
	}
	return names
}

// formatExpected renders a deduplicated expected list the way the
// message prose does: the bare description if there is exactly one, or
// "any of a, b, c" otherwise.
func formatExpected(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	return "any of " + strings.Join(names, ", ")
}

func describeTerminal(n *grammar.Node) string {
	if n.Kind == grammar.StringTerminalKind {
		return "'" + n.Literal + "'"
	}
	return n.Name
}

// lineCol converts a byte offset into input to a 1-based line and
// column, counting runes since the start of that line.
func lineCol(input string, offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}

	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = 1
	for i := lineStart; i < offset; {
		_, size := utf8.DecodeRuneInString(input[i:])
		i += size
		col++
	}
	return line, col
}
