/*
Package pattern is the regular-expression collaborator the grammar package
depends on to turn a pattern description into something a PatternTerminal
node can execute against a position in the input.

It wraps github.com/dlclark/regexp2 rather than the standard library's
regexp: regexp2 exposes named and numbered capture groups through a single
uniform Groups() accessor and matches against an arbitrary string without
requiring the caller to re-slice or re-anchor the source for every offset,
which is exactly the "compile once, execute at many offsets" shape the
parser core needs.

A Pattern answers exactly three questions for its caller: where (if
anywhere) does it match starting at a given byte offset, what are the
capture spans of that match, and can it match the empty string at all.
Anchoring the search to a specific offset is the caller's responsibility
(see grammar.Pattern, which prepends ^ before compiling) - this package
compiles whatever expression it is given, verbatim.
*/
package pattern

import (
	"strconv"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Group is a single capture span within a Match. Name is the group's
// declared name for named groups, or its 1-based index rendered as a
// decimal string for numbered groups. Matched is false for an optional
// group that did not participate in the match; Start and End are byte
// offsets into the string passed to MatchAt in that case they are both -1.
type Group struct {
	Name       string
	Start, End int
	Matched    bool
}

// Match is the result of a successful MatchAt call. Start and End are byte
// offsets into the string passed to MatchAt. Groups excludes group 0 (the
// overall match, already captured by Start/End) and is ordered by group
// number.
type Match struct {
	Start, End int
	Groups     []Group
}

// Pattern is a compiled, executable pattern.
type Pattern struct {
	source      string
	re          *regexp2.Regexp
	nullable    bool
	namedGroups bool
}

// Compile compiles source as a regexp2 pattern. It fails if source is not a
// valid regular expression, or if it mixes named and unnamed capture groups
// (their relative ordering cannot be recovered from the regex engine once
// mixed, so grammar.Pattern refuses to build a PatternTerminal around such
// an expression).
func Compile(source string) (*Pattern, error) {
	re, e := regexp2.Compile(source, regexp2.None)
	if e != nil {
		return nil, invalidRegexpError(source, e)
	}

	named := 0
	total := 0
	for _, name := range re.GetGroupNames() {
		if name == "0" {
			continue
		}
		total++
		if _, numeric := strconv.Atoi(name); numeric != nil {
			named++
		}
	}
	if named != 0 && named != total {
		return nil, mixedGroupsError(source)
	}

	nullable := false
	if m, e := re.FindStringMatch(""); e == nil && m != nil {
		nullable = true
	}

	return &Pattern{source, re, nullable, named > 0}, nil
}

// Nullable reports whether the pattern can match the empty string.
func (p *Pattern) Nullable() bool {
	return p.nullable
}

// String returns the original, uncompiled pattern source.
func (p *Pattern) String() string {
	return p.source
}

// MatchAt executes the pattern against input, expecting (but not
// requiring) the caller to have anchored it to offset 0 of whatever
// substring it intends to match. MatchAt reports false if there is no
// match, or if the match does not begin exactly at offset.
func (p *Pattern) MatchAt(input string, offset int) (*Match, bool) {
	sub := input[offset:]
	m, e := p.re.FindStringMatch(sub)
	if e != nil || m == nil {
		return nil, false
	}
	if runeToByte(sub, m.Index) != 0 {
		return nil, false
	}

	groups := m.Groups()
	result := &Match{
		Start: offset,
		End:   offset + runeToByte(sub, m.Index+m.Length),
	}

	for i := 1; i < len(groups); i++ {
		g := groups[i]
		rg := Group{Name: g.Name}
		if len(g.Captures) > 0 {
			c := g.Captures[len(g.Captures)-1]
			rg.Matched = true
			rg.Start = offset + runeToByte(sub, c.Index)
			rg.End = offset + runeToByte(sub, c.Index+c.Length)
		} else {
			rg.Start, rg.End = -1, -1
		}
		result.Groups = append(result.Groups, rg)
	}

	return result, true
}

// runeToByte converts a rune offset within s (as returned by regexp2, whose
// engine operates rune by rune) to the equivalent byte offset.
func runeToByte(s string, runeOffset int) int {
	byteOffset := 0
	for i := 0; i < runeOffset && byteOffset < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[byteOffset:])
		byteOffset += size
	}
	return byteOffset
}
