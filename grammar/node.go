/*
Package grammar defines the grammar node model (a tagged union over seven
variants) and the pure builder operators used to construct it:
stringTerminal, patternTerminal, sequence, repetition, choice, possibly,
cached/uncached, and unresolved non-terminal references.

Nodes are immutable once built except for what package langdef writes in
place during grammar preparation: UniqueID, Optional, the Body and Members
slots in which references are replaced by their target Nonterminals, and
the Name of a pattern that forms a whole production body. Everything else
is fixed at construction time.
*/
package grammar

import (
	"github.com/rotemdan/grammar-composer/pattern"
)

// Kind tags the seven node variants.
type Kind int

const (
	StringTerminalKind Kind = iota
	PatternTerminalKind
	NonterminalKind
	SequenceKind
	RepetitionKind
	ChoiceKind
	ReferenceKind
)

func (k Kind) String() string {
	switch k {
	case StringTerminalKind:
		return "StringTerminal"
	case PatternTerminalKind:
		return "PatternTerminal"
	case NonterminalKind:
		return "Nonterminal"
	case SequenceKind:
		return "Sequence"
	case RepetitionKind:
		return "Repetition"
	case ChoiceKind:
		return "Choice"
	case ReferenceKind:
		return "NonterminalReference"
	default:
		return "?"
	}
}

// CacheMode is the three-valued cached signal carried in every node's
// header: unset (library default, uncached), explicitly enabled, or
// explicitly disabled.
type CacheMode int8

const (
	CacheUnset CacheMode = iota
	CacheEnabled
	CacheDisabled
)

// NoID marks a node whose UniqueID has not yet been assigned by the
// grammar assembler.
const NoID = -1

// Node is a single grammar node. Which of the variant-specific fields are
// meaningful is determined entirely by Kind; see the package doc and
// spec §3 for the mapping.
type Node struct {
	Kind Kind

	// Optional starts out as the construction-time "forced optional" flag
	// (set by Possibly, and by ZeroOrMore for the repetition itself) and is
	// overwritten in place by the optionality analyzer with the final,
	// fully-computed verdict. A forced-true flag is never cleared by the
	// analyzer; see langdef/optionality.go.
	Optional bool

	// UniqueID is NoID until the grammar assembler visits this node, at
	// which point it is assigned a value in the contiguous range
	// [0, maxElementID) (§3's "Invariants after preparation").
	UniqueID int

	// Cached is meaningful on every variant and matters only to the
	// parser's dispatch logic, which consults it for every node it
	// interprets and memoizes only nodes set to CacheEnabled.
	Cached CacheMode

	// Literal holds the exact text to match, for StringTerminalKind.
	Literal string

	// Name holds the production name, for NonterminalKind and
	// PatternTerminalKind (empty for a pattern used inline rather than as
	// a whole production body).
	Name string

	// Pattern holds the compiled pattern handle, for PatternTerminalKind.
	Pattern *pattern.Pattern

	// Body holds the wrapped node, for NonterminalKind and
	// RepetitionKind.
	Body *Node

	// Members holds the ordered operand list, for SequenceKind and
	// ChoiceKind.
	Members []*Node

	// Exhaustive distinguishes bestOf (true, longest-match) from anyOf
	// (false, first-match), for ChoiceKind.
	Exhaustive bool

	// AtLeastOne records whether this repetition was built with
	// OneOrMore rather than ZeroOrMore, for RepetitionKind. It is purely
	// informational: the actual "at least one" enforcement happens at
	// parse time via the forward-progress check (§4.F), and the
	// optionality analyzer derives Repetition's optional verdict from
	// Optional/Body, not from this flag.
	AtLeastOne bool

	// RefName holds the referenced production's name, for
	// ReferenceKind. Reference nodes are transient: buildGrammar replaces
	// every one of them in place before returning (§3's invariant "no
	// NonterminalReference remains in the graph").
	RefName string
}

// newHeader returns the zero header shared by every freshly constructed
// node: not yet optional, not yet assigned an ID, cache mode unset.
func newHeader(kind Kind) Node {
	return Node{Kind: kind, UniqueID: NoID}
}

// clone returns a shallow copy of n: Members, Body, and Pattern are shared
// with the original, only the header fields are independently settable.
// This backs Possibly, Cached, and Uncached.
func (n *Node) clone() *Node {
	c := *n
	return &c
}
