package grammar

import (
	"github.com/rotemdan/grammar-composer/pattern"
)

// Production is any value the builder operators and buildGrammar accept in
// place of a node: a string (a StringTerminal), a []Production (a
// Sequence), a reference produced by Ref, or an already-built *Node.
type Production = any

// ProductionFunc is the callable form of a production map entry. The
// indirection lets a production refer to others declared later in the
// same map (or to itself) without forward-declaration: langdef.Build
// invokes it once, at assembly time, to obtain the actual body.
type ProductionFunc = func() Production

// reference is the unresolved-reference marker produced by Ref. It is
// normalized to a ReferenceKind Node, which langdef.Build replaces with
// the target Nonterminal before returning.
type reference struct {
	name string
}

// Ref returns a reference to another named production. It is the only
// way to build a cyclic or forward-referencing grammar: within a single
// buildGrammar call, productions may refer to each other regardless of
// declaration order.
func Ref(name string) Production {
	return reference{name}
}

// Normalize converts any valid Production value into a *Node. Passing an
// already-built *Node returns it unchanged (builder operators are meant
// to compose freely).
func Normalize(p Production) *Node {
	switch v := p.(type) {
	case *Node:
		return v
	case string:
		return newStringTerminal(v)
	case []Production:
		return newSequence(v)
	case reference:
		n := newHeader(ReferenceKind)
		n.RefName = v.name
		return &n
	default:
		panic(invalidProductionError(p))
	}
}

func normalizeAll(items []Production) []*Node {
	nodes := make([]*Node, len(items))
	for i, item := range items {
		nodes[i] = Normalize(item)
	}
	return nodes
}

func newStringTerminal(s string) *Node {
	if s == "" {
		panic(emptyLiteralError())
	}

	n := newHeader(StringTerminalKind)
	n.Literal = s
	return &n
}

// Pattern builds a PatternTerminal from a regular expression. The pattern
// is anchored so it can only match starting at the current parse offset;
// its nullability (whether it can match the empty string) is asked of the
// pattern package once, at compile time, and becomes this node's initial
// Optional value.
func Pattern(re string) *Node {
	compiled, e := pattern.Compile("^(?:" + re + ")")
	if e != nil {
		panic(e)
	}

	n := newHeader(PatternTerminalKind)
	n.Pattern = compiled
	n.Optional = compiled.Nullable()
	return &n
}

func newSequence(items []Production) *Node {
	n := newHeader(SequenceKind)
	n.Members = normalizeAll(items)
	return &n
}

// Seq builds a Sequence from its operands; equivalent to passing a
// []Production literal wherever a Production is expected.
func Seq(items ...Production) *Node {
	return newSequence(items)
}

func newChoice(items []Production, exhaustive bool) *Node {
	if len(items) == 0 {
		panic(emptyChoiceError(exhaustive))
	}

	n := newHeader(ChoiceKind)
	n.Exhaustive = exhaustive
	n.Members = normalizeAll(items)
	return &n
}

// AnyOf builds a first-match Choice: branches are tried in order and the
// first one that succeeds wins.
func AnyOf(items ...Production) *Node {
	return newChoice(items, false)
}

// BestOf builds a longest-match Choice: every branch is tried and the one
// that consumes the most input wins, ties going to the earliest in
// declaration order.
func BestOf(items ...Production) *Node {
	return newChoice(items, true)
}

func newRepetition(p Production, atLeastOne bool) *Node {
	n := newHeader(RepetitionKind)
	n.Body = Normalize(p)
	n.AtLeastOne = atLeastOne
	n.Optional = !atLeastOne
	return &n
}

// ZeroOrMore builds a greedy repetition that may match zero times.
func ZeroOrMore(p Production) *Node {
	return newRepetition(p, false)
}

// OneOrMore builds a greedy repetition that must match at least once; the
// parser additionally enforces this at runtime via a forward-progress
// check (§4.F), since the analyzer may still mark it optional if its body
// turns out to be optional.
func OneOrMore(p Production) *Node {
	return newRepetition(p, true)
}

// Possibly returns a shallow clone of p's node with Optional forced true.
// Wrapping a Ref makes the reference resolve to the production's optional
// twin (§4.C step 3) rather than its required one.
func Possibly(p Production) *Node {
	c := Normalize(p).clone()
	c.Optional = true
	return c
}

// Cached returns a shallow clone of p's node with memoization forced on.
func Cached(p Production) *Node {
	c := Normalize(p).clone()
	c.Cached = CacheEnabled
	return c
}

// Uncached returns a shallow clone of p's node with memoization forced
// off, overriding a library default of cached-by-default should an
// implementer ever change it.
func Uncached(p Production) *Node {
	c := Normalize(p).clone()
	c.Cached = CacheDisabled
	return c
}
