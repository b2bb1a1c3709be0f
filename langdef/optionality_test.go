package langdef

import (
	"testing"

	"github.com/rotemdan/grammar-composer/grammar"
	"github.com/rotemdan/grammar-composer/internal/test"
)

func TestOptionalityStringTerminal(t *testing.T) {
	g, e := Build(map[string]grammar.Production{
		"start": "a",
	}, "start")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectBool(t, false, g.Root.Body.Optional)
}

func TestOptionalitySequenceRequiresEveryMember(t *testing.T) {
	g, e := Build(map[string]grammar.Production{
		"start": grammar.Seq(grammar.Possibly("a"), "b"),
	}, "start")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectBool(t, false, g.Root.Body.Optional)
}

func TestOptionalitySequenceAllOptionalMembers(t *testing.T) {
	g, e := Build(map[string]grammar.Production{
		"start": grammar.Seq(grammar.Possibly("a"), grammar.Possibly("b")),
	}, "start")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectBool(t, true, g.Root.Body.Optional)
}

// Choice optionality is deliberately "all members optional", the same
// rule as Sequence, rather than "any member optional" — see DESIGN.md.
func TestOptionalityChoiceUsesAllMembersRule(t *testing.T) {
	g, e := Build(map[string]grammar.Production{
		"start": grammar.AnyOf(grammar.Possibly("a"), "b"),
	}, "start")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectBool(t, false, g.Root.Body.Optional)

	g2, e2 := Build(map[string]grammar.Production{
		"start": grammar.AnyOf(grammar.Possibly("a"), grammar.Possibly("b")),
	}, "start")
	test.Assert(t, e2 == nil, "unexpected error: %v", e2)
	test.ExpectBool(t, true, g2.Root.Body.Optional)
}

func TestOptionalityZeroOrMoreIsOptional(t *testing.T) {
	g, e := Build(map[string]grammar.Production{
		"start": grammar.ZeroOrMore("a"),
	}, "start")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectBool(t, true, g.Root.Body.Optional)
}

func TestOptionalityOneOrMoreDependsOnBody(t *testing.T) {
	g, e := Build(map[string]grammar.Production{
		"start": grammar.OneOrMore("a"),
	}, "start")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectBool(t, false, g.Root.Body.Optional)
}

// resolveOptionality must run to completion and produce a verdict even
// on a graph a later left-recursion check would reject: two Nonterminals
// referring only to each other, with no terminal anywhere to resolve
// through. Per §4.D step 4, such a cluster settles optional by
// construction (it has no non-optional dependency to block it).
func TestOptionalityResolvesThroughCycle(t *testing.T) {
	p := &grammar.Node{Kind: grammar.NonterminalKind, Name: "p", UniqueID: 0}
	q := &grammar.Node{Kind: grammar.NonterminalKind, Name: "q", UniqueID: 1}
	p.Body = q
	q.Body = p

	resolveOptionality([]*grammar.Node{p, q})

	test.ExpectBool(t, true, p.Optional)
	test.ExpectBool(t, true, q.Optional)
}
