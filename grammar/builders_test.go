package grammar

import (
	"testing"

	"github.com/rotemdan/grammar-composer/internal/test"
)

func TestNormalizeString(t *testing.T) {
	n := Normalize("abc")
	test.Assert(t, n.Kind == StringTerminalKind, "expecting StringTerminalKind, got %s", n.Kind)
	test.ExpectString(t, "abc", n.Literal)
}

func TestNormalizeSequence(t *testing.T) {
	n := Normalize([]Production{"a", "b"})
	test.Assert(t, n.Kind == SequenceKind, "expecting SequenceKind, got %s", n.Kind)
	test.ExpectInt(t, 2, len(n.Members))
}

func TestNormalizePassesNodeThrough(t *testing.T) {
	original := Seq("a", "b")
	test.Assert(t, Normalize(original) == original, "Normalize should return *Node unchanged")
}

func TestNormalizeRejectsUnknownType(t *testing.T) {
	defer func() {
		test.Assert(t, recover() != nil, "expecting a panic for an unsupported production type")
	}()
	Normalize(42)
}

func TestEmptyStringTerminalPanics(t *testing.T) {
	defer func() {
		e := recover()
		test.Assert(t, e != nil, "expecting a panic")
		test.ExpectErrorCode(t, EmptyLiteralError, e.(error))
	}()
	Normalize("")
}

func TestEmptyAnyOfPanics(t *testing.T) {
	defer func() {
		e := recover()
		test.Assert(t, e != nil, "expecting a panic")
		test.ExpectErrorCode(t, EmptyChoiceError, e.(error))
	}()
	AnyOf()
}

func TestAnyOfVsBestOfExhaustive(t *testing.T) {
	any := AnyOf("a", "b")
	test.ExpectBool(t, false, any.Exhaustive)

	best := BestOf("a", "b")
	test.ExpectBool(t, true, best.Exhaustive)
}

func TestZeroOrMoreOneOrMore(t *testing.T) {
	zero := ZeroOrMore("a")
	test.ExpectBool(t, true, zero.Optional)
	test.ExpectBool(t, false, zero.AtLeastOne)

	one := OneOrMore("a")
	test.ExpectBool(t, false, one.Optional)
	test.ExpectBool(t, true, one.AtLeastOne)
}

func TestPossiblyClonesRatherThanMutates(t *testing.T) {
	original := Normalize("a")
	wrapped := Possibly(original)

	test.ExpectBool(t, false, original.Optional)
	test.ExpectBool(t, true, wrapped.Optional)
	test.Assert(t, wrapped != original, "Possibly must return a clone, not the original node")
}

func TestCachedUncached(t *testing.T) {
	n := Cached("a")
	test.Assert(t, n.Cached == CacheEnabled, "expecting CacheEnabled")

	u := Uncached(n)
	test.Assert(t, u.Cached == CacheDisabled, "expecting CacheDisabled")
}

func TestRefProducesReferenceNode(t *testing.T) {
	n := Normalize(Ref("foo"))
	test.Assert(t, n.Kind == ReferenceKind, "expecting ReferenceKind, got %s", n.Kind)
	test.ExpectString(t, "foo", n.RefName)
}

func TestPatternNullability(t *testing.T) {
	p := Pattern(`a*`)
	test.ExpectBool(t, true, p.Optional)

	q := Pattern(`a+`)
	test.ExpectBool(t, false, q.Optional)
}
