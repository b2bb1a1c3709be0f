/*
Package grammarcomposer is the public facade: build a grammar from a set
of named productions with BuildGrammar, then parse input text against it
with Grammar.Parse. Everything else (the node model, the assembler, the
two static analyses, the interpreter) lives in internal-facing packages
under grammar, langdef, and parser; this file only wires them together
and re-exports the operator surface callers actually write grammars with.
*/
package grammarcomposer

import (
	"sort"

	"github.com/rotemdan/grammar-composer/grammar"
	"github.com/rotemdan/grammar-composer/langdef"
	"github.com/rotemdan/grammar-composer/parser"
	"github.com/rotemdan/grammar-composer/tree"
)

// Production is any value accepted where a grammar operator or
// BuildGrammar expects a production: a string, a []Production, a
// reference built with Ref, or an already-built node. A ProductionFunc is
// accepted only as a value of the map passed to BuildGrammar.
type Production = grammar.Production

// ProductionFunc is a production map entry invoked once, at build time,
// to obtain the actual production body. Use it to refer to a production
// declared elsewhere in the same map, in either direction.
type ProductionFunc = grammar.ProductionFunc

// Node is a parse-tree node: the name of the producing Nonterminal or
// pattern capture group, its span into the original input, and its
// children, if any.
type Node = tree.Node

// The operator surface productions are built from. See the grammar
// package for documentation of each.
var (
	Ref        = grammar.Ref
	Pattern    = grammar.Pattern
	Seq        = grammar.Seq
	AnyOf      = grammar.AnyOf
	BestOf     = grammar.BestOf
	ZeroOrMore = grammar.ZeroOrMore
	OneOrMore  = grammar.OneOrMore
	Possibly   = grammar.Possibly
	Cached     = grammar.Cached
	Uncached   = grammar.Uncached
)

// NodeFilter, NodeExtractor, and Selector are re-exported from package
// tree so a caller can query a Grammar.Parse result without importing
// tree directly. See package tree for documentation of each.
type (
	NodeFilter    = tree.NodeFilter
	NodeExtractor = tree.NodeExtractor
	Selector      = tree.Selector
)

var (
	Walk        = tree.Walk
	Find        = tree.Find
	NewSelector = tree.NewSelector
	Children    = tree.Children
	IsNot       = tree.IsNot
	IsAny       = tree.IsAny
	IsAll       = tree.IsAll
	IsA         = tree.IsA
	IsText      = tree.IsText
)

// Grammar is a fully built, parse-ready grammar. The zero value is not
// usable; obtain one from BuildGrammar.
type Grammar struct {
	g *grammar.Grammar
	p *parser.Parser
}

// BuildGrammar normalizes productions, resolves every cross-reference,
// runs optionality analysis and left-recursion detection, and returns a
// Grammar ready to Parse. startName must be a key of productions.
func BuildGrammar(productions map[string]Production, startName string) (*Grammar, error) {
	g, e := langdef.Build(productions, startName)
	if e != nil {
		return nil, e
	}

	return &Grammar{g: g, p: parser.New(g)}, nil
}

// Parse runs input through the grammar and returns the top-level
// parse-tree nodes (the start production's own wrapper node is not
// included; its children are). Parsing either consumes all of input or
// fails; there is no partial result and no error recovery.
func (gr *Grammar) Parse(input string) ([]*Node, error) {
	return gr.p.Parse(input)
}

// MaxElementID is one past the largest UniqueID assigned to any node
// reachable from any declared production.
func (gr *Grammar) MaxElementID() int {
	return gr.g.MaxElementID
}

// Nonterminals lists every declared production's name, sorted.
func (gr *Grammar) Nonterminals() []string {
	names := make([]string, 0, len(gr.g.Productions))
	for name := range gr.g.Productions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
