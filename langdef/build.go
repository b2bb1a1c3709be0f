/*
Package langdef turns a user-supplied set of productions into a
grammar.Grammar: it normalizes and wraps each production into a
Nonterminal, resolves every cross-reference in place, assigns the
contiguous UniqueID range, and runs the two static analyses (optionality
and left-recursion) before handing back an immutable, parse-ready graph.
*/
package langdef

import (
	"sort"

	"github.com/rotemdan/grammar-composer/grammar"
)

// Build assembles productions into a Grammar rooted at startName.
//
// Each value in productions is either a grammar.ProductionFunc (invoked
// once to obtain the actual body, which lets a production refer to
// others regardless of declaration order) or a grammar.Production value
// used directly. The map key becomes the resulting Nonterminal's Name
// and the name other productions address with grammar.Ref.
func Build(productions map[string]grammar.Production, startName string) (*grammar.Grammar, error) {
	b := &builder{
		required: make(map[string]*grammar.Node, len(productions)),
		optional: make(map[string]*grammar.Node, len(productions)),
		missing:  make(map[string]bool),
	}

	names := make([]string, 0, len(productions))
	for name := range productions {
		names = append(names, name)
	}
	sort.Strings(names)

	// Step 1: inventory. Step 2: twin optional variant.
	for _, name := range names {
		raw := productions[name]
		if fn, ok := raw.(grammar.ProductionFunc); ok {
			raw = fn()
		}

		required := &grammar.Node{
			Kind:     grammar.NonterminalKind,
			Name:     name,
			Body:     grammar.Normalize(raw),
			UniqueID: grammar.NoID,
		}
		optional := *required
		optional.Optional = true

		b.required[name] = required
		b.optional[name] = &optional
	}

	if _, ok := b.required[startName]; !ok {
		return nil, missingStartError(startName)
	}

	// Step 3: reference resolution, in the same deterministic order.
	for _, name := range names {
		b.prepare(b.required[name])
	}

	if len(b.missing) > 0 {
		missingNames := make([]string, 0, len(b.missing))
		for name := range b.missing {
			missingNames = append(missingNames, name)
		}
		sort.Strings(missingNames)
		return nil, unresolvedReferenceError(missingNames)
	}

	// Step 4: analysis.
	resolveOptionality(b.nodesByID)

	if e := detectLeftRecursion(b.required, names); e != nil {
		return nil, e
	}

	// Step 5: package.
	return &grammar.Grammar{
		Root:         b.required[startName],
		Productions:  b.required,
		MaxElementID: len(b.nodesByID),
	}, nil
}

type builder struct {
	required map[string]*grammar.Node
	optional map[string]*grammar.Node
	missing  map[string]bool
	nodesByID []*grammar.Node
}

func (b *builder) nextID(n *grammar.Node) int {
	id := len(b.nodesByID)
	b.nodesByID = append(b.nodesByID, n)
	n.UniqueID = id
	return id
}

// clonePattern copies a PatternTerminal node's header and Pattern handle
// into a fresh Node, giving this usage site an identity independent of
// any other place the same *grammar.Node value might appear in the graph.
func clonePattern(n *grammar.Node) *grammar.Node {
	c := *n
	c.UniqueID = grammar.NoID
	return &c
}

// prepare resolves a Nonterminal's body in place and assigns it a
// UniqueID, skipping nonterminals it has already visited (cycles are
// expected: the grammar graph is not a tree).
func (b *builder) prepare(nt *grammar.Node) {
	if nt.UniqueID != grammar.NoID {
		return
	}
	b.nextID(nt)

	if nt.Body.Kind == grammar.PatternTerminalKind {
		// Each usage site of a pattern terminal gets its own node
		// identity; the production body position additionally takes the
		// production's name (§4.C step 3).
		body := clonePattern(nt.Body)
		body.Name = nt.Name
		b.nextID(body)
		nt.Body = body
		return
	}

	nt.Body = b.resolve(nt.Body)
}

// resolve returns the node that should replace n in its parent's slot.
// For a NonterminalReference this is the required or optional twin named
// by the reference; for everything else it is n itself, visited in place.
func (b *builder) resolve(n *grammar.Node) *grammar.Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case grammar.ReferenceKind:
		twins := b.required
		if n.Optional {
			twins = b.optional
		}
		twin, ok := twins[n.RefName]
		if !ok {
			b.missing[n.RefName] = true
			return n
		}
		b.prepare(twin)
		return twin

	case grammar.PatternTerminalKind:
		c := clonePattern(n)
		b.nextID(c)
		return c
	}

	if n.UniqueID != grammar.NoID {
		return n
	}
	b.nextID(n)

	switch n.Kind {
	case grammar.SequenceKind, grammar.ChoiceKind:
		for i, m := range n.Members {
			n.Members[i] = b.resolve(m)
		}
	case grammar.RepetitionKind:
		n.Body = b.resolve(n.Body)
	}

	return n
}
