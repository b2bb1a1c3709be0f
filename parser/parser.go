/*
Package parser implements the top-down recursive-descent interpreter
that executes a prepared grammar.Grammar against an input string: one
dispatch function per node variant, an optional per-(offset, node)
packrat cache, and farthest-failure tracking for error diagnostics.

Parsing is stateless between calls: New builds a Parser bound to an
immutable Grammar, and every call to Parse allocates its own cache and
best-failed record, discarded on return. Two goroutines may call Parse
on the same Parser concurrently.
*/
package parser

import (
	"github.com/rotemdan/grammar-composer/grammar"
	"github.com/rotemdan/grammar-composer/tree"
)

// Parser executes a single prepared Grammar.
type Parser struct {
	grammar *grammar.Grammar
}

// New binds a Parser to g. g must have come out of langdef.Build: its
// reference resolution, optionality analysis, and left-recursion check
// must already have run.
func New(g *grammar.Grammar) *Parser {
	return &Parser{grammar: g}
}

// Parse runs the parser against input from offset 0 and returns the
// top-level children of the start production's parse-tree node (the
// root wrapper itself is not returned). Parsing either consumes all of
// input or fails; there is no partial result.
func (p *Parser) Parse(input string) ([]*tree.Node, error) {
	s := newState(input)
	result := s.tryParse(p.grammar.Root, 0)

	// A nil result at the root is ordinarily a failure, but if the root
	// is itself optional, the same rule matchSequence applies to a
	// failing optional member applies here: treat it as a zero-length
	// match rather than a hard failure, and let the usual full-input
	// check decide the outcome.
	endOffset := 0
	var nodes []*tree.Node
	if result != nil {
		endOffset = result.endOffset
		nodes = result.nodes
	} else if !p.grammar.Root.Optional {
		return nil, parseFailedError(s, input, 0)
	}

	if endOffset != len(input) {
		return nil, parseFailedError(s, input, endOffset)
	}

	if nodes == nil {
		return nil, nil
	}
	return nodes[0].Children, nil
}

// parseResult is the internal, not-yet-wrapped result of matching a
// single node: where the match ended, and the parse-tree nodes (if any)
// it contributed. nodes is nil when the match produced no tree
// contribution: bare string terminals, capture-less pattern matches, and
// sequences/repetitions whose members produced nothing of their own.
type parseResult struct {
	endOffset int
	nodes     []*tree.Node
}

// state is a single Parse invocation's working memory.
type state struct {
	input string

	// cache holds one map per input offset, created lazily, from a
	// node's UniqueID to its memoized result at that offset. Only
	// consulted for nodes with Cached == grammar.CacheEnabled.
	cache []map[int]*parseResult

	bestFailedOffset    int
	bestFailedTerminals []*grammar.Node
}

func newState(input string) *state {
	return &state{
		input:            input,
		cache:            make([]map[int]*parseResult, len(input)+1),
		bestFailedOffset: -1,
	}
}

// tryParse dispatches to the interpreter for n.Kind, consulting or
// populating the packrat cache first when n opts into it.
func (s *state) tryParse(n *grammar.Node, offset int) *parseResult {
	if n.Cached != grammar.CacheEnabled {
		return s.interpret(n, offset)
	}

	slot := s.cache[offset]
	if slot != nil {
		if result, ok := slot[n.UniqueID]; ok {
			return result
		}
	}

	result := s.interpret(n, offset)
	if slot == nil {
		slot = make(map[int]*parseResult)
		s.cache[offset] = slot
	}
	slot[n.UniqueID] = result
	return result
}

func (s *state) interpret(n *grammar.Node, offset int) *parseResult {
	switch n.Kind {
	case grammar.StringTerminalKind:
		return s.matchStringTerminal(n, offset)
	case grammar.PatternTerminalKind:
		return s.matchPatternTerminal(n, offset)
	case grammar.NonterminalKind:
		return s.matchNonterminal(n, offset)
	case grammar.SequenceKind:
		return s.matchSequence(n, offset)
	case grammar.RepetitionKind:
		return s.matchRepetition(n, offset)
	case grammar.ChoiceKind:
		return s.matchChoice(n, offset)
	default:
		panic("parser: node with unresolved or unknown kind reached the interpreter")
	}
}

func (s *state) matchStringTerminal(n *grammar.Node, offset int) *parseResult {
	end := offset + len(n.Literal)
	if end <= len(s.input) && s.input[offset:end] == n.Literal {
		return &parseResult{endOffset: end}
	}

	s.recordFailure(n, offset)
	return nil
}

func (s *state) matchPatternTerminal(n *grammar.Node, offset int) *parseResult {
	m, ok := n.Pattern.MatchAt(s.input, offset)
	if !ok {
		s.recordFailure(n, offset)
		return nil
	}

	if len(m.Groups) == 0 {
		return &parseResult{endOffset: m.End}
	}

	var children []*tree.Node
	for _, g := range m.Groups {
		if !g.Matched {
			continue
		}
		children = append(children, &tree.Node{
			Name:        g.Name,
			StartOffset: g.Start,
			EndOffset:   g.End,
			SourceText:  s.input[g.Start:g.End],
		})
	}

	node := &tree.Node{
		Name:        n.Name,
		StartOffset: m.Start,
		EndOffset:   m.End,
		SourceText:  s.input[m.Start:m.End],
		Children:    children,
	}
	return &parseResult{endOffset: m.End, nodes: []*tree.Node{node}}
}

func (s *state) matchNonterminal(n *grammar.Node, offset int) *parseResult {
	sub := s.tryParse(n.Body, offset)
	if sub == nil {
		return nil
	}

	node := &tree.Node{
		Name:        n.Name,
		StartOffset: offset,
		EndOffset:   sub.endOffset,
		SourceText:  s.input[offset:sub.endOffset],
		Children:    sub.nodes,
	}
	return &parseResult{endOffset: sub.endOffset, nodes: []*tree.Node{node}}
}

func (s *state) matchSequence(n *grammar.Node, offset int) *parseResult {
	cursor := offset
	var nodes []*tree.Node

	for _, member := range n.Members {
		sub := s.tryParse(member, cursor)
		if sub == nil {
			if member.Optional {
				continue
			}
			return nil
		}

		cursor = sub.endOffset
		nodes = append(nodes, sub.nodes...)
	}

	return &parseResult{endOffset: cursor, nodes: nodes}
}

func (s *state) matchRepetition(n *grammar.Node, offset int) *parseResult {
	cursor := offset
	var nodes []*tree.Node

	for {
		sub := s.tryParse(n.Body, cursor)
		if sub == nil || sub.endOffset == cursor {
			break
		}

		cursor = sub.endOffset
		nodes = append(nodes, sub.nodes...)
	}

	if cursor == offset {
		return nil
	}
	return &parseResult{endOffset: cursor, nodes: nodes}
}

func (s *state) matchChoice(n *grammar.Node, offset int) *parseResult {
	if !n.Exhaustive {
		for _, member := range n.Members {
			if sub := s.tryParse(member, offset); sub != nil {
				return sub
			}
		}
		return nil
	}

	var best *parseResult
	for _, member := range n.Members {
		sub := s.tryParse(member, offset)
		if sub == nil {
			continue
		}
		if best == nil || sub.endOffset > best.endOffset {
			best = sub
		}
	}
	return best
}

// recordFailure updates the farthest-failure record. Only terminals call
// this; a Nonterminal's own failure is never reported, only the terminal
// whose mismatch ultimately caused it (the usual PEG convention).
func (s *state) recordFailure(n *grammar.Node, offset int) {
	if offset > s.bestFailedOffset {
		s.bestFailedOffset = offset
		s.bestFailedTerminals = []*grammar.Node{n}
	} else if offset == s.bestFailedOffset {
		s.bestFailedTerminals = append(s.bestFailedTerminals, n)
	}
}
