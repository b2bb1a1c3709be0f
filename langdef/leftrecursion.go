package langdef

import (
	"github.com/rotemdan/grammar-composer/grammar"
	"github.com/rotemdan/grammar-composer/internal/ints"
)

// detectLeftRecursion walks every declared production along its
// leftmost-reachable edges, failing as soon as a Nonterminal is
// re-entered while still on the descent path. names fixes the order
// productions are checked in, only so that which cycle gets reported
// first is deterministic.
func detectLeftRecursion(productions map[string]*grammar.Node, names []string) error {
	onPath := ints.NewSet()

	var visit func(n *grammar.Node) error
	visit = func(n *grammar.Node) error {
		if n == nil {
			return nil
		}

		switch n.Kind {
		case grammar.NonterminalKind:
			if onPath.Contains(n.UniqueID) {
				return recursionError(n.Name)
			}
			onPath.Add(n.UniqueID)
			e := visit(n.Body)
			onPath.Remove(n.UniqueID)
			return e

		case grammar.RepetitionKind:
			return visit(n.Body)

		case grammar.SequenceKind:
			for _, m := range n.Members {
				if e := visit(m); e != nil {
					return e
				}
				if !m.Optional {
					break
				}
			}
			return nil

		case grammar.ChoiceKind:
			for _, m := range n.Members {
				if e := visit(m); e != nil {
					return e
				}
			}
			return nil

		default:
			return nil
		}
	}

	for _, name := range names {
		if e := visit(productions[name]); e != nil {
			return e
		}
	}
	return nil
}
