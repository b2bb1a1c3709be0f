package langdef

import (
	"github.com/rotemdan/grammar-composer/grammar"
	"github.com/rotemdan/grammar-composer/internal/ints"
)

// resolveOptionality computes, for every node in nodesByID (indexed by
// UniqueID), whether it can succeed while consuming zero input
// characters, and writes the verdict back onto each node's Optional
// field.
//
// StringTerminal and PatternTerminal nodes already carry their final
// answer in Optional by construction time (§4.D's terminal rules fold
// into the header flag Pattern and Possibly set), so only Nonterminal,
// Repetition, Sequence, and Choice nodes are actually computed here: a
// node with a forced-true header flag is trivially optional; otherwise
// it depends on its children (Body for Nonterminal/Repetition, every
// member for Sequence/Choice, by the "all members optional" rule §9
// preserves for Choice).
//
// The graph is cyclic, so the dependency graph among unresolved nodes is
// solved by propagation rather than direct recursion: each node tracks
// how many of its dependencies are still unknown, and resolving a
// dependency decrements its dependents' counts, settling a dependent the
// moment its count reaches zero (if no dependency resolved false first).
// Anything left unresolved once propagation stalls belongs to a
// cluster that depends only on itself, and is therefore optional by
// construction (§4.D step 4).
func resolveOptionality(nodesByID []*grammar.Node) {
	const (
		unknown = iota
		yes
		no
	)

	n := len(nodesByID)
	verdict := make([]int, n)
	pending := make([]int, n)
	dependents := make([][]int, n)
	unresolved := ints.NewSet()
	queue := ints.NewQueue()

	for id, node := range nodesByID {
		switch node.Kind {
		case grammar.StringTerminalKind, grammar.PatternTerminalKind:
			if node.Optional {
				verdict[id] = yes
			} else {
				verdict[id] = no
			}
			queue.Append(id)
			continue
		}

		if node.Optional {
			verdict[id] = yes
			queue.Append(id)
			continue
		}

		var childIDs []int
		switch node.Kind {
		case grammar.NonterminalKind, grammar.RepetitionKind:
			childIDs = []int{node.Body.UniqueID}
		case grammar.SequenceKind, grammar.ChoiceKind:
			childIDs = make([]int, len(node.Members))
			for i, m := range node.Members {
				childIDs[i] = m.UniqueID
			}
		}

		if len(childIDs) == 0 {
			// An empty Sequence or Choice trivially matches empty input.
			verdict[id] = yes
			queue.Append(id)
			continue
		}

		verdict[id] = unknown
		pending[id] = len(childIDs)
		unresolved.Add(id)
		for _, c := range childIDs {
			dependents[c] = append(dependents[c], id)
		}
	}

	for !queue.IsEmpty() {
		id := queue.Head()
		v := verdict[id]

		for _, p := range dependents[id] {
			if verdict[p] != unknown {
				continue
			}

			if v == no {
				verdict[p] = no
				unresolved.Remove(p)
				queue.Append(p)
				continue
			}

			pending[p]--
			if pending[p] == 0 {
				verdict[p] = yes
				unresolved.Remove(p)
				queue.Append(p)
			}
		}
	}

	for _, id := range unresolved.ToSlice() {
		verdict[id] = yes
	}

	for id, node := range nodesByID {
		switch node.Kind {
		case grammar.NonterminalKind, grammar.RepetitionKind, grammar.SequenceKind, grammar.ChoiceKind:
			node.Optional = verdict[id] == yes
		}
	}
}
