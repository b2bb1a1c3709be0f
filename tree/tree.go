/*
Package tree provides the parse-tree node shape this library hands back
from a successful parse, plus a small set of query helpers for walking
and filtering it: Walk, Selector, and the IsA/IsAny/IsAll filter
combinators. It is adapted from the sibling-linked-list tree walker
found in parser-adjacent tooling, generalized to the slice-of-children
shape a Nonterminal or captured PatternTerminal match actually produces.
*/
package tree

// Node is a single parse-tree node. Name is the producing Nonterminal's
// or PatternTerminal capture group's name. StartOffset and EndOffset are
// byte offsets into the original input; SourceText is
// input[StartOffset:EndOffset]. Children is nil for a node with no
// sub-structure (a bare terminal match, or a pattern match with no
// capture groups).
type Node struct {
	Name                   string
	StartOffset, EndOffset int
	SourceText             string
	Children               []*Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// NodeVisitor is called once per node during a Walk. Returning false
// skips that node's children.
type NodeVisitor func(n *Node, level int) (descend bool)

// Walk performs a pre-order traversal of n and its descendants.
func Walk(n *Node, visitor NodeVisitor) {
	walk(n, 0, visitor)
}

func walk(n *Node, level int, visitor NodeVisitor) {
	if n == nil {
		return
	}
	if !visitor(n, level) {
		return
	}
	for _, c := range n.Children {
		walk(c, level+1, visitor)
	}
}

// Find returns every node in the subtree rooted at n (n included) that
// matches filter, in pre-order. If deep is false, matching nodes are not
// searched for further matches among their own descendants.
func Find(n *Node, filter NodeFilter, deep bool) []*Node {
	var result []*Node
	Walk(n, func(c *Node, _ int) bool {
		if filter(c) {
			result = append(result, c)
			return deep
		}
		return true
	})
	return result
}

// NodeFilter reports whether a node matches some predicate.
type NodeFilter func(n *Node) bool

// NodeExtractor maps a node to zero or more related nodes (its children,
// an ancestor, and so on).
type NodeExtractor func(n *Node) []*Node

// NodeSelector is a single stage of a Selector pipeline.
type NodeSelector func(n *Node) []*Node

// Selector composes a pipeline of selection stages, each applied to the
// output of the previous one, deduplicating the final result by node
// identity.
type Selector struct {
	stages []NodeSelector
}

// NewSelector returns an empty Selector; stages are added with Use,
// Filter, Extract, and Search.
func NewSelector() *Selector {
	return &Selector{}
}

// Use appends a raw selection stage.
func (s *Selector) Use(stage NodeSelector) *Selector {
	if stage != nil {
		s.stages = append(s.stages, stage)
	}
	return s
}

// Filter appends a stage that keeps a node unchanged if it matches, or
// drops it otherwise.
func (s *Selector) Filter(f NodeFilter) *Selector {
	return s.Use(func(n *Node) []*Node {
		if f(n) {
			return []*Node{n}
		}
		return nil
	})
}

// Extract appends a stage that replaces each node with whatever e
// extracts from it (its children, for instance).
func (s *Selector) Extract(e NodeExtractor) *Selector {
	return s.Use(func(n *Node) []*Node { return e(n) })
}

// Search appends a stage that replaces each node with every descendant
// (via Find) matching f.
func (s *Selector) Search(f NodeFilter, deep bool) *Selector {
	return s.Use(func(n *Node) []*Node { return Find(n, f, deep) })
}

// Apply runs the pipeline over input, deduplicating the result by node
// identity while preserving first-occurrence order.
func (s *Selector) Apply(input ...*Node) []*Node {
	result := make([]*Node, 0, len(input))
	seen := make(map[*Node]bool)

	for i, n := range input {
		if n == nil {
			continue
		}

		var selected []*Node
		if len(s.stages) > 0 {
			selected = runStages(input[i:i+1], s.stages)
		} else {
			selected = input[i : i+1]
		}

		for _, sn := range selected {
			if !seen[sn] {
				seen[sn] = true
				result = append(result, sn)
			}
		}
	}

	return result
}

func runStages(ns []*Node, stages []NodeSelector) []*Node {
	stage := stages[0]
	rest := stages[1:]

	var result []*Node
	for _, n := range ns {
		if len(rest) > 0 {
			result = append(result, runStages(stage(n), rest)...)
		} else {
			result = append(result, stage(n)...)
		}
	}
	return result
}

// Children extracts a node's direct children.
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

// IsNot negates a filter.
func IsNot(f NodeFilter) NodeFilter {
	return func(n *Node) bool { return !f(n) }
}

// IsAny reports whether any of fs matches.
func IsAny(fs ...NodeFilter) NodeFilter {
	return func(n *Node) bool {
		for _, f := range fs {
			if f(n) {
				return true
			}
		}
		return false
	}
}

// IsAll reports whether every one of fs matches.
func IsAll(fs ...NodeFilter) NodeFilter {
	return func(n *Node) bool {
		for _, f := range fs {
			if !f(n) {
				return false
			}
		}
		return true
	}
}

// IsA matches a node whose Name is one of names.
func IsA(names ...string) NodeFilter {
	return func(n *Node) bool {
		for _, name := range names {
			if n.Name == name {
				return true
			}
		}
		return false
	}
}

// IsText matches a leaf node whose SourceText is one of texts.
func IsText(texts ...string) NodeFilter {
	return func(n *Node) bool {
		if !n.IsLeaf() {
			return false
		}
		for _, text := range texts {
			if n.SourceText == text {
				return true
			}
		}
		return false
	}
}
