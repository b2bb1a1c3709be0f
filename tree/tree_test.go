package tree

import "testing"

func build() *Node {
	leafA := &Node{Name: "word", StartOffset: 0, EndOffset: 3, SourceText: "foo"}
	leafB := &Node{Name: "word", StartOffset: 4, EndOffset: 7, SourceText: "bar"}
	leafC := &Node{Name: "number", StartOffset: 8, EndOffset: 9, SourceText: "1"}
	inner := &Node{Name: "pair", StartOffset: 0, EndOffset: 7, Children: []*Node{leafA, leafB}}
	return &Node{Name: "root", StartOffset: 0, EndOffset: 9, Children: []*Node{inner, leafC}}
}

func TestIsLeaf(t *testing.T) {
	root := build()
	if root.IsLeaf() {
		t.Fatalf("root has children, should not be a leaf")
	}
	if !root.Children[1].IsLeaf() {
		t.Fatalf("expecting leafC to be a leaf")
	}
}

func TestWalkPreOrder(t *testing.T) {
	root := build()
	var names []string
	Walk(root, func(n *Node, level int) bool {
		names = append(names, n.Name)
		return true
	})

	expected := []string{"root", "pair", "word", "word", "number"}
	if len(names) != len(expected) {
		t.Fatalf("expecting %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("expecting %v, got %v", expected, names)
		}
	}
}

func TestWalkSkipsChildrenWhenToldTo(t *testing.T) {
	root := build()
	var visited []string
	Walk(root, func(n *Node, level int) bool {
		visited = append(visited, n.Name)
		return n.Name != "pair"
	})

	for _, name := range visited {
		if name == "word" {
			t.Fatalf("expecting descent into 'pair' to be skipped, but visited a 'word' child")
		}
	}
}

func TestFindShallow(t *testing.T) {
	root := build()
	found := Find(root, IsA("word"), false)
	if len(found) != 2 {
		t.Fatalf("expecting 2 matches, got %d", len(found))
	}
}

func TestSelectorFilterExtractSearch(t *testing.T) {
	root := build()

	words := NewSelector().
		Extract(Children).
		Filter(IsA("pair")).
		Search(IsA("word"), true).
		Apply(root)

	if len(words) != 2 {
		t.Fatalf("expecting 2 words, got %d", len(words))
	}
	for _, w := range words {
		if w.Name != "word" {
			t.Fatalf("expecting only 'word' nodes, got %q", w.Name)
		}
	}
}

func TestSelectorDedupesByIdentity(t *testing.T) {
	root := build()
	s := NewSelector().Filter(func(n *Node) bool { return true })
	result := s.Apply(root, root, root.Children[0])
	if len(result) != 2 {
		t.Fatalf("expecting deduped result of length 2, got %d", len(result))
	}
}

func TestIsAnyIsAllIsNot(t *testing.T) {
	root := build()
	number := root.Children[1]

	if !IsAny(IsA("word"), IsA("number"))(number) {
		t.Fatalf("expecting IsAny to match 'number'")
	}
	if IsAll(IsA("number"), IsText("1"))(root.Children[0]) {
		t.Fatalf("expecting IsAll to reject 'pair'")
	}
	if !IsNot(IsA("word"))(number) {
		t.Fatalf("expecting IsNot(IsA(word)) to match 'number'")
	}
}

func TestIsText(t *testing.T) {
	root := build()
	number := root.Children[1]
	if !IsText("1")(number) {
		t.Fatalf("expecting IsText(\"1\") to match the leaf with SourceText \"1\"")
	}
	if IsText("1")(root) {
		t.Fatalf("expecting IsText to reject a non-leaf node")
	}
}
