package wordpool

import (
	"slices"
)

// Node is one letter position in the tree. A terminal node may still have
// children: "cat" and "cats" share the path c-a-t.
type Node struct {
	children [AlphabetSize]*Node
	terminal bool
}

// Child returns the node reached by following letter c, or nil. A line
// terminator never has a child; any other character outside a to z panics.
func (n *Node) Child(c byte) *Node {
	i := LetterIndex(c)
	if i == Terminator {
		return nil
	}
	return n.children[i]
}

// Terminal reports whether the path to this node spells a stored word.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Finder is the read side of a built tree.
type Finder interface {
	Contains(word string) bool
	HasPrefix(prefix string) bool
	Words() []string
	Enumerate(fn EnumFn)
	Solve(letters string) ([]string, error)
	SolveFunc(letters string, fn func(word string)) error
	NumWords() int
	NumNodes() int
}

// WordTree is an immutable prefix tree over the lowercase alphabet.
type WordTree struct {
	root     *Node
	numWords int
	numNodes int
}

var _ Finder = (*WordTree)(nil)

// New builds a tree holding exactly the distinct words in words.
//
// Every word is validated before anything is built; the first word containing a
// character outside a to z fails the whole build with an *InvalidCharacterError.
// The empty string is accepted and marks the root terminal, which no game has a
// use for.
func New(words []string, opts ...Option) (*WordTree, error) {
	for _, word := range words {
		if err := Validate(word); err != nil {
			return nil, err
		}
	}

	o := options{parallelism: 1}
	for _, opt := range opts {
		opt(&o)
	}

	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	tree := &WordTree{numWords: len(sorted)}
	tree.root = buildRoot(sorted, &o)
	tree.numNodes = countNodes(tree.root)
	return tree, nil
}

// MustNew is like New but panics if the words cannot be built.
func MustNew(words []string, opts ...Option) *WordTree {
	tree, err := New(words, opts...)
	if err != nil {
		panic(err)
	}
	return tree
}

// Root returns the root node.
func (t *WordTree) Root() *Node {
	return t.root
}

// NumWords returns the number of distinct words stored.
func (t *WordTree) NumWords() int {
	return t.numWords
}

// NumNodes returns the number of nodes in the tree, the root included.
func (t *WordTree) NumNodes() int {
	return t.numNodes
}

// Contains reports whether word is stored. Words with characters outside the
// alphabet are never stored.
func (t *WordTree) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.terminal
}

// HasPrefix reports whether some stored word begins with prefix.
func (t *WordTree) HasPrefix(prefix string) bool {
	return t.find(prefix) != nil
}

func (t *WordTree) find(s string) *Node {
	if Validate(s) != nil {
		return nil
	}
	node := t.root
	for i := 0; i < len(s) && node != nil; i++ {
		node = node.Child(s[i])
	}
	return node
}

func countNodes(n *Node) int {
	count := 1
	for _, child := range n.children {
		if child != nil {
			count += countNodes(child)
		}
	}
	return count
}
