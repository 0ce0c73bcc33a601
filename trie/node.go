package trie

// Node is one position along the rune path of one or more keys.
type Node[T any] struct {
	children map[rune]*Node[T]
	// value is nil unless an inserted key ends at this node.
	value *T
}

func newNode[T any]() *Node[T] {
	return &Node[T]{children: make(map[rune]*Node[T])}
}

// Terminal reports whether a key ends at this node.
func (n *Node[T]) Terminal() bool {
	return n.value != nil
}

// child returns the child for r, creating it when absent.
func (n *Node[T]) child(r rune) *Node[T] {
	next, ok := n.children[r]
	if !ok {
		next = newNode[T]()
		n.children[r] = next
	}
	return next
}

// lookup walks key from n and returns the node it lands on or nil.
func (n *Node[T]) lookup(key string) *Node[T] {
	node := n
	for _, r := range key {
		next, ok := node.children[r]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}
