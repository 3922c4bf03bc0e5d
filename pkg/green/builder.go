package green

import "fmt"

// Checkpoint marks a position in a TreeBuilder's child stream. A node
// started at a checkpoint retroactively wraps everything added since
// the checkpoint was taken.
type Checkpoint int

type parentFrame struct {
	kind  Kind
	first int // index into children where this node's children begin
}

// TreeBuilder assembles a green tree bottom-up. A parser drives it with
// StartNode/Token/FinishNode calls in document order; Checkpoint and
// StartNodeAt support wrapping already-emitted elements into a node
// once the parser knows what it has been looking at.
//
// Misuse (unbalanced Start/Finish, a stale checkpoint) is a programming
// error and panics.
type TreeBuilder struct {
	cache    *Cache
	parents  []parentFrame
	children []Element
}

// NewTreeBuilder creates a builder with a private interning cache.
func NewTreeBuilder() *TreeBuilder {
	return NewTreeBuilderWithCache(NewCache())
}

// NewTreeBuilderWithCache creates a builder that interns through the
// given cache. Sharing one cache across builders dedupes identical
// subtrees across documents and across edits.
func NewTreeBuilderWithCache(cache *Cache) *TreeBuilder {
	return &TreeBuilder{cache: cache}
}

// Token adds a token of the given kind and text to the current node.
func (b *TreeBuilder) Token(kind Kind, txt string) {
	b.children = append(b.children, b.cache.Token(kind, txt))
}

// StartNode begins a new node of the given kind; subsequent tokens and
// nodes become its children until the matching FinishNode.
func (b *TreeBuilder) StartNode(kind Kind) {
	b.parents = append(b.parents, parentFrame{kind: kind, first: len(b.children)})
}

// FinishNode completes the node most recently started with StartNode
// or StartNodeAt.
func (b *TreeBuilder) FinishNode() {
	if len(b.parents) == 0 {
		panic("green: FinishNode without matching StartNode")
	}
	frame := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	node := b.cache.Node(frame.kind, b.children[frame.first:])
	b.children = append(b.children[:frame.first], node)
}

// Checkpoint returns a marker for the current position. Pair it with
// StartNodeAt to decide the node structure after seeing more input:
//
//	cp := b.Checkpoint()
//	b.Token(kindNumber, "1")
//	// ... on seeing "+", wrap the number into a binary expression:
//	b.StartNodeAt(cp, kindBinExpr)
//	b.Token(kindPlus, "+")
//	b.Token(kindNumber, "2")
//	b.FinishNode()
func (b *TreeBuilder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.children))
}

// StartNodeAt begins a node of the given kind that contains everything
// added since cp was taken. The checkpoint must not have been crossed
// by an unfinished StartNode and must lie within the current node.
func (b *TreeBuilder) StartNodeAt(cp Checkpoint, kind Kind) {
	first := int(cp)
	if first > len(b.children) {
		panic(fmt.Sprintf("green: checkpoint %d is ahead of the child stream (%d)", first, len(b.children)))
	}
	if len(b.parents) > 0 && b.parents[len(b.parents)-1].first > first {
		panic(fmt.Sprintf("green: checkpoint %d is no longer valid; a node started after it is still open", first))
	}
	b.parents = append(b.parents, parentFrame{kind: kind, first: first})
}

// Finish completes tree building and returns the root node. Exactly one
// balanced StartNode/FinishNode pair must remain on the child stream.
func (b *TreeBuilder) Finish() *Node {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("green: Finish with %d unfinished node(s)", len(b.parents)))
	}
	if len(b.children) != 1 {
		panic(fmt.Sprintf("green: Finish expects exactly one root element, have %d", len(b.children)))
	}
	root, ok := b.children[0].(*Node)
	if !ok {
		panic("green: root element is a token, not a node")
	}
	return root
}
