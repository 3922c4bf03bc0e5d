package green

import (
	"fmt"
	"unsafe"

	"github.com/peamaeq/rowan/pkg/text"
)

// Node is an immutable interior node of the green tree. It owns a kind
// tag, the total byte length of the text it covers, and an ordered,
// fixed-length sequence of child slots. Once NewNode returns, the node
// is frozen: all further reads are lock-free and safe from any number
// of goroutines, and any logical mutation allocates a new node.
type Node struct {
	kind    Kind
	textLen text.Size
	hash    uint64
	slots   []Child
}

// NewNode creates a node of the given kind from an exactly-sized
// sequence of children. Children are laid out contiguously: child i
// starts where child i-1 ends, and the node's total length is the sum
// of the children's lengths. Child lengths are trusted, not validated.
func NewNode(kind Kind, children []Element) *Node {
	slots := make([]Child, len(children))
	var total text.Size
	for i, el := range children {
		slots[i] = Child{offset: total, elem: el}
		total += el.TextLen()
	}
	// The node is exclusively owned until we return, so fixing up the
	// total length and hash here is safe; afterwards it never changes.
	return &Node{
		kind:    kind,
		textLen: total,
		hash:    hashNode(kind, slots),
		slots:   slots,
	}
}

// Kind returns the node's kind tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// TextLen returns the total byte length of the text this node covers.
func (n *Node) TextLen() text.Size {
	return n.textLen
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.slots)
}

// Children returns a fresh view over the node's children. Each call
// yields an independent traversal; exhausting one view does not affect
// another.
func (n *Node) Children() *Children {
	return &Children{slots: n.slots}
}

// ChildAtRange locates the unique child whose range fully contains r,
// where r is expressed relative to this node's start. It returns the
// child's index, its offset in this node, and the child element.
//
// ok is false when no single child covers r: the query straddles a
// child boundary, or lies outside this node entirely. That is expected
// control flow, not an error; callers stop the descent or re-query at
// the parent level.
//
// A zero-length query sitting exactly on the boundary between two
// children resolves to the preceding child.
func (n *Node) ChildAtRange(r text.Range) (idx int, offset text.Size, el Element, ok bool) {
	lo, hi := 0, len(n.slots)
	found := -1
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch n.slots[mid].Range().Ordering(r) {
		case -1:
			lo = mid + 1
		case 1:
			hi = mid
		default:
			found = mid
			lo = hi
		}
	}
	idx = found
	if found < 0 {
		// No overlapping child: fall back to the slot before the
		// insertion point. This attaches an empty query on a child
		// boundary to the preceding child.
		idx = lo - 1
		if idx < 0 {
			idx = 0
		}
	}
	if idx >= len(n.slots) || !n.slots[idx].Range().ContainsRange(r) {
		return 0, 0, nil, false
	}
	return idx, n.slots[idx].offset, n.slots[idx].elem, true
}

// ReplaceChild returns a new node of the same kind with the child at
// idx replaced by el. Every other child is shared by reference with the
// receiver; offsets and the total length are recomputed, so the
// replacement may have a different length than the original. The
// receiver is untouched and remains valid. Cost is O(NumChildren), not
// O(subtree size).
//
// Panics if idx is out of bounds.
func (n *Node) ReplaceChild(idx int, el Element) *Node {
	if idx < 0 || idx >= len(n.slots) {
		panic(fmt.Sprintf("green: ReplaceChild index %d out of range [0, %d)", idx, len(n.slots)))
	}
	children := make([]Element, len(n.slots))
	for i, slot := range n.slots {
		children[i] = slot.elem
	}
	children[idx] = el
	return NewNode(n.kind, children)
}

// Hash returns the node's structural hash, computed once at
// construction. Structurally equal nodes hash equal.
func (n *Node) Hash() uint64 {
	return n.hash
}

// Equal reports structural equality: same kind and element-wise equal
// children, regardless of allocation identity.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.hash != other.hash || n.kind != other.kind ||
		n.textLen != other.textLen || len(n.slots) != len(other.slots) {
		return false
	}
	for i := range n.slots {
		if !ElementsEqual(n.slots[i].elem, other.slots[i].elem) {
			return false
		}
	}
	return true
}

// Ptr returns the node's allocation identity. Distinct from structural
// equality: two structurally equal nodes may have different Ptr values.
// Use only as a key for identity-based memoization.
func (n *Node) Ptr() uintptr {
	return uintptr(unsafe.Pointer(n))
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(kind=%d, textLen=%d, children=%d)", n.kind, n.textLen, len(n.slots))
}

func (n *Node) element() {}
