package green

// maxCachedChildren bounds which nodes are interned. Deep in a tree
// most sharing happens among small nodes (punctuation, short
// expressions); caching only shallow nodes keeps the hit rate high
// without holding the whole tree alive in the cache.
const maxCachedChildren = 3

// Cache interns tokens and shallow nodes so that structurally identical
// subtrees produced across edits or across files share one allocation.
// Lookups key on the structural hash and verify candidates with full
// structural equality, so hash collisions cannot alias distinct
// subtrees.
//
// A Cache is not safe for concurrent use; give each builder goroutine
// its own. The nodes and tokens it returns are immutable and freely
// shareable.
type Cache struct {
	nodes  map[uint64][]*Node
	tokens map[uint64][]*Token
}

// NewCache creates an empty interning cache.
func NewCache() *Cache {
	return &Cache{
		nodes:  make(map[uint64][]*Node),
		tokens: make(map[uint64][]*Token),
	}
}

// Token returns an interned token with the given kind and text,
// allocating one only on a cache miss.
func (c *Cache) Token(kind Kind, txt string) *Token {
	h := hashToken(kind, txt)
	for _, cand := range c.tokens[h] {
		if cand.kind == kind && cand.text == txt {
			return cand
		}
	}
	tok := &Token{kind: kind, text: txt, hash: h}
	c.tokens[h] = append(c.tokens[h], tok)
	return tok
}

// Node returns a node of the given kind and children, reusing an
// interned structurally-equal node when one exists. Nodes with more
// than maxCachedChildren children are always freshly allocated.
func (c *Cache) Node(kind Kind, children []Element) *Node {
	if len(children) > maxCachedChildren {
		return NewNode(kind, children)
	}
	h := hashElements(kind, children)
	for _, cand := range c.nodes[h] {
		if nodeMatches(cand, kind, children) {
			return cand
		}
	}
	node := NewNode(kind, children)
	c.nodes[h] = append(c.nodes[h], node)
	return node
}

func nodeMatches(n *Node, kind Kind, children []Element) bool {
	if n.kind != kind || len(n.slots) != len(children) {
		return false
	}
	for i := range children {
		// Interned children are usually the same allocation, so the
		// pointer fast path inside ElementsEqual does the work.
		if !ElementsEqual(n.slots[i].elem, children[i]) {
			return false
		}
	}
	return true
}
