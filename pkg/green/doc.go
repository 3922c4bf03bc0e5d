// Package green provides the immutable, structurally-shared syntax tree
// ("green tree") at the core of rowan. It defines:
// - Token: an opaque leaf carrying a kind tag and its own text
// - Node: an immutable interior node with a kind, a total text length,
//   and an ordered sequence of child slots
// - Children: a re-iterable, double-ended view over a node's children
// - TreeBuilder and Cache: bottom-up tree assembly with subtree interning
//
// Nodes carry no absolute positions and no parent pointers; a child
// records only its byte offset relative to its parent's start. Because
// every node is deeply immutable once constructed, a subtree may be
// shared by reference across any number of trees and goroutines without
// synchronization. Edits never mutate: ReplaceChild returns a brand-new
// node whose untouched children are shared with the original, which is
// what makes rebuilding a large tree after a small edit cost
// O(depth x fan-out) rather than O(tree size).
package green
