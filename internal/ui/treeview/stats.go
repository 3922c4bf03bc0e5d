package treeview

import (
	"fmt"
	"strings"

	"github.com/peamaeq/rowan/pkg/green"
	"github.com/peamaeq/rowan/pkg/text"
)

const (
	wordNode  = "node"
	wordNodes = "nodes"
)

// TreeStats summarizes a green tree.
type TreeStats struct {
	Nodes    int
	Tokens   int
	TextLen  text.Size
	MaxDepth int
}

// Collect walks the tree rooted at root and tallies its statistics.
func Collect(root *green.Node) TreeStats {
	stats := TreeStats{TextLen: root.TextLen()}
	collectInto(root, 1, &stats)
	return stats
}

func collectInto(node *green.Node, depth int, stats *TreeStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	view := node.Children()
	for {
		el, ok := view.Next()
		if !ok {
			return
		}
		if child, isNode := el.(*green.Node); isNode {
			collectInto(child, depth+1, stats)
		} else {
			stats.Tokens++
			if depth+1 > stats.MaxDepth {
				stats.MaxDepth = depth + 1
			}
		}
	}
}

// FormatSummaryOneLine formats tree statistics as a single line.
// Example: "23 nodes, 41 tokens, 512 bytes, depth 6".
func (s *Styles) FormatSummaryOneLine(stats TreeStats) string {
	nodeWord := wordNodes
	if stats.Nodes == 1 {
		nodeWord = wordNode
	}
	parts := []string{
		s.Bold.Render(fmt.Sprintf("%d %s", stats.Nodes, nodeWord)),
		fmt.Sprintf("%d tokens", stats.Tokens),
		fmt.Sprintf("%d bytes", stats.TextLen),
		s.Dim.Render(fmt.Sprintf("depth %d", stats.MaxDepth)),
	}
	return strings.Join(parts, ", ") + "\n"
}
