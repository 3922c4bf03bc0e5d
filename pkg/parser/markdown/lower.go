// Package markdown lowers Markdown source into a lossless green tree.
// It uses goldmark to discover block structure and a single-pass
// tokenizer to classify every byte of the source; the resulting tree's
// tokens concatenate back to the exact input.
//
// This is a demonstration consumer of the green tree, not a conforming
// CommonMark parser: the fidelity target is lossless byte coverage with
// credible block structure, not spec-complete inline structure.
package markdown

import (
	"context"
	"fmt"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmparser "github.com/yuin/goldmark/parser"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/peamaeq/rowan/pkg/green"
)

// Parser lowers Markdown content into green trees. A Parser may be
// reused across documents; trees built by the same Parser share one
// interning cache, so identical subtrees across documents share
// allocations.
type Parser struct {
	md    goldmark.Markdown
	cache *green.Cache
}

// New creates a Markdown parser.
func New() *Parser {
	return &Parser{
		md:    goldmark.New(),
		cache: green.NewCache(),
	}
}

// Parse lowers content into a green tree rooted at a KindDocument node.
//
// The method:
//  1. Checks for context cancellation.
//  2. Tokenizes the content into a byte-covering span stream.
//  3. Parses the content with goldmark and extracts line-aligned
//     block spans.
//  4. Replays the span stream through a TreeBuilder, opening and
//     closing block nodes at span boundaries.
func (p *Parser) Parse(ctx context.Context, content []byte) (*green.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	spans := tokenize(content)

	reader := gmtext.NewReader(content)
	gmDoc := p.md.Parser().Parse(reader, gmparser.WithContext(gmparser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := &blockSpan{kind: KindDocument, start: 0, end: len(content)}
	lines := lineStarts(content)
	collectBlockSpans(gmDoc, doc, content, lines)

	b := green.NewTreeBuilderWithCache(p.cache)
	e := &emitter{builder: b, content: content, spans: spans}
	e.emitBlock(doc)
	return b.Finish(), nil
}

// blockSpan is a line-aligned byte range that becomes an interior node.
// Children are sorted, non-overlapping, and nested within the parent.
type blockSpan struct {
	kind     green.Kind
	start    int
	end      int
	children []*blockSpan
}

// lineStarts returns the byte offsets at which each line begins.
func lineStarts(content []byte) []int {
	starts := []int{0}
	for i, c := range content {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineStartAt returns the start offset of the line containing off.
func lineStartAt(lines []int, off int) int {
	idx := sort.Search(len(lines), func(i int) bool { return lines[i] > off })
	return lines[idx-1]
}

// lineEndAt returns the offset just past the line containing off,
// including its newline bytes.
func lineEndAt(lines []int, off, contentLen int) int {
	idx := sort.Search(len(lines), func(i int) bool { return lines[i] > off })
	if idx == len(lines) {
		return contentLen
	}
	return lines[idx]
}

// collectBlockSpans walks goldmark's block-level children of gmNode and
// appends their line-aligned spans to parent, recursing into nested
// blocks. Spans are clipped into the parent and de-overlapped so the
// emitter can rely on clean nesting.
func collectBlockSpans(gmNode ast.Node, parent *blockSpan, content []byte, lines []int) {
	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		if child.Type() != ast.TypeBlock {
			continue
		}
		kind, ok := blockKindOf(child)
		if !ok {
			continue
		}
		start, end := blockByteRange(child)
		if start < 0 || end <= start {
			continue
		}

		// Extend to whole lines so span boundaries never fall inside
		// a token, then clip into the parent.
		start = lineStartAt(lines, start)
		end = lineEndAt(lines, end-1, len(content))

		// A fenced code block's Lines() cover only the interior;
		// pull the fence lines themselves into the block.
		if _, fenced := child.(*ast.FencedCodeBlock); fenced {
			if start > 0 {
				start = lineStartAt(lines, start-1)
			}
			if end < len(content) {
				end = lineEndAt(lines, end, len(content))
			}
		}
		if start < parent.start {
			start = parent.start
		}
		if end > parent.end {
			end = parent.end
		}
		if prev := lastChild(parent); prev != nil && start < prev.end {
			start = prev.end
		}
		if start >= end {
			continue
		}

		sp := &blockSpan{kind: kind, start: start, end: end}
		parent.children = append(parent.children, sp)
		collectBlockSpans(child, sp, content, lines)
	}
}

func lastChild(sp *blockSpan) *blockSpan {
	if len(sp.children) == 0 {
		return nil
	}
	return sp.children[len(sp.children)-1]
}

// blockKindOf maps a goldmark block node to a green kind.
func blockKindOf(gmNode ast.Node) (green.Kind, bool) {
	switch gmNode.(type) {
	case *ast.Paragraph:
		return KindParagraph, true
	case *ast.Heading:
		return KindHeading, true
	case *ast.List:
		return KindList, true
	case *ast.ListItem:
		return KindListItem, true
	case *ast.Blockquote:
		return KindBlockquote, true
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return KindCodeBlock, true
	case *ast.ThematicBreak:
		return KindThematicBreak, true
	case *ast.HTMLBlock:
		return KindHTMLBlock, true
	case *ast.TextBlock:
		return KindParagraph, true
	default:
		return 0, false
	}
}

// blockByteRange returns the byte range covered by a block node's own
// lines, or by its descendants when the node is a container (List,
// ListItem) whose Lines() is empty. Returns (-1, -1) when no range can
// be derived.
func blockByteRange(gmNode ast.Node) (int, int) {
	if gmNode.Type() != ast.TypeBlock {
		return -1, -1
	}
	if lines := gmNode.Lines(); lines.Len() > 0 {
		return lines.At(0).Start, lines.At(lines.Len() - 1).Stop
	}

	start, end := -1, -1
	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		cs, ce := blockByteRange(child)
		if cs < 0 {
			continue
		}
		if start < 0 || cs < start {
			start = cs
		}
		if ce > end {
			end = ce
		}
	}
	return start, end
}

// emitter replays the token span stream through a TreeBuilder, opening
// a node for each block span and emitting the tokens that fall inside.
type emitter struct {
	builder *green.TreeBuilder
	content []byte
	spans   []span
	next    int // index of the next unemitted token span
}

func (e *emitter) emitBlock(sp *blockSpan) {
	e.builder.StartNode(sp.kind)
	childIdx := 0
	for e.next < len(e.spans) && e.spans[e.next].start < sp.end {
		if childIdx < len(sp.children) && e.spans[e.next].start >= sp.children[childIdx].start {
			e.emitBlock(sp.children[childIdx])
			childIdx++
			continue
		}
		tok := e.spans[e.next]
		e.builder.Token(tok.kind, string(e.content[tok.start:tok.end]))
		e.next++
	}
	e.builder.FinishNode()
}
