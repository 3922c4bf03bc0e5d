package treeview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peamaeq/rowan/pkg/green"
	"github.com/peamaeq/rowan/pkg/text"
)

const (
	defaultMaxPreview = 40
	indentStep        = "  "
)

// Options configures a Renderer.
type Options struct {
	// KindName maps green kinds to display names. Required.
	KindName func(green.Kind) string

	// Annotate, when non-nil, returns an extra note to print after a
	// node's header line; empty means no note.
	Annotate func(*green.Node) string

	// MaxDepth limits how deep the tree is printed; 0 means no limit.
	MaxDepth int

	// MaxPreview bounds the printed token text length in bytes;
	// 0 selects a default.
	MaxPreview int

	// HideTokens prints interior nodes only.
	HideTokens bool
}

// Renderer prints a green tree one element per line, nodes and tokens
// labelled with kind and absolute range. Absolute offsets are computed
// transiently during the walk; green nodes themselves carry none.
type Renderer struct {
	styles *Styles
	opts   Options
}

// NewRenderer creates a Renderer with the given styles and options.
func NewRenderer(styles *Styles, opts Options) *Renderer {
	if opts.KindName == nil {
		opts.KindName = func(k green.Kind) string { return strconv.Itoa(int(k)) }
	}
	if opts.MaxPreview <= 0 {
		opts.MaxPreview = defaultMaxPreview
	}
	return &Renderer{styles: styles, opts: opts}
}

// Render writes the tree rooted at root to w.
func (r *Renderer) Render(w io.Writer, root *green.Node) error {
	return r.renderNode(w, root, 0, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *green.Node, offset text.Size, depth int) error {
	header := fmt.Sprintf("%s%s%s",
		strings.Repeat(indentStep, depth),
		r.styles.NodeKind.Render(r.opts.KindName(node.Kind())),
		r.styles.Range.Render("@"+text.At(offset, node.TextLen()).String()),
	)
	if r.opts.Annotate != nil {
		if note := r.opts.Annotate(node); note != "" {
			header += " " + r.styles.Annotation.Render("("+note+")")
		}
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	if r.opts.MaxDepth > 0 && depth+1 >= r.opts.MaxDepth && node.NumChildren() > 0 {
		_, err := fmt.Fprintln(w,
			strings.Repeat(indentStep, depth+1)+r.styles.Dim.Render("..."))
		return err
	}

	view := node.Children()
	for {
		slot, ok := view.NextSlot()
		if !ok {
			return nil
		}
		childOffset := offset + slot.Offset()
		switch {
		case slotNode(slot) != nil:
			if err := r.renderNode(w, slotNode(slot), childOffset, depth+1); err != nil {
				return err
			}
		case !r.opts.HideTokens:
			if err := r.renderToken(w, slot, childOffset, depth+1); err != nil {
				return err
			}
		}
	}
}

func (r *Renderer) renderToken(w io.Writer, slot green.Child, offset text.Size, depth int) error {
	tok, _ := slot.AsToken()
	_, err := fmt.Fprintf(w, "%s%s%s %s\n",
		strings.Repeat(indentStep, depth),
		r.styles.TokenKind.Render(r.opts.KindName(tok.Kind())),
		r.styles.Range.Render("@"+text.At(offset, tok.TextLen()).String()),
		r.styles.TokenText.Render(r.preview(tok.Text())),
	)
	return err
}

func slotNode(slot green.Child) *green.Node {
	n, ok := slot.AsNode()
	if !ok {
		return nil
	}
	return n
}

// preview quotes token text, eliding the middle of long tokens.
func (r *Renderer) preview(s string) string {
	quoted := strconv.Quote(s)
	if len(quoted) <= r.opts.MaxPreview {
		return quoted
	}
	keep := (r.opts.MaxPreview - 5) / 2
	if keep < 1 {
		keep = 1
	}
	return quoted[:keep] + "..." + quoted[len(quoted)-keep:]
}
