// Package treeview renders green syntax trees for terminal output.
package treeview

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for tree output.
type Styles struct {
	// Tree components.
	NodeKind  lipgloss.Style
	TokenKind lipgloss.Style
	Range     lipgloss.Style
	TokenText lipgloss.Style

	// Extra annotations (e.g., detected code block language).
	Annotation lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		NodeKind:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		TokenKind:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Range:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TokenText:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Annotation: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Italic(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:       lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		NodeKind:   plain,
		TokenKind:  plain,
		Range:      plain,
		TokenText:  plain,
		Annotation: plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
