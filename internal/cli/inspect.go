package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/peamaeq/rowan/internal/configloader"
	"github.com/peamaeq/rowan/internal/logging"
	"github.com/peamaeq/rowan/internal/ui/treeview"
	"github.com/peamaeq/rowan/pkg/green"
	"github.com/peamaeq/rowan/pkg/langdetect"
	"github.com/peamaeq/rowan/pkg/parser/markdown"
)

const inspectLongDescription = `Parse a Markdown file and print its lossless syntax tree.

Each line shows one tree element with its kind and absolute byte range.
Token lines include a quoted preview of the token text. The tree covers
every byte of the input, so concatenating the tokens in order reproduces
the file exactly.

Examples:
  rowan inspect README.md               # Print the full tree
  rowan inspect --max-depth 3 doc.md    # Limit nesting depth
  rowan inspect --hide-tokens doc.md    # Structure only, no tokens
  cat doc.md | rowan inspect -          # Read from stdin`

type inspectFlags struct {
	maxDepth   int
	maxPreview int
	hideTokens bool
	noStats    bool
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the syntax tree of a Markdown file",
		Long:  inspectLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0,
		"maximum tree depth to print (0 = unlimited)")
	cmd.Flags().IntVar(&flags.maxPreview, "max-preview", 0,
		"maximum token text preview length (0 = auto)")
	cmd.Flags().BoolVar(&flags.hideTokens, "hide-tokens", false,
		"print interior nodes only")
	cmd.Flags().BoolVar(&flags.noStats, "no-stats", false,
		"suppress the summary line")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, flags *inspectFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if cfg.LogLevel != "" && !debug {
		logging.SetLevel(cfg.LogLevel)
	}

	content, err := readInput(cmd, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	language := langdetect.Detect(content)
	logger.Debug("input read",
		logging.FieldPath, path,
		logging.FieldTextLen, len(content),
		logging.FieldLanguage, language,
	)

	root, err := markdown.New().Parse(ctx, content)
	if err != nil {
		return errors.Join(errors.New("failed to parse input"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	if cfg.Color != "" && !cmd.Flags().Changed("color") {
		colorMode = cfg.Color
	}

	out := cmd.OutOrStdout()
	styles := treeview.NewStyles(treeview.IsColorEnabled(colorMode, out))

	logger.Debug("rendering tree",
		logging.FieldMaxDepth, cfg.MaxDepth,
		logging.FieldColor, colorMode,
	)

	renderer := treeview.NewRenderer(styles, treeview.Options{
		KindName:   markdown.KindName,
		Annotate:   annotateCodeBlock,
		MaxDepth:   cfg.MaxDepth,
		MaxPreview: previewWidth(cfg.MaxPreview, out),
		HideTokens: cfg.HideTokens,
	})
	if err := renderer.Render(out, root); err != nil {
		return fmt.Errorf("render tree: %w", err)
	}

	stats := treeview.Collect(root)
	logger.Debug("tree built",
		logging.FieldNodes, stats.Nodes,
		logging.FieldTokens, stats.Tokens,
		logging.FieldTextLen, stats.TextLen,
		logging.FieldDepth, stats.MaxDepth,
	)

	if !flags.noStats {
		if _, err := io.WriteString(out, styles.FormatSummaryOneLine(stats)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}

// resolveConfig merges file, environment, and flag configuration for inspect.
func resolveConfig(ctx context.Context, cmd *cobra.Command, flags *inspectFlags) (*configloader.Config, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	cliCfg := &configloader.Config{}
	if cmd.Flags().Changed("max-depth") {
		cliCfg.MaxDepth = flags.maxDepth
	}
	if cmd.Flags().Changed("max-preview") {
		cliCfg.MaxPreview = flags.maxPreview
	}
	if flags.hideTokens {
		cliCfg.HideTokens = true
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// readInput reads the named file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// previewWidth picks the token preview bound, sizing it to the terminal
// when the configuration leaves it unset.
func previewWidth(configured int, out io.Writer) int {
	if configured > 0 {
		return configured
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 20 {
			return width / 2
		}
	}
	return 0 // renderer default
}

// annotateCodeBlock guesses the language of fenced code blocks that
// carry no info string.
func annotateCodeBlock(n *green.Node) string {
	if n.Kind() != markdown.KindCodeBlock {
		return ""
	}

	var info, body strings.Builder
	view := n.Children()
	for {
		el, ok := view.Next()
		if !ok {
			break
		}
		tok, isToken := el.(*green.Token)
		if !isToken {
			continue
		}
		switch tok.Kind() {
		case markdown.KindCodeFenceInfo:
			info.WriteString(tok.Text())
		case markdown.KindText:
			body.WriteString(tok.Text())
			body.WriteString("\n")
		}
	}

	if strings.TrimSpace(info.String()) != "" {
		// An explicit info string wins; nothing to guess.
		return ""
	}

	language := langdetect.Detect([]byte(body.String()))
	if language == langdetect.Unknown {
		return ""
	}
	return language
}
