package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkdown/mdoutline/internal/configloader"
	"github.com/inkdown/mdoutline/internal/logging"
	"github.com/inkdown/mdoutline/internal/ui/pretty"
	"github.com/inkdown/mdoutline/pkg/config"
	"github.com/inkdown/mdoutline/pkg/mdscan"
	"github.com/inkdown/mdoutline/pkg/outline"
)

// ErrConfigLoad marks failures while resolving configuration.
var ErrConfigLoad = errors.New("failed to load configuration")

type outlineFlags struct {
	format   string
	maxDepth int
}

func newOutlineCommand() *cobra.Command {
	flags := &outlineFlags{}

	cmd := &cobra.Command{
		Use:   "outline <file>",
		Short: "Print the heading outline of a markdown file",
		Long:  outlineLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: pretty, text, json")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0,
		"limit tree depth (0 = unlimited)")

	return cmd
}

const outlineLongDescription = `Print the heading outline of a markdown file as a nested tree.

Each entry shows the heading text and its 1-based source line, the value
a navigation sidebar passes to the editor's scroll-to-line operation.
Headings inside fenced code blocks are not part of the outline.

Examples:
  mdoutline outline notes.md              # Styled tree
  mdoutline outline notes.md --format json
  mdoutline outline notes.md --max-depth 2`

func runOutline(cmd *cobra.Command, path string, flags *outlineFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = flags.maxDepth
	}
	if err := cfg.Validate(); err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	nodes := mdscan.Parse(string(source))
	forest := outline.Build(outline.FromNodes(nodes))

	logger.Debug("scanned file",
		logging.FieldPath, path,
		logging.FieldBytes, len(source),
		logging.FieldNodes, len(nodes),
		logging.FieldHeaders, countHeaders(forest),
	)

	return writeOutline(cmd, forest, cfg)
}

func writeOutline(cmd *cobra.Command, forest []*outline.Header, cfg config.Config) error {
	out := cmd.OutOrStdout()

	switch cfg.Format {
	case config.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if forest == nil {
			forest = []*outline.Header{}
		}
		if err := encoder.Encode(forest); err != nil {
			return fmt.Errorf("encode outline: %w", err)
		}
		return nil

	case config.FormatText:
		_, err := fmt.Fprint(out, pretty.RenderFlat(forest, cfg.MaxDepth))
		return err

	default: // pretty
		colorMode, _ := cmd.Flags().GetString("color")
		if colorMode == "" || colorMode == "auto" {
			colorMode = string(cfg.Color)
		}
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
		renderer := pretty.NewOutlineRenderer(styles, cfg.MaxDepth)
		_, err := fmt.Fprint(out, renderer.Render(forest))
		return err
	}
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return config.Config{}, errors.Join(ErrConfigLoad, err)
	}

	if result.LoadedFrom != "" {
		logging.Default().Debug("loaded configuration",
			logging.FieldConfig, result.LoadedFrom)
	}

	return result.Config, nil
}

func countHeaders(forest []*outline.Header) int {
	count := 0
	outline.Walk(forest, func(_ *outline.Header, _ int) { count++ })
	return count
}
