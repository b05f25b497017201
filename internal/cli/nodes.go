package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inkdown/mdoutline/internal/logging"
	"github.com/inkdown/mdoutline/internal/ui/pretty"
	"github.com/inkdown/mdoutline/pkg/config"
	"github.com/inkdown/mdoutline/pkg/langdetect"
	"github.com/inkdown/mdoutline/pkg/mdnode"
	"github.com/inkdown/mdoutline/pkg/mdscan"
)

type nodesFlags struct {
	format          string
	detectLanguages bool
}

func newNodesCommand() *cobra.Command {
	flags := &nodesFlags{}

	cmd := &cobra.Command{
		Use:   "nodes <file>",
		Short: "Dump the structural node sequence of a markdown file",
		Long:  nodesLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNodes(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: pretty, json")
	cmd.Flags().BoolVar(&flags.detectLanguages, "detect-languages", false,
		"guess the language of code blocks without a fence info string")

	return cmd
}

const nodesLongDescription = `Dump the flat node sequence produced by scanning a markdown file.

Every node carries its source range (offset, 1-based line and column for
both ends). The sequence is ordered by start offset and non-overlapping;
it is the raw input the outline is built from and is mainly useful for
inspecting how a note is being interpreted.

Examples:
  mdoutline nodes notes.md
  mdoutline nodes notes.md --format json
  mdoutline nodes notes.md --detect-languages`

func runNodes(cmd *cobra.Command, path string, flags *nodesFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("detect-languages") {
		cfg.DetectLanguages = flags.detectLanguages
	}
	if err := cfg.Validate(); err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	nodes := mdscan.Parse(string(source))

	if cfg.DetectLanguages {
		annotateLanguages(nodes, logger)
	}

	logger.Debug("scanned file",
		logging.FieldPath, path,
		logging.FieldBytes, len(source),
		logging.FieldNodes, len(nodes),
	)

	return writeNodes(cmd, nodes, cfg)
}

// annotateLanguages fills in a display language for code nodes whose
// fence declared none. Display-only: the scan result itself reports only
// what the fence said.
func annotateLanguages(nodes []mdnode.Node, logger *log.Logger) {
	for i := range nodes {
		if nodes[i].Kind != mdnode.NodeCode {
			continue
		}
		resolved := langdetect.Resolve(nodes[i].Language, nodes[i].Content)
		if resolved != nodes[i].Language {
			logger.Debug("resolved code block language",
				logging.FieldLine, nodes[i].Range.Start.Line,
				logging.FieldLanguage, resolved,
			)
			nodes[i].Language = resolved
		}
	}
}

// nodeJSON is the wire shape of a node for --format json.
type nodeJSON struct {
	Type     string          `json:"type"`
	Content  string          `json:"content"`
	Language string          `json:"language,omitempty"`
	Level    int             `json:"level,omitempty"`
	Text     string          `json:"text,omitempty"`
	Link     string          `json:"link,omitempty"`
	Range    sourceRangeJSON `json:"range"`
}

type sourceRangeJSON struct {
	Start positionJSON `json:"start"`
	End   positionJSON `json:"end"`
}

type positionJSON struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func writeNodes(cmd *cobra.Command, nodes []mdnode.Node, cfg config.Config) error {
	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatJSON {
		payload := make([]nodeJSON, 0, len(nodes))
		for _, n := range nodes {
			payload = append(payload, toNodeJSON(n))
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payload); err != nil {
			return fmt.Errorf("encode nodes: %w", err)
		}
		return nil
	}

	colorMode, _ := cmd.Flags().GetString("color")
	if colorMode == "" || colorMode == "auto" {
		colorMode = string(cfg.Color)
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	table := pretty.NewNodeTable(styles, out)
	_, err := fmt.Fprint(out, table.Render(nodes))
	return err
}

func toNodeJSON(n mdnode.Node) nodeJSON {
	return nodeJSON{
		Type:     n.Kind.String(),
		Content:  n.Content,
		Language: n.Language,
		Level:    n.Level,
		Text:     n.LinkText,
		Link:     n.Destination,
		Range: sourceRangeJSON{
			Start: positionJSON{
				Offset: n.Range.Start.Offset,
				Line:   n.Range.Start.Line,
				Column: n.Range.Start.Column,
			},
			End: positionJSON{
				Offset: n.Range.End.Offset,
				Line:   n.Range.End.Line,
				Column: n.Range.End.Column,
			},
		},
	}
}
