// Package cli provides the Cobra command structure for mdoutline.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkdown/mdoutline/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdoutline command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdoutline",
		Short: "Inspect the structure and outline of markdown notes",
		Long: `mdoutline scans markdown note files into precisely-located structural
nodes (headers, code fences, links, emphasis, lists, text) and assembles
the headers into the nested outline used for in-document navigation.

The scanner is code-fence aware: a heading-shaped line inside a fenced
code block is captured as code content, never as a heading.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newOutlineCommand())
	rootCmd.AddCommand(newNodesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
