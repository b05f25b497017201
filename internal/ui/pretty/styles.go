// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Outline components
	HeaderText lipgloss.Style
	RootHeader lipgloss.Style
	Branch     lipgloss.Style
	LineNumber lipgloss.Style
	HeaderID   lipgloss.Style

	// Node table components
	TableHeader lipgloss.Style
	NodeKind    lipgloss.Style
	Location    lipgloss.Style
	Content     lipgloss.Style
	Language    lipgloss.Style

	// Misc
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
		HeaderText: lipgloss.NewStyle(),
		RootHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Branch:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		HeaderID:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		NodeKind:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Location:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Content:     lipgloss.NewStyle(),
		Language:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no colors or text decoration.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		HeaderText: plain,
		RootHeader: plain,
		Branch:     plain,
		LineNumber: plain,
		HeaderID:   plain,

		TableHeader: plain,
		NodeKind:    plain,
		Location:    plain,
		Content:     plain,
		Language:    plain,

		Dim:  plain,
		Bold: plain,
	}
}

// IsColorEnabled determines whether color output should be used for the
// given mode ("auto", "always", "never") and writer.
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
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
