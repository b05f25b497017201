package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/inkdown/mdoutline/pkg/mdnode"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// Fixed column widths for the node table; the content column takes the rest.
const (
	kindColWidth     = 8
	locationColWidth = 14
	detailColWidth   = 12
)

// NodeTable renders a scanned node sequence as a column-aligned listing.
type NodeTable struct {
	styles *Styles
	width  int
}

// NewNodeTable creates a node table renderer sized for the given writer.
func NewNodeTable(styles *Styles, writer io.Writer) *NodeTable {
	return &NodeTable{styles: styles, width: terminalWidth(writer)}
}

// Render returns the table rendering of the node sequence.
func (t *NodeTable) Render(nodes []mdnode.Node) string {
	var sb strings.Builder

	sb.WriteString(t.styles.TableHeader.Render(fmt.Sprintf(
		"%-*s %-*s %-*s %s",
		kindColWidth, "KIND",
		locationColWidth, "LOCATION",
		detailColWidth, "DETAIL",
		"CONTENT",
	)))
	sb.WriteString("\n")

	contentWidth := t.width - kindColWidth - locationColWidth - detailColWidth - 3
	if contentWidth < 16 {
		contentWidth = 16
	}

	for _, n := range nodes {
		location := fmt.Sprintf("%d:%d-%d:%d",
			n.Range.Start.Line, n.Range.Start.Column,
			n.Range.End.Line, n.Range.End.Column,
		)

		sb.WriteString(t.styles.NodeKind.Render(fmt.Sprintf("%-*s", kindColWidth, n.Kind)))
		sb.WriteString(" ")
		sb.WriteString(t.styles.Location.Render(fmt.Sprintf("%-*s", locationColWidth, location)))
		sb.WriteString(" ")
		sb.WriteString(t.styles.Language.Render(fmt.Sprintf("%-*s", detailColWidth, nodeDetail(n))))
		sb.WriteString(" ")
		sb.WriteString(t.styles.Content.Render(truncate(flatten(n.Content), contentWidth)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// nodeDetail returns the kind-specific annotation column value.
func nodeDetail(n mdnode.Node) string {
	switch n.Kind {
	case mdnode.NodeHeader:
		return fmt.Sprintf("level=%d", n.Level)
	case mdnode.NodeCode:
		if n.Language == "" {
			return "-"
		}
		return n.Language
	case mdnode.NodeLink:
		return truncate(n.Destination, detailColWidth)
	case mdnode.NodeText, mdnode.NodeBold, mdnode.NodeItalic, mdnode.NodeList:
		return "-"
	default:
		return "-"
	}
}

// flatten collapses newlines so multi-line content stays on one row.
func flatten(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "⏎"), "\n", "⏎")
}

// truncate shortens a string to width, appending an ellipsis when cut.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

// terminalWidth returns the width of the terminal behind the writer,
// or defaultTermWidth when the writer is not a terminal.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultTermWidth
}
