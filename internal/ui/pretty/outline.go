package pretty

import (
	"fmt"
	"strings"

	"github.com/inkdown/mdoutline/pkg/outline"
)

// Tree-drawing glyphs.
const (
	glyphBranch = "├── "
	glyphLast   = "└── "
	glyphPipe   = "│   "
	glyphSpace  = "    "
)

// OutlineRenderer renders a header forest as an indented tree with
// source line numbers.
type OutlineRenderer struct {
	styles   *Styles
	maxDepth int
}

// NewOutlineRenderer creates an outline renderer. maxDepth of zero means
// unlimited depth.
func NewOutlineRenderer(styles *Styles, maxDepth int) *OutlineRenderer {
	return &OutlineRenderer{styles: styles, maxDepth: maxDepth}
}

// Render returns the tree rendering of the forest. An empty forest
// renders as a single dimmed placeholder line.
func (r *OutlineRenderer) Render(forest []*outline.Header) string {
	if len(forest) == 0 {
		return r.styles.Dim.Render("(no headings)") + "\n"
	}

	var sb strings.Builder
	for i, root := range forest {
		r.renderHeader(&sb, root, "", i == len(forest)-1, 0, true)
	}
	return sb.String()
}

func (r *OutlineRenderer) renderHeader(
	sb *strings.Builder, h *outline.Header, prefix string, last bool, depth int, isRoot bool,
) {
	if r.maxDepth > 0 && depth >= r.maxDepth {
		return
	}

	textStyle := r.styles.HeaderText
	if isRoot {
		textStyle = r.styles.RootHeader
	}

	if isRoot {
		sb.WriteString(textStyle.Render(h.Text))
	} else {
		glyph := glyphBranch
		if last {
			glyph = glyphLast
		}
		sb.WriteString(r.styles.Branch.Render(prefix + glyph))
		sb.WriteString(textStyle.Render(h.Text))
	}

	sb.WriteString(r.styles.LineNumber.Render(fmt.Sprintf("  :%d", h.Line)))
	sb.WriteString("\n")

	childPrefix := prefix
	if !isRoot {
		if last {
			childPrefix += glyphSpace
		} else {
			childPrefix += glyphPipe
		}
	}

	for i, child := range h.Children {
		r.renderHeader(sb, child, childPrefix, i == len(h.Children)-1, depth+1, false)
	}
}

// RenderFlat returns a plain-text rendering: one header per line,
// indented by level, with the line number in a trailing column. Used for
// the "text" output format and non-terminal destinations.
func RenderFlat(forest []*outline.Header, maxDepth int) string {
	var sb strings.Builder
	outline.Walk(forest, func(h *outline.Header, depth int) {
		if maxDepth > 0 && depth >= maxDepth {
			return
		}
		fmt.Fprintf(&sb, "%s%s\t%d\n", strings.Repeat("  ", depth), h.Text, h.Line)
	})
	return sb.String()
}
