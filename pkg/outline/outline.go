// Package outline assembles the header nodes of a scanned note into the
// nested tree used for in-document navigation. It consumes only the
// header output of mdscan; all other node kinds are ignored.
package outline

import (
	"fmt"
	"strings"

	"github.com/inkdown/mdoutline/pkg/mdnode"
)

// Header is the outline-facing projection of a header node.
type Header struct {
	// ID is unique within one parse, even for duplicate heading text:
	// the heading level combined with a per-document counter.
	ID string `json:"id"`

	// Level is the heading depth derived from the '#' count, 1..6.
	Level int `json:"level"`

	// Text is the heading with markers and surrounding whitespace stripped.
	Text string `json:"text"`

	// Content is the trimmed raw heading line, markers included.
	Content string `json:"content"`

	// Line is the 1-based source line of the heading.
	Line int `json:"line"`

	// Children is populated once the header is placed in an outline tree.
	Children []*Header `json:"children,omitempty"`
}

// FromNodes projects the header nodes of a scan into a flat Header list,
// in document order. Non-header nodes are skipped. IDs restart at 1 for
// every call: they identify headers within one parse only.
func FromNodes(nodes []mdnode.Node) []Header {
	var headers []Header
	seq := 0

	for _, n := range nodes {
		if n.Kind != mdnode.NodeHeader {
			continue
		}
		seq++

		raw := strings.TrimSpace(n.Content)
		headers = append(headers, Header{
			ID:      fmt.Sprintf("h%d-%d", n.Level, seq),
			Level:   n.Level,
			Text:    strings.TrimSpace(strings.TrimLeft(raw, "#")),
			Content: raw,
			Line:    n.Range.Start.Line,
		})
	}

	return headers
}

// Find returns the header with the given ID anywhere in the forest,
// or nil if absent.
func Find(forest []*Header, id string) *Header {
	for _, h := range forest {
		if h.ID == id {
			return h
		}
		if found := Find(h.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every header in the forest in document order.
func Walk(forest []*Header, visit func(h *Header, depth int)) {
	var walk func(hs []*Header, depth int)
	walk = func(hs []*Header, depth int) {
		for _, h := range hs {
			visit(h, depth)
			walk(h.Children, depth+1)
		}
	}
	walk(forest, 0)
}
