// Package mdnode defines the structural node model produced by scanning
// a Markdown note. A scan yields a flat, ordered sequence of nodes whose
// source ranges are non-decreasing and non-overlapping; read in order they
// reconstruct the document's structural skeleton.
package mdnode

// NodeKind classifies the type of a structural node.
type NodeKind uint8

// Node kinds. This is a closed set: consumers switch over every kind.
const (
	// NodeText is literal prose not claimed by any other construct.
	NodeText NodeKind = iota

	// NodeBold and NodeItalic are emphasis spans.
	NodeBold
	NodeItalic

	// NodeList is a single list-item line.
	NodeList

	// NodeCode is the full interior of a fenced code block.
	NodeCode

	// NodeHeader is an ATX heading line.
	NodeHeader

	// NodeLink is an inline [text](destination) span.
	NodeLink
)

// String returns the lower-case name of the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "text"
	case NodeBold:
		return "bold"
	case NodeItalic:
		return "italic"
	case NodeList:
		return "list"
	case NodeCode:
		return "code"
	case NodeHeader:
		return "header"
	case NodeLink:
		return "link"
	default:
		return "unknown"
	}
}

// Node is a single structural node. Which fields beyond Content are
// meaningful depends on Kind:
//
//   - NodeText, NodeBold, NodeItalic: Content only. Emphasis content
//     excludes the delimiter markers.
//   - NodeList: Content is the list-item line's content after the marker.
//   - NodeCode: Content is the fence interior, exclusive of the fence
//     lines; Language is the fence info string, empty when absent.
//   - NodeHeader: Content is the raw matched line including the leading
//     '#' characters; Level is the count of those characters (1..6).
//     Consumers strip the markers themselves.
//   - NodeLink: LinkText is the display text, Destination the target,
//     Content the full raw matched span.
//
// Nodes are immutable once produced; a fresh scan allocates fresh nodes.
type Node struct {
	Kind    NodeKind
	Content string

	// Language is set for NodeCode when the fence declared an info string.
	Language string

	// Level is set for NodeHeader, always in 1..6.
	Level int

	// LinkText and Destination are set for NodeLink.
	LinkText    string
	Destination string

	// Range locates the node in the source text.
	Range SourceRange
}

// Headers returns the header nodes of a scan, in document order.
func Headers(nodes []Node) []Node {
	var headers []Node
	for _, n := range nodes {
		if n.Kind == NodeHeader {
			headers = append(headers, n)
		}
	}
	return headers
}

// ValidateSequence checks the node-sequence invariants: ranges are
// non-decreasing by start offset and non-overlapping, and every range is
// well-formed. Returns false on the first violation.
func ValidateSequence(nodes []Node) bool {
	prevEnd := 0
	for _, n := range nodes {
		if n.Range.End.Offset < n.Range.Start.Offset {
			return false
		}
		if n.Range.Start.Offset < prevEnd {
			return false
		}
		prevEnd = n.Range.End.Offset
	}
	return true
}
