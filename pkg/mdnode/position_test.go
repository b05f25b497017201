package mdnode_test

import (
	"testing"

	"github.com/inkdown/mdoutline/pkg/mdnode"
)

func TestPosition_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pos  mdnode.Position
		want bool
	}{
		{"document start", mdnode.Position{Offset: 0, Line: 1, Column: 1}, true},
		{"mid document", mdnode.Position{Offset: 42, Line: 3, Column: 7}, true},
		{"zero value", mdnode.Position{}, false},
		{"negative offset", mdnode.Position{Offset: -1, Line: 1, Column: 1}, false},
		{"zero line", mdnode.Position{Offset: 0, Line: 0, Column: 1}, false},
		{"zero column", mdnode.Position{Offset: 0, Line: 1, Column: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.pos.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_String(t *testing.T) {
	t.Parallel()

	p := mdnode.Position{Offset: 10, Line: 2, Column: 5}
	if got := p.String(); got != "2:5" {
		t.Errorf("String() = %q, want 2:5", got)
	}
}

func rangeAt(start, end int) mdnode.SourceRange {
	return mdnode.SourceRange{
		Start: mdnode.Position{Offset: start, Line: 1, Column: start + 1},
		End:   mdnode.Position{Offset: end, Line: 1, Column: end + 1},
	}
}

func TestSourceRange_LenAndIsEmpty(t *testing.T) {
	t.Parallel()

	r := rangeAt(3, 8)
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
	if r.IsEmpty() {
		t.Error("non-empty range reported empty")
	}

	empty := rangeAt(4, 4)
	if !empty.IsEmpty() {
		t.Error("zero-length range not reported empty")
	}
}

func TestSourceRange_Contains(t *testing.T) {
	t.Parallel()

	r := rangeAt(3, 8)

	if !r.Contains(3) {
		t.Error("start offset should be contained")
	}
	if !r.Contains(7) {
		t.Error("last interior offset should be contained")
	}
	if r.Contains(8) {
		t.Error("end offset is exclusive")
	}
	if r.Contains(2) {
		t.Error("offset before start should not be contained")
	}
}

func TestSourceRange_Overlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b mdnode.SourceRange
		want bool
	}{
		{"disjoint", rangeAt(0, 3), rangeAt(5, 9), false},
		{"adjacent", rangeAt(0, 3), rangeAt(3, 6), false},
		{"partial", rangeAt(0, 5), rangeAt(3, 9), true},
		{"nested", rangeAt(0, 10), rangeAt(2, 4), true},
		{"identical", rangeAt(1, 4), rangeAt(1, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() is not symmetric: reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	kinds := map[mdnode.NodeKind]string{
		mdnode.NodeText:   "text",
		mdnode.NodeBold:   "bold",
		mdnode.NodeItalic: "italic",
		mdnode.NodeList:   "list",
		mdnode.NodeCode:   "code",
		mdnode.NodeHeader: "header",
		mdnode.NodeLink:   "link",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("NodeKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
	if got := mdnode.NodeKind(200).String(); got != "unknown" {
		t.Errorf("out-of-range kind String() = %q, want unknown", got)
	}
}

func TestHeaders(t *testing.T) {
	t.Parallel()

	nodes := []mdnode.Node{
		{Kind: mdnode.NodeHeader, Content: "# A", Level: 1},
		{Kind: mdnode.NodeText, Content: "prose"},
		{Kind: mdnode.NodeHeader, Content: "## B", Level: 2},
		{Kind: mdnode.NodeCode, Content: "x"},
	}

	headers := mdnode.Headers(nodes)
	if len(headers) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(headers))
	}
	if headers[0].Content != "# A" || headers[1].Content != "## B" {
		t.Errorf("headers out of document order: %+v", headers)
	}

	if got := mdnode.Headers(nil); got != nil {
		t.Errorf("Headers(nil) = %+v, want nil", got)
	}
}

func TestValidateSequence(t *testing.T) {
	t.Parallel()

	node := func(start, end int) mdnode.Node {
		return mdnode.Node{Kind: mdnode.NodeText, Range: rangeAt(start, end)}
	}

	tests := []struct {
		name  string
		nodes []mdnode.Node
		want  bool
	}{
		{"empty", nil, true},
		{"single", []mdnode.Node{node(0, 5)}, true},
		{"ordered with gap", []mdnode.Node{node(0, 5), node(7, 9)}, true},
		{"adjacent", []mdnode.Node{node(0, 5), node(5, 9)}, true},
		{"overlapping", []mdnode.Node{node(0, 5), node(3, 9)}, false},
		{"out of order", []mdnode.Node{node(5, 9), node(0, 3)}, false},
		{"inverted range", []mdnode.Node{node(5, 2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := mdnode.ValidateSequence(tt.nodes); got != tt.want {
				t.Errorf("ValidateSequence() = %v, want %v", got, tt.want)
			}
		})
	}
}
