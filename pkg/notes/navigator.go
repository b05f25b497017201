package notes

import (
	"errors"
	"fmt"

	"github.com/inkdown/mdoutline/pkg/mdscan"
	"github.com/inkdown/mdoutline/pkg/outline"
)

// ErrHeaderNotFound is returned when a clicked header ID has no match in
// the current outline, e.g. after the note changed under the sidebar.
var ErrHeaderNotFound = errors.New("header not found in outline")

// Navigator produces outlines for note content and forwards sidebar
// clicks to the editor. Each call re-parses from scratch: parses are
// independent, so recomputing on every edit is safe without debouncing.
type Navigator struct {
	editor Editor
}

// NewNavigator creates a navigator that jumps the given editor.
func NewNavigator(editor Editor) *Navigator {
	return &Navigator{editor: editor}
}

// Outline parses note content and returns its header forest.
func (nav *Navigator) Outline(content string) []*outline.Header {
	nodes := mdscan.Parse(content)
	return outline.Build(outline.FromNodes(nodes))
}

// Click resolves a header ID against the forest and scrolls the editor
// to the header's 1-based source line.
func (nav *Navigator) Click(forest []*outline.Header, headerID string) error {
	h := outline.Find(forest, headerID)
	if h == nil {
		return fmt.Errorf("click %q: %w", headerID, ErrHeaderNotFound)
	}
	nav.editor.ScrollToLine(h.Line)
	return nil
}
