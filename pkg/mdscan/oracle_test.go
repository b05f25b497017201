package mdscan_test

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/inkdown/mdoutline/pkg/mdnode"
	"github.com/inkdown/mdoutline/pkg/mdscan"
)

// atxHeading is a (level, line) pair for comparing header extraction
// against goldmark.
type atxHeading struct {
	level int
	line  int
}

// goldmarkHeadings extracts ATX headings from a document using goldmark
// as a reference parser. Setext headings are skipped: the scanner only
// recognizes ATX form.
func goldmarkHeadings(t *testing.T, source string) []atxHeading {
	t.Helper()

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader([]byte(source)))
	ix := mdnode.NewLineIndex(source)

	var headings []atxHeading
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		line := ix.PositionAt(heading.Lines().At(0).Start).Line
		if !isSetext(source, ix, line) {
			headings = append(headings, atxHeading{level: heading.Level, line: line})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk goldmark AST: %v", err)
	}

	return headings
}

// isSetext reports whether the heading at the given line is setext-form
// (underlined rather than '#'-prefixed).
func isSetext(source string, ix *mdnode.LineIndex, line int) bool {
	content := ix.LineContent(line)
	return len(content) == 0 || content[0] != '#'
}

func scannedHeadings(source string) []atxHeading {
	var headings []atxHeading
	for _, n := range mdnode.Headers(mdscan.Parse(source)) {
		headings = append(headings, atxHeading{level: n.Level, line: n.Range.Start.Line})
	}
	return headings
}

// TestParse_HeaderExtractionMatchesGoldmark cross-checks the hand-written
// scanner's header output against goldmark on documents that stay within
// the shared grammar subset (ATX headings, fenced code, prose).
func TestParse_HeaderExtractionMatchesGoldmark(t *testing.T) {
	t.Parallel()

	sources := []string{
		"# One\n\n## Two\n\n### Three\n",
		"# Real\n\n```\n# Fake\n```\n\n## After\n",
		"prose first\n\n#### Deep start\n\nmore prose\n",
		"```md\n# a\n## b\n```\n",
		"# A\n## B\n## C\n# D\n",
		"###### Six\n\n####### NotAHeading\n",
		"~~~\n# swallowed\n~~~\n# visible\n",
		"```\n# unterminated fence hides this\n",
		"text\n# Mid Document\ntext\n",
	}

	for _, source := range sources {
		want := goldmarkHeadings(t, source)
		got := scannedHeadings(source)

		if len(got) != len(want) {
			t.Errorf("header count mismatch for %q: scanner %d, goldmark %d",
				source, len(got), len(want))
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("heading %d mismatch for %q: scanner %+v, goldmark %+v",
					i, source, got[i], want[i])
			}
		}
	}
}
