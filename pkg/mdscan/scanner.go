// Package mdscan converts raw note text into the flat, ordered node
// sequence defined by mdnode. The scan is a single pass: structure and
// source positions are computed together, and malformed input never
// fails: unrecognized syntax degrades to plain text.
package mdscan

import (
	"strings"

	"github.com/inkdown/mdoutline/pkg/mdnode"
)

// Parse scans source text into an ordered node sequence.
//
// Recognition priority when constructs could overlap on one line:
// fenced code blocks, then ATX headers, then list items (all at line
// start), then inline links and emphasis within ordinary text lines.
// Heading-shaped lines inside an open code fence are captured verbatim
// into the code node and never produce header nodes.
//
// Parse is pure and deterministic: identical input yields an identical
// sequence. Empty input yields an empty sequence.
func Parse(source string) []mdnode.Node {
	s := &scanner{src: source, line: 1, col: 1}
	s.scan()
	return s.nodes
}

// scanner holds the cursor state for one pass over the source.
type scanner struct {
	src   string
	pos   int
	line  int
	col   int
	nodes []mdnode.Node

	// Pending literal run, flushed as one text node when a structural
	// construct begins. Keeps adjacent prose from fragmenting.
	textStart mdnode.Position
	textOpen  bool
}

func (s *scanner) scan() {
	for s.pos < len(s.src) {
		if s.col == 1 {
			if s.skipBlankLine() {
				continue
			}
			if s.tryCodeFence() {
				continue
			}
			if s.tryHeader() {
				continue
			}
			if s.tryListItem() {
				continue
			}
		}

		switch s.src[s.pos] {
		case '[':
			if s.tryLink() {
				continue
			}
		case '*', '_':
			if s.tryEmphasis() {
				continue
			}
		}

		s.consumeTextByte()
	}

	s.flushText()
}

// here returns the current cursor position.
func (s *scanner) here() mdnode.Position {
	return mdnode.Position{Offset: s.pos, Line: s.line, Column: s.col}
}

// advance moves the cursor forward n bytes, tracking line and column.
func (s *scanner) advance(n int) {
	for i := 0; i < n && s.pos < len(s.src); i++ {
		if s.src[s.pos] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.pos++
	}
}

// advanceTo moves the cursor to the given offset.
func (s *scanner) advanceTo(offset int) {
	if offset > s.pos {
		s.advance(offset - s.pos)
	}
}

// lineContentEnd returns the offset just past the current line's content,
// excluding any trailing CR or LF.
func (s *scanner) lineContentEnd(from int) int {
	nl := strings.IndexByte(s.src[from:], '\n')
	if nl < 0 {
		return len(s.src)
	}
	end := from + nl
	if end > from && s.src[end-1] == '\r' {
		end--
	}
	return end
}

// lineFullEnd returns the offset just past the line's newline characters.
func (s *scanner) lineFullEnd(contentEnd int) int {
	i := contentEnd
	if i < len(s.src) && s.src[i] == '\r' {
		i++
	}
	if i < len(s.src) && s.src[i] == '\n' {
		i++
	}
	return i
}

// skipBlankLine consumes a whitespace-only line without producing a node.
// Blank lines terminate the pending text run (paragraph boundary).
func (s *scanner) skipBlankLine() bool {
	contentEnd := s.lineContentEnd(s.pos)
	if strings.TrimRight(s.src[s.pos:contentEnd], " \t") != "" {
		return false
	}
	s.flushText()
	s.advanceTo(s.lineFullEnd(contentEnd))
	return true
}

// tryCodeFence parses a fenced code block: an opening fence line whose
// trimmed content starts with three or more backticks or tildes, the
// verbatim interior, and a matching closing fence (or end of input).
func (s *scanner) tryCodeFence() bool {
	i := s.pos
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}
	if i >= len(s.src) || (s.src[i] != '`' && s.src[i] != '~') {
		return false
	}

	fenceChar := s.src[i]
	j := i
	for j < len(s.src) && s.src[j] == fenceChar {
		j++
	}
	fenceLen := j - i
	if fenceLen < 3 {
		return false
	}

	contentEnd := s.lineContentEnd(j)
	language := fenceLanguage(s.src[j:contentEnd])

	s.flushText()
	start := s.here()
	s.advanceTo(s.lineFullEnd(contentEnd))

	// Capture interior lines verbatim until a closing fence or EOF.
	var body []string
	for s.pos < len(s.src) {
		lineEnd := s.lineContentEnd(s.pos)
		lineText := s.src[s.pos:lineEnd]
		if isClosingFence(lineText, fenceChar, fenceLen) {
			s.advanceTo(s.lineFullEnd(lineEnd))
			break
		}
		body = append(body, lineText)
		s.advanceTo(s.lineFullEnd(lineEnd))
	}

	s.emit(mdnode.Node{
		Kind:     mdnode.NodeCode,
		Content:  strings.Join(body, "\n"),
		Language: language,
		Range:    mdnode.SourceRange{Start: start, End: s.here()},
	})
	return true
}

// fenceLanguage extracts the language tag from a fence info string.
// Only the first word counts; trailing annotations are ignored.
func fenceLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// isClosingFence reports whether a line closes a fence opened with
// fenceChar repeated fenceLen times. Up to three spaces of indentation
// are allowed, and nothing but whitespace may follow the fence run.
func isClosingFence(lineText string, fenceChar byte, fenceLen int) bool {
	i := 0
	for i < len(lineText) && lineText[i] == ' ' && i < 3 {
		i++
	}
	count := 0
	for i < len(lineText) && lineText[i] == fenceChar {
		i++
		count++
	}
	if count < fenceLen {
		return false
	}
	return strings.TrimRight(lineText[i:], " \t") == ""
}

// tryHeader parses an ATX heading: 1-6 '#' characters at line start
// followed by a space or tab. Seven or more '#' is not a heading.
// Content keeps the raw matched line including the markers.
func (s *scanner) tryHeader() bool {
	i := s.pos
	for i < len(s.src) && s.src[i] == '#' {
		i++
	}
	level := i - s.pos
	if level < 1 || level > 6 {
		return false
	}
	if i >= len(s.src) || (s.src[i] != ' ' && s.src[i] != '\t') {
		return false
	}

	contentEnd := s.lineContentEnd(s.pos)
	raw := s.src[s.pos:contentEnd]

	s.flushText()
	start := s.here()
	s.advanceTo(contentEnd)
	end := s.here()
	s.advanceTo(s.lineFullEnd(contentEnd))

	s.emit(mdnode.Node{
		Kind:    mdnode.NodeHeader,
		Content: raw,
		Level:   level,
		Range:   mdnode.SourceRange{Start: start, End: end},
	})
	return true
}

// tryListItem parses a list-item line: a bullet (-, *, +) or numeric
// marker (1. or 1)) at line start followed by whitespace. The whole line
// is consumed; Content is the text after the marker.
func (s *scanner) tryListItem() bool {
	i := s.pos
	switch {
	case s.src[i] == '-' || s.src[i] == '*' || s.src[i] == '+':
		i++
	case isDigit(s.src[i]):
		for i < len(s.src) && isDigit(s.src[i]) {
			i++
		}
		if i >= len(s.src) || (s.src[i] != '.' && s.src[i] != ')') {
			return false
		}
		i++
	default:
		return false
	}

	if i >= len(s.src) || (s.src[i] != ' ' && s.src[i] != '\t') {
		return false
	}
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}

	contentEnd := s.lineContentEnd(s.pos)
	content := s.src[i:contentEnd]

	s.flushText()
	start := s.here()
	s.advanceTo(contentEnd)
	end := s.here()
	s.advanceTo(s.lineFullEnd(contentEnd))

	s.emit(mdnode.Node{
		Kind:    mdnode.NodeList,
		Content: content,
		Range:   mdnode.SourceRange{Start: start, End: end},
	})
	return true
}

// tryLink parses an inline [text](destination) span on the current line.
// An unmatched bracket or missing destination degrades to literal text.
func (s *scanner) tryLink() bool {
	lineEnd := s.lineContentEnd(s.pos)
	rel := strings.IndexByte(s.src[s.pos:lineEnd], ']')
	if rel < 0 {
		return false
	}
	closeBracket := s.pos + rel
	if closeBracket+1 >= lineEnd || s.src[closeBracket+1] != '(' {
		return false
	}
	rel = strings.IndexByte(s.src[closeBracket+2:lineEnd], ')')
	if rel < 0 {
		return false
	}
	closeParen := closeBracket + 2 + rel

	s.flushText()
	start := s.here()
	s.advanceTo(closeParen + 1)

	s.emit(mdnode.Node{
		Kind:        mdnode.NodeLink,
		LinkText:    s.src[start.Offset+1 : closeBracket],
		Destination: s.src[closeBracket+2 : closeParen],
		Content:     s.src[start.Offset : closeParen+1],
		Range:       mdnode.SourceRange{Start: start, End: s.here()},
	})
	return true
}

// tryEmphasis parses a bold or italic span on the current line. Bold is
// attempted before italic so a '**' run is never mis-split into two
// italics: the longer delimiter run wins. Content must be non-empty.
func (s *scanner) tryEmphasis() bool {
	marker := s.src[s.pos]
	lineEnd := s.lineContentEnd(s.pos)

	run := 0
	for s.pos+run < lineEnd && s.src[s.pos+run] == marker {
		run++
	}

	if run >= 2 {
		delim := string([]byte{marker, marker})
		inner := s.src[s.pos+2 : lineEnd]
		if rel := strings.Index(inner, delim); rel > 0 {
			s.flushText()
			start := s.here()
			s.advanceTo(s.pos + 2 + rel + 2)
			s.emit(mdnode.Node{
				Kind:    mdnode.NodeBold,
				Content: inner[:rel],
				Range:   mdnode.SourceRange{Start: start, End: s.here()},
			})
			return true
		}
	}

	if run == 1 {
		inner := s.src[s.pos+1 : lineEnd]
		if rel := strings.IndexByte(inner, marker); rel > 0 {
			s.flushText()
			start := s.here()
			s.advanceTo(s.pos + 1 + rel + 1)
			s.emit(mdnode.Node{
				Kind:    mdnode.NodeItalic,
				Content: inner[:rel],
				Range:   mdnode.SourceRange{Start: start, End: s.here()},
			})
			return true
		}
	}

	return false
}

// consumeTextByte adds the current byte to the pending literal run.
func (s *scanner) consumeTextByte() {
	if !s.textOpen {
		s.textStart = s.here()
		s.textOpen = true
	}
	s.advance(1)
}

// flushText emits the pending literal run as a single text node.
// Whitespace-only runs are dropped: blank padding between blocks is
// structure, not prose.
func (s *scanner) flushText() {
	if !s.textOpen {
		return
	}
	s.textOpen = false

	content := s.src[s.textStart.Offset:s.pos]
	if strings.TrimSpace(content) == "" {
		return
	}

	s.emit(mdnode.Node{
		Kind:    mdnode.NodeText,
		Content: content,
		Range:   mdnode.SourceRange{Start: s.textStart, End: s.here()},
	})
}

func (s *scanner) emit(n mdnode.Node) {
	s.nodes = append(s.nodes, n)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
