package mdnode

import "sort"

// LineInfo holds byte offsets for a single source line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the line's newline characters
	// begin. Equals EndOffset for a final line without a trailing newline.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of input).
	EndOffset int
}

// BuildLines constructs line metadata for source text.
// It handles both LF and CRLF line endings.
func BuildLines(source string) []LineInfo {
	if len(source) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(source); idx++ {
		if source[idx] == '\n' {
			newlineStart := idx
			if idx > 0 && source[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	if lineStart < len(source) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(source),
			EndOffset:    len(source),
		})
	}

	return lines
}

// LineIndex converts between byte offsets and 1-based line/column pairs
// for one source snapshot.
type LineIndex struct {
	source string
	lines  []LineInfo
}

// NewLineIndex builds a line index for the given source text.
func NewLineIndex(source string) *LineIndex {
	return &LineIndex{source: source, lines: BuildLines(source)}
}

// LineCount returns the number of lines in the source.
func (ix *LineIndex) LineCount() int {
	return len(ix.lines)
}

// PositionAt converts a byte offset to a Position.
// Offsets at or past the end of the source clamp to the last line.
func (ix *LineIndex) PositionAt(offset int) Position {
	if offset < 0 || len(ix.lines) == 0 {
		return Position{}
	}

	if offset >= len(ix.source) {
		last := ix.lines[len(ix.lines)-1]
		return Position{
			Offset: offset,
			Line:   len(ix.lines),
			Column: offset - last.StartOffset + 1,
		}
	}

	lineIdx := sort.Search(len(ix.lines), func(i int) bool {
		return ix.lines[i].EndOffset > offset
	})
	if lineIdx >= len(ix.lines) {
		lineIdx = len(ix.lines) - 1
	}

	info := ix.lines[lineIdx]
	if offset < info.StartOffset {
		return Position{}
	}

	return Position{
		Offset: offset,
		Line:   lineIdx + 1,
		Column: offset - info.StartOffset + 1,
	}
}

// LineContent returns the content of a 1-based line, excluding the newline.
// Returns "" if the line number is out of range.
func (ix *LineIndex) LineContent(line int) string {
	if line < 1 || line > len(ix.lines) {
		return ""
	}
	info := ix.lines[line-1]
	return ix.source[info.StartOffset:info.NewlineStart]
}
