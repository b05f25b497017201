package mdnode

import "fmt"

// Position is a location in the source text.
// Offset is 0-based; Line and Column are 1-based.
// Column counts bytes, not runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsValid returns true if this position has valid values.
func (p Position) IsValid() bool {
	return p.Offset >= 0 && p.Line > 0 && p.Column > 0
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceRange is a half-open span of source text, from Start (inclusive)
// to End (exclusive). End.Offset >= Start.Offset always holds for ranges
// produced by the scanner.
type SourceRange struct {
	Start Position
	End   Position
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.End.Offset - r.Start.Offset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.Start.Offset == r.End.Offset
}

// Contains returns true if the given offset falls within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.Start.Offset && offset < r.End.Offset
}

// Overlaps returns true if the two ranges share any offset.
func (r SourceRange) Overlaps(other SourceRange) bool {
	return r.Start.Offset < other.End.Offset && other.Start.Offset < r.End.Offset
}
