// Package position converts between byte offsets and 1-based line/column
// places in a source buffer.
package position

import (
	"fmt"
	"sort"
	"strings"
)

// Place is a 1-based line and byte column.
type Place struct {
	Line   int
	Column int
}

func (p Place) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// RawPosition is a run of text at a byte offset.
type RawPosition struct {
	// Offset is the byte offset in the source text
	Offset int
	// Text is the actual text at this position
	Text string
}

func NewBasicPosition(text string, offset int) RawPosition {
	return RawPosition{Text: text, Offset: offset}
}

// ID returns a unique identifier for this position based on offset and text
func (p RawPosition) ID() string {
	return fmt.Sprintf("%s@%d", p.Text, p.Offset)
}

func (p RawPosition) Length() int {
	return len(p.Text)
}

// End is the offset just past the text.
func (p RawPosition) End() int {
	return p.Offset + p.Length()
}

func (p RawPosition) HasRangeOverlapWith(start RawPosition) bool {
	startOffset := start.Offset
	endOffset := start.End()

	posOffset := p.Offset
	posEndOffset := p.End()

	// a zero-length position overlaps if it falls within the other range
	if p.Length() == 0 {
		return posOffset >= startOffset && posOffset <= endOffset
	}
	if start.Length() == 0 {
		return startOffset >= posOffset && startOffset <= posEndOffset
	}

	return startOffset < posEndOffset && endOffset > posOffset
}

// Contains reports whether offset falls in [Offset, End).
func (p RawPosition) Contains(offset int) bool {
	return offset >= p.Offset && offset < p.End()
}

func (p RawPosition) String() string {
	return p.ID()
}

// Index maps offsets of one buffer to places and back.
type Index struct {
	starts []int
	size   int
}

func NewIndex(content []byte) *Index {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{starts: starts, size: len(content)}
}

// Lines is the number of lines, counting a trailing empty line.
func (ix *Index) Lines() int {
	return len(ix.starts)
}

func (ix *Index) Size() int {
	return ix.size
}

// Offset converts a place to a byte offset. Places past the end of a line or
// of the buffer are clamped.
func (ix *Index) Offset(p Place) int {
	if p.Line < 1 {
		return 0
	}
	if p.Line > len(ix.starts) {
		return ix.size
	}
	start := ix.starts[p.Line-1]
	end := ix.size
	if p.Line < len(ix.starts) {
		end = ix.starts[p.Line] - 1
	}
	col := p.Column
	if col < 1 {
		col = 1
	}
	if start+col-1 > end {
		return end
	}
	return start + col - 1
}

// LineStart is the offset of the first byte of line; one past the last line
// it is the buffer size.
func (ix *Index) LineStart(line int) int {
	return ix.Offset(Place{Line: line, Column: 1})
}

func (ix *Index) Place(offset int) Place {
	if offset < 0 {
		offset = 0
	}
	if offset > ix.size {
		offset = ix.size
	}
	line := sort.Search(len(ix.starts), func(i int) bool { return ix.starts[i] > offset }) - 1
	return Place{Line: line + 1, Column: offset - ix.starts[line] + 1}
}

// ExtraLines counts the lines a token spills onto past its first one. A
// trailing newline does not start a new line.
func ExtraLines(spelling string) int {
	n := strings.Count(spelling, "\n")
	if strings.HasSuffix(spelling, "\n") {
		n--
	}
	return n
}
