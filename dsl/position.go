package dsl

import "github.com/teranos/ddgen/model"

// positionTracker maintains line/column state while the lexer consumes source text.
// Lines are 1-based, columns are 1-based rune offsets within the line.
type positionTracker struct {
	line   int
	column int
}

func newPositionTracker() *positionTracker {
	return &positionTracker{line: 1, column: 1}
}

// advance updates the position after consuming r
func (pt *positionTracker) advance(r rune) {
	if r == '\n' {
		pt.line++
		pt.column = 1
		return
	}
	pt.column++
}

// mark returns the current position snapshot
func (pt *positionTracker) mark() model.Position {
	return model.Position{Line: pt.line, Column: pt.column}
}
