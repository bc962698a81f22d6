package tasktree

import (
	"fmt"
	"strings"
)

const (
	cursorSave    = "\x1b[s"
	cursorRestore = "\x1b[u"
	eraseLine     = "\x1b[K"
	stepLeftDown  = "\x1b[1D\x1b[1B"
)

// Each nesting level reserves five columns. The connector glyphs link a
// nested task's line to its parent.
const (
	indentStep = 5

	glyphTee      = "┣"
	glyphVertical = "┃"
	glyphLeaf     = "┗━ "
)

func cursorUp(n int) string {
	return fmt.Sprintf("\x1b[%dA", n)
}

func cursorColumn(n int) string {
	return fmt.Sprintf("\x1b[%dG", n)
}

// indentColumn is the marker column for a task at the given depth. The root
// task sits at depth 0, column 1.
func indentColumn(depth int) int {
	return depth*indentStep + 1
}

// renderOpen composes the output for a newly started task. size is the
// stack size after the push; lastRow is the rowOffset, after the push, of
// the previously deepest task (ignored when size == 1). The newline scrolls
// the view down one row, then the connector column is redrawn: the previous
// branch corner becomes a tee when rows were printed since, and the
// vertical bar extends down to the new line. The cursor is saved and
// restored around the connector edit so the new line builds up undisturbed.
func renderOpen(size, lastRow int, marker, message string) string {
	var b strings.Builder
	b.WriteString("\n")

	if size > 1 {
		b.WriteString(cursorSave)
		if lastRow > 1 {
			b.WriteString(cursorUp(lastRow - 1))
			b.WriteString(cursorColumn((size-2)*indentStep + 3))
			b.WriteString(glyphTee)
		}
		for i := 1; i < lastRow; i++ {
			b.WriteString(stepLeftDown)
			b.WriteString(glyphVertical)
		}
		b.WriteString(cursorRestore)

		b.WriteString(strings.Repeat(" ", (size-2)*indentStep+2))
		b.WriteString(glyphLeaf)
	}

	b.WriteString(marker)
	b.WriteString(" ")
	b.WriteString(message)
	return b.String()
}

// renderClose composes the overwrite of a resolved task's line. row is the
// popped task's rowOffset; depth is the stack size after the pop, which is
// the popped task's nesting depth. The symbol replaces the spinner and the
// rest of the line is erased before the final message. The cursor is
// restored only for mid-screen edits; when the task owned the bottom line
// the cursor stays after the message so subsequent output follows it.
func renderClose(row, depth int, symbol, message string) string {
	var b strings.Builder
	b.WriteString(cursorSave)
	if row > 0 {
		b.WriteString(cursorUp(row))
	}
	b.WriteString(cursorColumn(indentColumn(depth)))
	b.WriteString(symbol)
	b.WriteString(" ")
	b.WriteString(eraseLine)
	b.WriteString(message)
	if row != 0 {
		b.WriteString(cursorRestore)
	}
	return b.String()
}

// renderSpin paints the current frame at every open task's marker column,
// root first. Every task shows the same frame, giving a synchronized spin.
func renderSpin(offsets []int, frame string) string {
	var b strings.Builder
	col := 1
	for _, row := range offsets {
		b.WriteString(cursorSave)
		if row > 0 {
			b.WriteString(cursorUp(row))
		}
		b.WriteString(cursorColumn(col))
		b.WriteString(frame)
		b.WriteString(cursorRestore)
		col += indentStep
	}
	return b.String()
}
