package core

import (
	"fmt"
	"iter"
	"time"
)

// Placeholder is drawn for empty lines so the cursor has a cell to highlight.
// It exists only in projected rows, never in a Document.
const Placeholder = '⬞'

// Segment is one cell of a projected row.
type Segment struct {
	Text        string
	Highlighted bool // Under the cursor
	Placeholder bool // Synthesized for display, not part of the document
}

// Row is the display form of one document line.
type Row struct {
	Index    int    // Zero-based line index
	Label    string // Line-number gutter, empty when line numbers are off
	Segments []Segment
}

// Text concatenates the row's segments.
func (r Row) Text() string {
	var b []byte
	for _, s := range r.Segments {
		b = append(b, s.Text...)
	}
	return string(b)
}

type ProjectOptions struct {
	LineNumbers bool
}

// LineLabel right-aligns n in three cells and pads the first cell with the
// placeholder glyph: "⬞ 1 ", "⬞42 ", "123 ".
func LineLabel(n int) string {
	label := fmt.Sprintf("%3d ", n)
	if label[0] == ' ' {
		return string(Placeholder) + label[1:]
	}
	return label
}

// Project yields one row per document line. The sequence is rebuilt from the
// whole document on every call.
func Project(doc *Document, cursor Cursor, opts ProjectOptions) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for i := range doc.LineCount() {
			if !yield(projectLine(doc.Line(i), i, cursor, opts)) {
				return
			}
		}
	}
}

func projectLine(line []rune, index int, cursor Cursor, opts ProjectOptions) Row {
	row := Row{Index: index}
	if opts.LineNumbers {
		row.Label = LineLabel(index + 1)
	}

	onCursorLine := cursor.Position.Row == index

	if len(line) == 0 {
		row.Segments = []Segment{{
			Text:        string(Placeholder),
			Highlighted: onCursorLine,
			Placeholder: true,
		}}
		return row
	}

	row.Segments = make([]Segment, 0, len(line)+1)
	for col, r := range line {
		row.Segments = append(row.Segments, Segment{
			Text:        string(r),
			Highlighted: onCursorLine && cursor.Position.Col == col,
		})
	}

	// Insert mode may park the cursor one past the last rune.
	if onCursorLine && cursor.Position.Col >= len(line) {
		row.Segments = append(row.Segments, Segment{Text: " ", Highlighted: true, Placeholder: true})
	}

	return row
}

// Title summarizes mode, path and 1-based cursor position:
// "<NORMAL>-notes.txt-|3:7|-[12]".
func Title(state State, cursor Cursor, elapsed time.Duration) string {
	path := state.Path
	if path == "" {
		path = "[No Name]"
	}
	return fmt.Sprintf("<%s>-%s-|%d:%d|-[%d]",
		state.Mode.Label(),
		path,
		cursor.Position.Row+1,
		cursor.Position.Col+1,
		int(elapsed/time.Second),
	)
}
