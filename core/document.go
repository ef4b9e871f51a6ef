package core

import (
	"fmt"
	"strings"
)

// Document holds the text being edited as lines of runes.
// It always contains at least one (possibly empty) line.
type Document struct {
	lines [][]rune
}

// NewDocument creates a document with a single empty line
func NewDocument() *Document {
	return &Document{lines: [][]rune{{}}}
}

// Parse splits text on '\n' into lines. A trailing line break terminates the
// last line rather than opening a new one, so Serialize(Parse(x)) == x for any
// x that ends with '\n'.
func Parse(text string) *Document {
	text = strings.TrimSuffix(text, "\n")

	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, part := range parts {
		lines[i] = []rune(part)
	}

	return &Document{lines: lines}
}

// Serialize joins the lines, writing a line break after every line including the last.
func (d *Document) Serialize() string {
	var sb strings.Builder
	for _, line := range d.lines {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineLength returns the rune count of line i, or 0 when i is out of range.
func (d *Document) LineLength(i int) int {
	if i < 0 || i >= len(d.lines) {
		return 0
	}
	return len(d.lines[i])
}

// Line returns a copy of line i, or nil when i is out of range.
func (d *Document) Line(i int) []rune {
	if i < 0 || i >= len(d.lines) {
		return nil
	}
	line := make([]rune, len(d.lines[i]))
	copy(line, d.lines[i])
	return line
}

// Lines returns every line as a string.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = string(line)
	}
	return out
}

func (d *Document) IsEmpty() bool {
	return len(d.lines) == 1 && len(d.lines[0]) == 0
}

func (d *Document) checkRow(op string, row int) error {
	if row < 0 || row >= len(d.lines) {
		return fmt.Errorf("%s: %w: row %d out of bounds [0, %d)", op, ErrInvalidPosition, row, len(d.lines))
	}
	return nil
}

// InsertRuneAt inserts r before column col of row. col may equal the line length.
func (d *Document) InsertRuneAt(row, col int, r rune) error {
	if err := d.checkRow("InsertRuneAt", row); err != nil {
		return err
	}

	line := d.lines[row]
	if col < 0 || col > len(line) {
		return fmt.Errorf("InsertRuneAt: %w: col %d out of bounds [0, %d]", ErrInvalidPosition, col, len(line))
	}

	newLine := make([]rune, 0, len(line)+1)
	newLine = append(newLine, line[:col]...)
	newLine = append(newLine, r)
	newLine = append(newLine, line[col:]...)
	d.lines[row] = newLine

	return nil
}

// DeleteRuneAt removes the rune at column col of row.
func (d *Document) DeleteRuneAt(row, col int) error {
	if err := d.checkRow("DeleteRuneAt", row); err != nil {
		return err
	}

	line := d.lines[row]
	if col < 0 || col >= len(line) {
		return fmt.Errorf("DeleteRuneAt: %w: col %d out of bounds [0, %d)", ErrInvalidPosition, col, len(line))
	}

	newLine := make([]rune, 0, len(line)-1)
	newLine = append(newLine, line[:col]...)
	newLine = append(newLine, line[col+1:]...)
	d.lines[row] = newLine

	return nil
}

// InsertLinesAfter inserts the given lines directly below row.
func (d *Document) InsertLinesAfter(row int, lines ...string) error {
	if err := d.checkRow("InsertLinesAfter", row); err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}

	newLines := make([][]rune, 0, len(d.lines)+len(lines))
	newLines = append(newLines, d.lines[:row+1]...)
	for _, l := range lines {
		newLines = append(newLines, []rune(l))
	}
	newLines = append(newLines, d.lines[row+1:]...)
	d.lines = newLines

	return nil
}
