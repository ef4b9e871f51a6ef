package core

// Cursor represents the current position for editing operations
type Cursor struct {
	Position  Position // Current position (row, column)
	Preferred int      // Preferred column for vertical movement (sticky column)
}

// VerticalPolicy decides where the column lands after moving up or down.
type VerticalPolicy string

const (
	// VerticalPreserve keeps the preferred column, clamped to the new line.
	VerticalPreserve VerticalPolicy = "preserve"
	// VerticalLineEnd jumps near the end of the new line (length-2, at least 0).
	VerticalLineEnd VerticalPolicy = "line-end"
)

// Valid reports whether p is a known policy.
func (p VerticalPolicy) Valid() bool {
	switch p {
	case VerticalPreserve, VerticalLineEnd:
		return true
	}
	return false
}

// lastCol is the right-most column reachable by navigation.
func lastCol(doc *Document, row int) int {
	return max(doc.LineLength(row)-1, 0)
}

// clamp keeps the cursor inside the document. The column may sit one past
// the last rune so inserts can append.
func (c *Cursor) clamp(doc *Document) {
	c.Position.Row = min(max(c.Position.Row, 0), doc.LineCount()-1)
	c.Position.Col = min(max(c.Position.Col, 0), doc.LineLength(c.Position.Row))
	if c.Preferred < 0 {
		c.Preferred = 0
	}
}

// --- Cursor Movement ---

func (c *Cursor) MoveLeft(doc *Document) {
	c.Position.Col = min(max(c.Position.Col-1, 0), lastCol(doc, c.Position.Row))
	c.Preferred = c.Position.Col
}

// MoveRight never moves the cursor left: a column parked past the last rune
// by insert mode stays where it is.
func (c *Cursor) MoveRight(doc *Document) {
	if last := lastCol(doc, c.Position.Row); c.Position.Col < last {
		c.Position.Col++
	}
	c.Preferred = c.Position.Col
}

func (c *Cursor) MoveUp(doc *Document, policy VerticalPolicy) {
	c.moveVertical(doc, -1, policy)
}

func (c *Cursor) MoveDown(doc *Document, policy VerticalPolicy) {
	c.moveVertical(doc, 1, policy)
}

func (c *Cursor) moveVertical(doc *Document, delta int, policy VerticalPolicy) {
	c.Position.Row = min(max(c.Position.Row+delta, 0), doc.LineCount()-1)

	switch policy {
	case VerticalLineEnd:
		c.Position.Col = max(doc.LineLength(c.Position.Row)-2, 0)
		c.Preferred = c.Position.Col
	default:
		c.Position.Col = min(c.Preferred, lastCol(doc, c.Position.Row))
	}
}
