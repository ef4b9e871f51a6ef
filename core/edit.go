package core

// The edit operations take the document and cursor by value of the cursor and
// return the cursor the caller should install. They never touch lines other
// than the one addressed by the cursor (InsertLineBreak adds a new one).

// InsertCharacter inserts r at the cursor and advances the column by one.
func InsertCharacter(doc *Document, cursor Cursor, r rune) (Cursor, error) {
	cursor.clamp(doc)
	row, col := cursor.Position.Row, cursor.Position.Col

	if err := doc.InsertRuneAt(row, col, r); err != nil {
		return cursor, err
	}

	cursor.Position.Col = col + 1
	cursor.Preferred = cursor.Position.Col
	return cursor, nil
}

// InsertLineBreak opens an empty line below the cursor's line. The cursor stays put.
func InsertLineBreak(doc *Document, cursor Cursor) (Cursor, error) {
	cursor.clamp(doc)
	if err := doc.InsertLinesAfter(cursor.Position.Row, ""); err != nil {
		return cursor, err
	}
	return cursor, nil
}

// DeleteCharacterBefore removes the rune left of the cursor. At the start of a
// line it does nothing: lines are never joined.
func DeleteCharacterBefore(doc *Document, cursor Cursor) (Cursor, error) {
	cursor.clamp(doc)
	row, col := cursor.Position.Row, cursor.Position.Col

	if col <= 0 {
		return cursor, nil
	}

	if err := doc.DeleteRuneAt(row, col-1); err != nil {
		return cursor, err
	}

	cursor.Position.Col = col - 1
	cursor.Preferred = cursor.Position.Col
	return cursor, nil
}
