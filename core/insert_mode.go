package core

import "fmt"

// insertMode serves both insert and debug. Debug edits exactly like insert
// and additionally narrates typed runes.
type insertMode struct {
	narrate bool
}

func NewInsertMode() EditorMode { return &insertMode{} }

func NewDebugMode() EditorMode { return &insertMode{narrate: true} }

func (m *insertMode) Name() Mode {
	if m.narrate {
		return DebugMode
	}
	return InsertMode
}

func (m *insertMode) Enter(editor Editor) {
	editor.UpdateStatus(fmt.Sprintf("-- %s --", m.Name().Label()))
}

func (m *insertMode) Exit(editor Editor) {}

func (m *insertMode) HandleKey(editor Editor, doc *Document, key KeyEvent) *Error {
	cursor := editor.GetCursor()
	policy := editor.Options().VerticalMotion

	var (
		next = cursor
		err  error
	)

	switch key.Key {
	case KeyEscape:
		editor.SetNormalMode()
		return nil

	case KeyF12:
		editor.ToggleDebugMode()
		return nil

	case KeyF1:
		if m.narrate {
			line := doc.Line(cursor.Position.Row)
			if cursor.Position.Col < len(line) {
				editor.Narrate(string(line[cursor.Position.Col]))
			}
		}
		return nil

	case KeyLeft:
		next.MoveLeft(doc)
	case KeyRight:
		next.MoveRight(doc)
	case KeyUp:
		next.MoveUp(doc, policy)
	case KeyDown:
		next.MoveDown(doc, policy)

	case KeyEnter:
		next, err = InsertLineBreak(doc, cursor)

	case KeyBackspace:
		next, err = DeleteCharacterBefore(doc, cursor)

	default:
		if !key.Printable() {
			// Ignore unknown special keys or modifiers without runes
			return nil
		}
		next, err = InsertCharacter(doc, cursor, key.Rune)
		if err == nil && m.narrate {
			editor.Narrate(string(key.Rune))
		}
	}

	if err != nil {
		return NewError(ErrInvalidPositionId, err)
	}

	editor.SetCursor(next)
	return nil
}
