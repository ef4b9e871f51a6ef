package core

type normalMode struct{}

func NewNormalMode() EditorMode { return &normalMode{} }

func (m *normalMode) Name() Mode { return NormalMode }

func (m *normalMode) Enter(editor Editor) {
	editor.UpdateStatus("-- NORMAL --")
}

func (m *normalMode) Exit(editor Editor) {}

func (m *normalMode) HandleKey(editor Editor, doc *Document, key KeyEvent) *Error {
	cursor := editor.GetCursor()
	policy := editor.Options().VerticalMotion

	switch key.Key {
	case KeyLeft:
		cursor.MoveLeft(doc)
	case KeyRight:
		cursor.MoveRight(doc)
	case KeyUp:
		cursor.MoveUp(doc, policy)
	case KeyDown:
		cursor.MoveDown(doc, policy)
	default:
		switch key.Rune {
		case 'h':
			cursor.MoveLeft(doc)
		case 'l':
			cursor.MoveRight(doc)
		case 'k':
			cursor.MoveUp(doc, policy)
		case 'j':
			cursor.MoveDown(doc, policy)
		case 'i':
			editor.SetInsertMode()
			return nil
		case 'w':
			editor.Save()
			return nil
		case 'q':
			editor.Quit()
			return nil
		case 'y':
			if err := editor.YankLine(); err != nil {
				return NewError(ErrFailedToYankId, err)
			}
			return nil
		case 'p':
			if err := editor.PutLines(); err != nil {
				return NewError(ErrFailedToPasteId, err)
			}
			return nil
		default:
			return nil
		}
	}

	editor.SetCursor(cursor)
	return nil
}
