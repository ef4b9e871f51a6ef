package core

type Mode string

const (
	NormalMode Mode = "normal"
	InsertMode Mode = "insert"
	DebugMode  Mode = "debug"
)

// Label is the upper-case name shown in the title and status line.
func (m Mode) Label() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case InsertMode:
		return "INSERT"
	case DebugMode:
		return "DEBUG"
	}
	return "NULL"
}

// EditorMode is one state of the modal state machine.
type EditorMode interface {
	Name() Mode
	// HandleKey processes a key press against the editor's document and cursor.
	HandleKey(editor Editor, doc *Document, key KeyEvent) *Error
	Enter(editor Editor) // Called when entering the mode
	Exit(editor Editor)  // Called when exiting the mode
}
