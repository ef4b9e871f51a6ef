package core

import (
	"iter"
	"time"
)

// Position represents a specific location in the document
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (rune position in the line)
}

// Editor represents the main editor interface
type Editor interface {
	// Document and cursor
	GetDocument() *Document
	SetContent(text string) // Replace the document with parsed text
	GetCursor() Cursor
	SetCursor(Cursor) // Clamped to the document

	// Mode handling
	GetMode() EditorMode
	SetNormalMode()
	SetInsertMode()
	SetDebugMode()
	ToggleDebugMode()

	// Event handling
	HandleKey(key KeyEvent) error // Process a key press

	// State management
	GetState() State
	SetState(State)
	UpdateStatus(string)
	Options() Options

	// Collaborators
	Save()                               // Serialize the document and emit a SaveSignal
	Quit()                               // Signal to quit the editor
	YankLine() error                     // Copy the current line to the clipboard
	PutLines() error                     // Insert clipboard text below the current line
	Narrate(text string)                 // Hand text to the narrator (debug mode)
	GetUpdateSignalChan() <-chan Signal  // For UI updates
	DispatchError(id ErrorId, err error) // Dispatch errors to consumers
	DispatchMessage(args ...string)      // Dispatch (success) messages to consumers
	DispatchSignal(signal Signal)        // Dispatch signals to consumers

	// Projection
	View() iter.Seq[Row]
	Title(elapsed time.Duration) string

	IsNormalMode() bool
	IsInsertMode() bool
	IsDebugMode() bool
}

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// Narrator voices text while the editor is in debug mode.
type Narrator interface {
	Narrate(text string) error
}
