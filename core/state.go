package core

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"strings"
	"time"
)

// State represents the observable state of the editor
type State struct {
	Mode       Mode   // Current editing mode
	StatusLine string // Content of the status line
	Path       string // File backing the document, empty for an unnamed buffer
	Quit       bool   // Flag indicating if the editor should exit
}

// Options tune behaviour that has more than one reasonable answer.
type Options struct {
	VerticalMotion VerticalPolicy
	// StripPlaceholderOnSave removes every placeholder glyph from the saved
	// text, matching files written by older builds.
	StripPlaceholderOnSave bool
	ShowLineNumbers        bool
}

func DefaultOptions() Options {
	return Options{
		VerticalMotion:  VerticalPreserve,
		ShowLineNumbers: true,
	}
}

// InitialState creates a default state
func InitialState() State {
	return State{
		Mode:       NormalMode,
		StatusLine: "-- NORMAL --",
	}
}

// editor is the single editing session: it exclusively owns the document,
// the cursor and the current mode.
type editor struct {
	document    *Document
	cursor      Cursor
	currentMode EditorMode
	modes       map[Mode]EditorMode
	state       State
	options     Options

	clipboard    Clipboard
	narrator     Narrator
	updateSignal chan Signal
}

// Option configures an editor built by New.
type Option func(*editor)

func WithClipboard(c Clipboard) Option { return func(e *editor) { e.clipboard = c } }

func WithNarrator(n Narrator) Option { return func(e *editor) { e.narrator = n } }

func WithOptions(o Options) Option { return func(e *editor) { e.options = o } }

// New creates a new editor instance holding an empty document
func New(opts ...Option) Editor {
	e := &editor{
		document:     NewDocument(),
		modes:        make(map[Mode]EditorMode),
		state:        InitialState(),
		options:      DefaultOptions(),
		narrator:     LogNarrator{},
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}

	for _, opt := range opts {
		opt(e)
	}
	if !e.options.VerticalMotion.Valid() {
		e.options.VerticalMotion = VerticalPreserve
	}

	e.modes[NormalMode] = NewNormalMode()
	e.modes[InsertMode] = NewInsertMode()
	e.modes[DebugMode] = NewDebugMode()

	e.currentMode = e.modes[NormalMode]
	e.currentMode.Enter(e)

	return e
}

func (e *editor) setMode(modeName Mode) error {
	newMode, ok := e.modes[modeName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidMode, modeName)
	}

	if e.currentMode != nil {
		e.currentMode.Exit(e)
	}

	e.currentMode = newMode
	e.state.Mode = modeName
	e.currentMode.Enter(e)
	e.DispatchSignal(ModeSignal{mode: modeName})

	return nil
}

func (e *editor) SetNormalMode() {
	e.setMode(NormalMode)
}

func (e *editor) SetInsertMode() {
	e.setMode(InsertMode)
}

func (e *editor) SetDebugMode() {
	e.setMode(DebugMode)
}

// ToggleDebugMode flips between insert and debug. It has no effect in normal mode.
func (e *editor) ToggleDebugMode() {
	switch e.state.Mode {
	case InsertMode:
		e.SetDebugMode()
		e.DispatchMessage(DebugEnabledMsg)
	case DebugMode:
		e.SetInsertMode()
		e.DispatchMessage(DebugDisabledMsg)
	case NormalMode:
	}
}

func (e *editor) GetDocument() *Document {
	return e.document
}

// SetContent replaces the document and moves the cursor to the top.
func (e *editor) SetContent(text string) {
	e.document = Parse(text)
	e.cursor = Cursor{}
}

func (e *editor) GetCursor() Cursor {
	return e.cursor
}

// SetCursor installs the cursor after clamping it to the document.
func (e *editor) SetCursor(cursor Cursor) {
	cursor.clamp(e.document)
	e.cursor = cursor
}

func (e *editor) GetMode() EditorMode {
	return e.currentMode
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal
}

func (e *editor) HandleKey(key KeyEvent) error {
	if e.currentMode == nil {
		return NewError(ErrInvalidModeId, ErrInvalidMode)
	}

	if err := e.currentMode.HandleKey(e, e.document, key); err != nil {
		return err
	}

	return nil
}

func (e *editor) GetState() State {
	return e.state
}

func (e *editor) SetState(state State) {
	e.state = state
}

func (e *editor) UpdateStatus(status string) {
	e.state.StatusLine = status
}

func (e *editor) Options() Options {
	return e.options
}

// Save serializes the document and hands it to consumers through a SaveSignal.
// Writing the file is the consumer's job.
func (e *editor) Save() {
	content := e.document.Serialize()
	if e.options.StripPlaceholderOnSave {
		content = strings.ReplaceAll(content, string(Placeholder), "")
	}

	signal := SaveSignal{content: content}

	select {
	case e.updateSignal <- signal:
	default:
		log.Println("Editor: Failed to send SaveSignal - channel full or not ready")
	}
}

func (e *editor) Quit() {
	e.state.Quit = true
	select {
	case e.updateSignal <- QuitSignal{}:
	default:
		log.Println("Editor: Failed to send QuitSignal - channel full or not ready")
	}
}

func (e *editor) YankLine() error {
	if e.clipboard == nil {
		return ErrClipboardUnavailable
	}

	content := string(e.document.Line(e.cursor.Position.Row)) + "\n"
	if err := e.clipboard.Write(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	e.DispatchSignal(YankSignal{content: content})
	return nil
}

// PutLines inserts the clipboard text as whole lines below the cursor and
// moves the cursor to the first inserted line.
func (e *editor) PutLines() error {
	if e.clipboard == nil {
		return ErrClipboardUnavailable
	}

	content, err := e.clipboard.Read()
	if err != nil {
		return fmt.Errorf("failed to read clipboard: %w", err)
	}
	if content == "" {
		return ErrEmptyClipboard
	}

	lines := Parse(content).Lines()
	row := e.cursor.Position.Row
	if err := e.document.InsertLinesAfter(row, lines...); err != nil {
		return err
	}

	e.SetCursor(Cursor{Position: Position{Row: row + 1}})
	e.DispatchSignal(PasteSignal{totalLines: len(lines)})
	return nil
}

func (e *editor) Narrate(text string) {
	if e.narrator == nil {
		return
	}
	if err := e.narrator.Narrate(text); err != nil {
		e.DispatchError(ErrNarrationFailedId, fmt.Errorf("narration failed: %w", err))
	}
}

func (e *editor) View() iter.Seq[Row] {
	return Project(e.document, e.cursor, ProjectOptions{LineNumbers: e.options.ShowLineNumbers})
}

func (e *editor) Title(elapsed time.Duration) string {
	return Title(e.state, e.cursor, elapsed)
}

func (e *editor) IsNormalMode() bool {
	return e.state.Mode == NormalMode
}

func (e *editor) IsInsertMode() bool {
	return e.state.Mode == InsertMode
}

func (e *editor) IsDebugMode() bool {
	return e.state.Mode == DebugMode
}

// LogNarrator writes narration to the standard logger.
type LogNarrator struct{}

func (LogNarrator) Narrate(text string) error {
	if text == "" {
		return errors.New("nothing to narrate")
	}
	log.Printf("narrate: %q", text)
	return nil
}
