package bubble_adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/ionut-t/tedit/core"
)

const messageDuration = 3 * time.Second

type Theme struct {
	BorderStyle      lipgloss.Style
	TitleStyle       lipgloss.Style
	LineNumberStyle  lipgloss.Style
	CursorStyle      lipgloss.Style
	PlaceholderStyle lipgloss.Style
	StatusLineStyle  lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
}

var DefaultTheme = Theme{
	BorderStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	TitleStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	LineNumberStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	CursorStyle:      lipgloss.NewStyle().Background(lipgloss.Color("250")).Foreground(lipgloss.Color("0")),
	PlaceholderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	StatusLineStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

type Model struct {
	editor    editor.Editor
	viewport  viewport.Model
	help      help.Model
	keys      KeyMap
	theme     Theme
	width     int
	height    int
	err       error
	message   string
	isFocused bool
	startTime time.Time
	now       func() time.Time
}

// SaveMsg carries the serialized document when the user writes the file.
type SaveMsg struct {
	Content string
}

type signalMsg struct {
	signal editor.Signal
}

type messageMsg string

type errMsg struct{ error }

type clearMsg struct{}

func (m *Model) dispatchClearMsg() tea.Cmd {
	return tea.Tick(messageDuration, func(t time.Time) tea.Msg {
		return clearMsg{}
	})
}

// New creates the adapter around a fresh core editor. The system clipboard is
// wired in unless opts override it.
func New(width, height int, opts ...editor.Option) Model {
	opts = append([]editor.Option{editor.WithClipboard(&atottoClipboard{})}, opts...)

	m := Model{
		editor:    editor.New(opts...),
		viewport:  viewport.New(width, height),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		theme:     DefaultTheme,
		isFocused: true,
		startTime: time.Now(),
		now:       time.Now,
	}

	m.SetSize(width, height)

	return m
}

// SetSize fits the frame, status line and help line into width x height cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-2, 1)
	m.viewport.Height = max(height-4, 1)
	m.help.Width = width
	m.renderContent()
}

// SetContent replaces the document with text.
func (m *Model) SetContent(text string) {
	m.editor.SetContent(text)
	m.viewport.SetYOffset(0)
	m.renderContent()
}

// SetPath records the file backing the document; it shows up in the title.
func (m *Model) SetPath(path string) {
	state := m.editor.GetState()
	state.Path = path
	m.editor.SetState(state)
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
	m.renderContent()
}

// GetCurrentContent returns the serialized document.
func (m *Model) GetCurrentContent() string {
	return m.editor.GetDocument().Serialize()
}

// GetEditor returns the underlying editor instance
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

func (m *Model) Focus() {
	m.isFocused = true
}

func (m *Model) Blur() {
	m.isFocused = false
}

func (m *Model) IsFocused() bool {
	return m.isFocused
}

// DispatchMessage shows msg on the status line for d.
func (m *Model) DispatchMessage(msg string, d time.Duration) tea.Cmd {
	m.message = msg
	m.err = nil
	return tea.Tick(d, func(time.Time) tea.Msg { return clearMsg{} })
}

// DispatchError shows err on the status line for d.
func (m *Model) DispatchError(err error, d time.Duration) tea.Cmd {
	m.message = ""
	m.err = err
	return tea.Tick(d, func(time.Time) tea.Msg { return clearMsg{} })
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		if !m.IsFocused() {
			break
		}

		if m.editor.IsNormalMode() && key.Matches(msg, m.keys.ToggleHelp) {
			m.help.ShowAll = !m.help.ShowAll
			break
		}

		if err := m.handleKeyMsg(msg); err != nil {
			m.message = ""
			m.err = err
			cmds = append(cmds, m.dispatchClearMsg())
		}

		if m.editor.GetState().Quit {
			return m, tea.Quit
		}

		m.renderContent()

	case signalMsg:
		cmds = append(cmds, m.handleSignal(msg.signal), m.listenForEditorUpdate())

	case messageMsg:
		m.message = string(msg)
		m.err = nil
		cmds = append(cmds, m.dispatchClearMsg())

	case errMsg:
		m.message = ""
		m.err = msg.error
		cmds = append(cmds, m.dispatchClearMsg())

	case clearMsg:
		m.message = ""
		m.err = nil
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	title := m.editor.Title(m.now().Sub(m.startTime))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(m.theme.BorderStyle.GetForeground()).
		Width(m.viewport.Width).
		Render(m.viewport.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.titleBar(title, m.viewport.Width+2),
		frame,
		m.statusLine(),
		m.help.View(modeHelp{keys: m.keys, mode: m.editor.GetState().Mode}),
	)
}

func (m *Model) statusLine() string {
	var line string
	switch {
	case m.err != nil:
		line = m.theme.ErrorStyle.Render(m.err.Error())
	case m.message != "":
		line = m.theme.MessageStyle.Render(m.message)
	default:
		line = m.theme.StatusLineStyle.Render(m.editor.GetState().StatusLine)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// listenForEditorUpdate waits for the next core signal. Exactly one listener
// is outstanding at a time; handling a signalMsg re-arms it.
func (m *Model) listenForEditorUpdate() tea.Cmd {
	updates := m.editor.GetUpdateSignalChan()
	return func() tea.Msg {
		return signalMsg{signal: <-updates}
	}
}

// handleSignal turns a core signal into the command that reports it.
func (m *Model) handleSignal(signal editor.Signal) tea.Cmd {
	switch signal := signal.(type) {
	case editor.SaveSignal:
		content := signal.Value()
		return func() tea.Msg { return SaveMsg{Content: content} }

	case editor.MessageSignal:
		_, message := signal.Value()
		return func() tea.Msg { return messageMsg(message) }

	case editor.ErrorSignal:
		_, err := signal.Value()
		return func() tea.Msg { return errMsg{err} }

	case editor.YankSignal:
		return func() tea.Msg { return messageMsg(editor.LineYankedMessage) }

	case editor.PasteSignal:
		total := signal.Value()
		message := "1 line pasted"
		if total != 1 {
			message = fmt.Sprintf("%d %s", total, editor.LinesPastedMessage)
		}
		return func() tea.Msg { return messageMsg(message) }
	}

	return nil
}

// handleKeyMsg feeds msg to the editor. A message carrying several runes, as a
// bracketed paste does, becomes one key event per rune and a pasted line break
// opens a new line below and moves onto it. Pasted text is never interpreted
// as normal-mode commands.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) error {
	if msg.Paste && m.editor.IsNormalMode() {
		return nil
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) <= 1 {
		return m.editor.HandleKey(convertBubbleKey(msg))
	}

	ev := convertBubbleKey(msg)
	for _, r := range msg.Runes {
		events := []editor.KeyEvent{{Rune: r, Modifiers: ev.Modifiers}}
		if r == '\n' {
			events = []editor.KeyEvent{{Key: editor.KeyEnter}, {Key: editor.KeyDown}}
		}

		for _, e := range events {
			if err := m.editor.HandleKey(e); err != nil {
				return err
			}
		}
	}

	return nil
}

// Convert Bubbletea key to editor.KeyEvent
func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	ev := editor.KeyEvent{}

	if len(msg.Runes) > 0 {
		ev.Rune = msg.Runes[0]
	}

	if msg.Alt {
		ev.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyEnter:
		ev.Key = editor.KeyEnter
	case tea.KeySpace:
		ev.Key = editor.KeySpace
		ev.Rune = ' '
	case tea.KeyEsc:
		ev.Key = editor.KeyEscape
	case tea.KeyBackspace:
		ev.Key = editor.KeyBackspace
	case tea.KeyTab:
		ev.Key = editor.KeyTab
		ev.Rune = '\t'
	case tea.KeyUp:
		ev.Key = editor.KeyUp
	case tea.KeyDown:
		ev.Key = editor.KeyDown
	case tea.KeyLeft:
		ev.Key = editor.KeyLeft
	case tea.KeyRight:
		ev.Key = editor.KeyRight
	case tea.KeyF1:
		ev.Key = editor.KeyF1
	case tea.KeyF12:
		ev.Key = editor.KeyF12
	case tea.KeyRunes:
	default:
		if strings.HasPrefix(msg.String(), "ctrl+") {
			ev.Modifiers |= editor.ModCtrl
		}
	}

	return ev
}
