package bubble_adapter

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/ionut-t/tedit/core"
)

// KeyMap lists the editor's fixed bindings. ForceQuit and ToggleHelp are
// handled by the adapter; the rest are interpreted by the core modes and only
// exist here so the help line can describe them.
type KeyMap struct {
	ForceQuit  key.Binding
	ToggleHelp key.Binding

	Move   key.Binding
	Insert key.Binding
	Save   key.Binding
	Quit   key.Binding
	Yank   key.Binding
	Put    key.Binding

	Normal    key.Binding
	Newline   key.Binding
	Backspace key.Binding
	Debug     key.Binding
	Narrate   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),

		Move:   key.NewBinding(key.WithKeys("h", "j", "k", "l", "left", "down", "up", "right"), key.WithHelp("hjkl/←↓↑→", "move")),
		Insert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Save:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Yank:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank line")),
		Put:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "put below")),

		Normal:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal")),
		Newline:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open line")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		Debug:     key.NewBinding(key.WithKeys("f12"), key.WithHelp("f12", "toggle debug")),
		Narrate:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "narrate")),
	}
}

// modeHelp adapts the key map to help.KeyMap for the current mode.
type modeHelp struct {
	keys KeyMap
	mode core.Mode
}

var _ help.KeyMap = modeHelp{}

func (h modeHelp) ShortHelp() []key.Binding {
	switch h.mode {
	case core.InsertMode:
		return []key.Binding{h.keys.Normal, h.keys.Debug}
	case core.DebugMode:
		return []key.Binding{h.keys.Normal, h.keys.Debug, h.keys.Narrate}
	default:
		return []key.Binding{h.keys.Insert, h.keys.Save, h.keys.Quit, h.keys.ToggleHelp}
	}
}

func (h modeHelp) FullHelp() [][]key.Binding {
	switch h.mode {
	case core.InsertMode, core.DebugMode:
		return [][]key.Binding{
			{h.keys.Move, h.keys.Newline, h.keys.Backspace},
			{h.keys.Normal, h.keys.Debug, h.keys.Narrate},
			{h.keys.ForceQuit},
		}
	default:
		return [][]key.Binding{
			{h.keys.Move, h.keys.Insert},
			{h.keys.Save, h.keys.Quit, h.keys.ForceQuit},
			{h.keys.Yank, h.keys.Put, h.keys.ToggleHelp},
		}
	}
}
