package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/ionut-t/tedit/adapter-bubbletea"
	"github.com/ionut-t/tedit/config"
	"github.com/ionut-t/tedit/core"
	"github.com/ionut-t/tedit/fileio"
)

const messageDuration = 3 * time.Second

type Model struct {
	editor editor.Model
	file   string
}

func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editor.SaveMsg:
		return m, m.save(msg.Content)
	}

	editorModel, cmd := m.editor.Update(msg)
	m.editor = editorModel.(editor.Model)

	return m, cmd
}

func (m Model) View() string {
	return m.editor.View()
}

func (m *Model) save(content string) tea.Cmd {
	if err := writeFile(m.file, content); err != nil {
		log.Printf("save: %v", err)
		return m.editor.DispatchError(err, messageDuration)
	}

	return m.editor.DispatchMessage(fmt.Sprintf("file saved to %s", m.file), messageDuration)
}

// writeFile stores content at path, tagging failures with the core error ids.
func writeFile(path, content string) *core.Error {
	if path == "" {
		return core.NewError(core.ErrNoFileNameId, core.ErrNoFileName)
	}
	if err := fileio.Save(path, content); err != nil {
		return core.NewError(core.ErrFailedToSaveId, err)
	}
	return nil
}

func themeFrom(t config.Theme) editor.Theme {
	theme := editor.DefaultTheme
	theme.BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border))
	theme.TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Title)).Bold(true)
	theme.LineNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.LineNumber))
	theme.CursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.CursorFg)).
		Background(lipgloss.Color(t.CursorBg))
	theme.MessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Message))
	theme.ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error))
	return theme
}

// newModel builds the program model for file, which may be empty for an
// unnamed buffer. A file that does not exist yet starts as an empty document.
func newModel(cfg config.Config, file string) (Model, error) {
	textEditor := editor.New(80, 20, core.WithOptions(cfg.EditorOptions()))
	textEditor.WithTheme(themeFrom(cfg.Theme))

	if file != "" {
		content, err := fileio.Load(file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Model{}, err
		}
		textEditor.SetContent(content)
		textEditor.SetPath(file)
	}

	return Model{editor: textEditor, file: file}, nil
}

func main() {
	configPath := flag.String("config", "", "path to the TOML config file")
	logPath := flag.String("log", "", "append debug logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tedit [-config path] [-log path] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			*configPath = p
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	if *logPath == "" {
		*logPath = cfg.LogFile
	}
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "tedit")
		if err != nil {
			log.Fatalf("Error opening log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := newModel(cfg, flag.Arg(0))
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Error loading file: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Error running Bubble Tea program: %v", err)
	}
}
