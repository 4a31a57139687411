package main

import (
	"fmt"
	"strings"

	"github.com/BrandonIrizarry/filedialog"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	openDialog = key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file dialog"))
	quit       = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit"))

	frameStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder())
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// app is a minimal host application: one panel listing the files
// picked so far, with the dialog drawn on top while open.
type app struct {
	dialog   *filedialog.Dialog
	selected []string
	status   string

	width, height int
}

func newApp(d *filedialog.Dialog) *app {
	return &app{dialog: d}
}

func (a *app) Init() tea.Cmd {
	return nil
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		a.status = ""
	}

	cmd, err := filedialog.BindKeys(a.dialog, msg, a.handle)
	if err != nil {
		a.status = err.Error()
	}

	if files, ok := a.dialog.SelectedFiles(); ok {
		a.selected = files
	}

	return a, cmd
}

// handle is the host's own event handler, reached only with messages
// the dialog passed through.
func (a *app) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, openDialog):
			a.dialog.Open()
		case key.Matches(msg, quit):
			return tea.Quit
		}
	}

	return nil
}

func (a *app) View() string {
	if a.dialog.IsOpen() {
		return a.dialog.View(a.width, a.height)
	}

	var view strings.Builder
	fmt.Fprintf(&view, "Selected files: %s\n\n", strings.Join(a.selected, ", "))
	fmt.Fprintf(&view, "%s: %s - %s: %s",
		openDialog.Help().Key, openDialog.Help().Desc,
		quit.Help().Key, quit.Help().Desc)

	if a.status != "" {
		view.WriteString("\n" + statusStyle.Render(a.status))
	}

	return frameStyle.
		Width(max(a.width-2, 0)).
		Height(max(a.height-2, 0)).
		Render(view.String())
}
