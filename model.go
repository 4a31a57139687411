package filedialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	forceQuit  = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model runs a [Dialog] as a program of its own: the dialog is open
// from the start, and the program quits as soon as it closes.
type Model struct {
	// The Selected field holds the picked paths once the program
	// has finished. It stays nil if the dialog was closed without
	// a pick, or the program was aborted.
	Selected []string

	// The Err field is the error of the last action, if it
	// failed. It is shown below the dialog until the next key.
	Err error

	dialog *Dialog

	width, height int

	// The quitting flag signals that we're about to send
	// [tea.Quit], so that [Model.View] can return an empty string.
	// This prevents a stale UI from lingering on after exit.
	quitting bool
}

// NewModel creates a dialog from cfg and opens it.
func NewModel(cfg Config) (Model, error) {
	d, err := New(cfg)
	if err != nil {
		return Model{}, err
	}

	d.Open()

	return Model{dialog: d}, nil
}

// Dialog returns the underlying dialog.
func (m Model) Dialog() *Dialog {
	return m.dialog
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	_, err := m.dialog.Dispatch(msg)
	m.Err = err

	if m.dialog.IsOpen() {
		return m, nil
	}

	if files, ok := m.dialog.SelectedFiles(); ok {
		m.Selected = files
	}

	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.dialog.View(m.width, m.height)
	if m.Err != nil {
		view = lipgloss.JoinVertical(lipgloss.Left, view, errorStyle.Render(m.Err.Error()))
	}

	return view
}
