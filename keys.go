package filedialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func newKeyMap() keyMap {
	return keyMap{
		close:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next line")),
		up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous line")),
		beginning:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "go to top of listing")),
		end:          key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "go to bottom of listing")),
		selectEntry:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		toggleSelect: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		parent:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "go to parent directory")),
		toggleHidden: key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "hide/show hidden files")),
	}
}

// hintKeys are the bindings summarized in the hint line. The space
// binding only shows up when it does something.
func (k keyMap) hintKeys(multi bool) []key.Binding {
	if multi {
		return []key.Binding{k.toggleSelect, k.selectEntry, k.close}
	}

	return []key.Binding{k.selectEntry, k.close}
}

// ShortHelp implements [help.KeyMap].
func (k keyMap) ShortHelp() []key.Binding {
	return k.hintKeys(true)
}

// FullHelp implements [help.KeyMap].
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.down, k.up, k.beginning, k.end},
		{k.selectEntry, k.toggleSelect, k.parent, k.toggleHidden, k.close},
	}
}

// Dispatch hands one message to the dialog.
//
// While the dialog is open, every key message is consumed: keys with
// a binding run their action, the rest are ignored. Other messages,
// such as window resizes, are always passed through, as is everything
// while the dialog is closed. The host handles passed-through
// messages itself, and may open the dialog in response.
//
// The error is whatever the triggered action returned; the dialog
// keeps its last good state in that case.
func (d *Dialog) Dispatch(msg tea.Msg) (Result, error) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !d.open || !ok {
		return Result{Kind: PassThrough, Msg: msg}, nil
	}

	return Result{Kind: Consumed}, d.handleKey(keyMsg)
}

func (d *Dialog) handleKey(msg tea.KeyMsg) error {
	switch {
	case key.Matches(msg, d.keys.close):
		d.Close()

	case key.Matches(msg, d.keys.down):
		d.MoveNext()

	case key.Matches(msg, d.keys.up):
		d.MovePrevious()

	case key.Matches(msg, d.keys.beginning):
		d.MoveFirst()

	case key.Matches(msg, d.keys.end):
		d.MoveLast()

	case key.Matches(msg, d.keys.selectEntry):
		return d.Select()

	case key.Matches(msg, d.keys.toggleSelect):
		d.ToggleSelection()

	case key.Matches(msg, d.keys.parent):
		return d.Up()

	case key.Matches(msg, d.keys.toggleHidden):
		return d.ToggleShowHidden()

	default:
		d.log.WithField("key", msg.String()).Debug("unbound key ignored")
	}

	return nil
}

// BindKeys dispatches msg to d, and hands it to host if the dialog
// passed it through. It returns the host's command, if any.
func BindKeys(d *Dialog, msg tea.Msg, host func(tea.Msg) tea.Cmd) (tea.Cmd, error) {
	res, err := d.Dispatch(msg)
	if err != nil {
		return nil, err
	}

	if res.Kind == PassThrough && host != nil {
		return host(res.Msg), nil
	}

	return nil, nil
}
