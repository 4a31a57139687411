// Package tcellkey translates tcell key events into the bubbletea key
// messages a filedialog.Dialog dispatches on, so that the dialog can
// be driven from a plain tcell event loop.
package tcellkey

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
)

var special = map[tcell.Key]tea.KeyType{
	tcell.KeyEnter:     tea.KeyEnter,
	tcell.KeyEscape:    tea.KeyEsc,
	tcell.KeyUp:        tea.KeyUp,
	tcell.KeyDown:      tea.KeyDown,
	tcell.KeyLeft:      tea.KeyLeft,
	tcell.KeyRight:     tea.KeyRight,
	tcell.KeyHome:      tea.KeyHome,
	tcell.KeyEnd:       tea.KeyEnd,
	tcell.KeyPgUp:      tea.KeyPgUp,
	tcell.KeyPgDn:      tea.KeyPgDown,
	tcell.KeyTab:       tea.KeyTab,
	tcell.KeyBackspace: tea.KeyBackspace,
	tcell.KeyDelete:    tea.KeyDelete,
	tcell.KeyCtrlC:     tea.KeyCtrlC,
	tcell.KeyCtrlO:     tea.KeyCtrlO,
}

// Convert returns the key message equivalent to ev. It reports false
// for keys with no counterpart here.
func Convert(ev *tcell.EventKey) (tea.KeyMsg, bool) {
	alt := ev.Modifiers()&tcell.ModAlt != 0

	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}, Alt: alt}, true
		}

		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ev.Rune()}, Alt: alt}, true
	}

	t, ok := special[ev.Key()]
	if !ok {
		return tea.KeyMsg{}, false
	}

	return tea.KeyMsg{Type: t, Alt: alt}, true
}
