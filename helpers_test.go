package filedialog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// newTree creates the given paths under a fresh temporary directory
// and returns its canonical path. Paths ending in a slash become
// directories, the rest empty files.
func newTree(t *testing.T, paths ...string) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	for _, p := range paths {
		full := filepath.Join(root, p)
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}

	return root
}

func newDialog(t *testing.T, cfg Config) *Dialog {
	t.Helper()

	d, err := New(cfg)
	require.NoError(t, err)

	return d
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
)
