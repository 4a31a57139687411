package filedialog

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchClosedPassesThrough(t *testing.T) {
	root := newTree(t, "a.txt")
	d := newDialog(t, Config{Dir: root})

	msg := runes("j")
	res, err := d.Dispatch(msg)
	require.NoError(t, err)

	assert.Equal(t, PassThrough, res.Kind)
	assert.Equal(t, msg, res.Msg)
}

func TestDispatchOpenConsumesKeys(t *testing.T) {
	root := newTree(t, "a.txt")
	d := newDialog(t, Config{Dir: root})
	d.Open()

	for _, msg := range []tea.KeyMsg{runes("x"), runes("j"), {Type: tea.KeyCtrlO}} {
		res, err := d.Dispatch(msg)
		require.NoError(t, err)
		assert.Equal(t, Consumed, res.Kind, msg.String())
		assert.Nil(t, res.Msg)
	}
}

func TestDispatchOpenPassesNonKeys(t *testing.T) {
	root := newTree(t, "a.txt")
	d := newDialog(t, Config{Dir: root})
	d.Open()

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	res, err := d.Dispatch(msg)
	require.NoError(t, err)

	assert.Equal(t, PassThrough, res.Kind)
	assert.Equal(t, msg, res.Msg)
}

func TestDispatchBindings(t *testing.T) {
	root := newTree(t, ".hidden", "a.txt", "b.txt", "c.txt", "sub/x.txt")

	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		cursor int
		dir    string
	}{
		{"j moves next", []tea.KeyMsg{runes("j"), runes("j")}, 2, root},
		{"down moves next", []tea.KeyMsg{downKey, downKey, downKey}, 3, root},
		{"k moves previous", []tea.KeyMsg{runes("j"), runes("j"), runes("k")}, 1, root},
		{"up moves previous", []tea.KeyMsg{upKey}, 0, root},
		{"G goes to the end", []tea.KeyMsg{runes("G")}, 4, root},
		{"g goes to the top", []tea.KeyMsg{runes("G"), runes("g")}, 0, root},
		{"enter explores", []tea.KeyMsg{enterKey, enterKey}, 1, filepath.Join(root, "sub")},
		{"u goes up", []tea.KeyMsg{enterKey, enterKey, runes("u")}, 1, root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDialog(t, Config{Dir: root})
			d.Open()

			for _, k := range tt.keys {
				_, err := d.Dispatch(k)
				require.NoError(t, err)
			}

			row, ok := d.Cursor()
			require.True(t, ok)
			assert.Equal(t, tt.cursor, row)
			assert.Equal(t, tt.dir, d.CurrentDir())
		})
	}
}

func TestDispatchClose(t *testing.T) {
	root := newTree(t, "a.txt")

	for _, k := range []tea.KeyMsg{runes("q"), escKey} {
		d := newDialog(t, Config{Dir: root})
		d.Open()

		_, err := d.Dispatch(k)
		require.NoError(t, err)
		assert.False(t, d.IsOpen(), k.String())
	}
}

func TestDispatchToggleHidden(t *testing.T) {
	root := newTree(t, ".git/", "a.txt")
	d := newDialog(t, Config{Dir: root})
	d.Open()

	_, err := d.Dispatch(runes("I"))
	require.NoError(t, err)

	assert.True(t, d.ShowHidden())
	assert.Equal(t, []string{"..", ".git/", "a.txt"}, d.Items())
}

func TestDispatchSpace(t *testing.T) {
	root := newTree(t, "a.txt", "b.txt")

	single := newDialog(t, Config{Dir: root})
	single.Open()
	for _, k := range []tea.KeyMsg{runes("j"), spaceKey} {
		_, err := single.Dispatch(k)
		require.NoError(t, err)
	}
	assert.True(t, single.IsOpen())
	assert.False(t, single.IsSelected(1))

	multi := newDialog(t, Config{Dir: root, MultiSelection: true})
	multi.Open()
	for _, k := range []tea.KeyMsg{runes("j"), spaceKey, runes("j"), spaceKey, runes("q")} {
		_, err := multi.Dispatch(k)
		require.NoError(t, err)
	}

	files, ok := multi.SelectedFiles()
	require.True(t, ok)
	assert.Equal(t, []string{filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt")}, files)
}

func TestDispatchReturnsErrors(t *testing.T) {
	root := newTree(t, "sub/")
	d := newDialog(t, Config{Dir: root})
	d.Open()

	_, err := d.Dispatch(runes("j"))
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "sub")))

	res, err := d.Dispatch(enterKey)
	assert.Equal(t, Consumed, res.Kind)
	assert.True(t, IsIOError(err))
	assert.True(t, d.IsOpen())
}

func TestBindKeys(t *testing.T) {
	root := newTree(t, "a.txt")
	d := newDialog(t, Config{Dir: root})

	var got []tea.Msg
	host := func(msg tea.Msg) tea.Cmd {
		got = append(got, msg)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlO {
			d.Open()
		}
		return nil
	}

	open := tea.KeyMsg{Type: tea.KeyCtrlO}
	_, err := BindKeys(d, open, host)
	require.NoError(t, err)
	require.True(t, d.IsOpen())

	_, err = BindKeys(d, runes("j"), host)
	require.NoError(t, err)

	assert.Equal(t, []tea.Msg{open}, got)
}
