package filedialog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFilterAndSort(t *testing.T) {
	root := newTree(t, "a.toml", "b.txt", "sub/")

	filter := Extension("toml")
	entries, err := scan(root, &filter, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"..", "sub/", "a.toml"}, entries)
}

func TestScanHidden(t *testing.T) {
	root := newTree(t, ".git/", ".env", "zeta/", "alpha.txt", "beta/")

	entries, err := scan(root, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"..", "beta/", "zeta/", "alpha.txt"}, entries)

	for _, e := range entries[1:] {
		assert.False(t, strings.HasPrefix(e, "."), "hidden entry %q listed", e)
	}

	entries, err = scan(root, nil, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"..", ".git/", "beta/", "zeta/", ".env", "alpha.txt"}, entries)
}

func TestScanHiddenIgnoresFilter(t *testing.T) {
	root := newTree(t, ".hidden.toml", "shown.toml")

	filter := Extension("toml")
	entries, err := scan(root, &filter, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"..", "shown.toml"}, entries)
}

func TestScanEmptyDir(t *testing.T) {
	root := newTree(t)

	entries, err := scan(root, nil, false)
	require.NoError(t, err)

	assert.Equal(t, []string{".."}, entries)
}

func TestScanSymlinkToDir(t *testing.T) {
	root := newTree(t, "real/", "file.txt")
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	entries, err := scan(root, nil, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"..", "link/", "real/", "dangling", "file.txt"}, entries)
}

func TestScanFailure(t *testing.T) {
	root := newTree(t, "file.txt")

	_, err := scan(filepath.Join(root, "nope"), nil, false)
	require.Error(t, err)
	assert.True(t, IsIOError(err))

	entries, err := scan(filepath.Join(root, "file.txt"), nil, false)
	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestCompareEntries(t *testing.T) {
	entries := []string{"b.txt", "z/", "..", "a/", "A.txt", "c"}
	slices.SortFunc(entries, compareEntries)

	assert.Equal(t, []string{"..", "a/", "z/", "A.txt", "b.txt", "c"}, entries)
}
