package filedialog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternMatchName(t *testing.T) {
	glob, err := Glob("report-[0-9]*.md")
	require.NoError(t, err)

	tests := []struct {
		name    string
		pattern FilePattern
		file    string
		want    bool
	}{
		{"extension", Extension("toml"), "Cargo.toml", true},
		{"extension ignores case", Extension("TOML"), "cargo.Toml", true},
		{"extension with dot", Extension(".toml"), "a.toml", true},
		{"extension is the last one", Extension("gz"), "a.tar.gz", true},
		{"extension mismatch", Extension("toml"), "a.txt", false},
		{"extension suffix without dot", Extension("toml"), "atoml", false},
		{"leading dot is no extension", Extension("bashrc"), ".bashrc", false},
		{"substring", Substring("note"), "my-notes.txt", true},
		{"substring is case sensitive", Substring("Note"), "my-notes.txt", false},
		{"glob", glob, "report-2024.md", true},
		{"glob mismatch", glob, "report-draft.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.matchName(tt.file))
		})
	}
}

func TestPatternMatchesDirectories(t *testing.T) {
	root := newTree(t, "sub.d/", "a.txt")

	p := Extension("toml")
	assert.True(t, p.Matches(filepath.Join(root, "sub.d")))
	assert.False(t, p.Matches(filepath.Join(root, "a.txt")))
	assert.True(t, Extension("txt").Matches(filepath.Join(root, "a.txt")))
}

func TestGlobInvalid(t *testing.T) {
	_, err := Glob("[unclosed")
	assert.Error(t, err)
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("")
	require.NoError(t, err)
	assert.Nil(t, p)

	for _, s := range []string{"ext:toml", "sub:notes", "glob:*.go"} {
		p, err := ParsePattern(s)
		require.NoError(t, err, s)
		require.NotNil(t, p)
		assert.Equal(t, s, p.String())
	}

	p, err = ParsePattern("md")
	require.NoError(t, err)
	assert.Equal(t, "ext:md", p.String())

	_, err = ParsePattern("regex:.*")
	assert.Error(t, err)

	_, err = ParsePattern("glob:[")
	assert.Error(t, err)
}
