package filedialog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

type patternKind int

const (
	extensionPattern patternKind = iota
	substringPattern
	globPattern
)

// FilePattern restricts which files appear in a listing. Directories
// are never filtered out.
//
// A FilePattern is built with [Extension], [Substring] or [Glob]; the
// zero value is an extension pattern matching files with no
// extension, which is rarely what one wants.
type FilePattern struct {
	kind  patternKind
	value string

	// compiled is only set for glob patterns.
	compiled glob.Glob
}

// Extension matches files by extension, ignoring case. A leading dot
// in ext is ignored, so "toml" and ".toml" are equivalent.
func Extension(ext string) FilePattern {
	return FilePattern{kind: extensionPattern, value: strings.TrimPrefix(ext, ".")}
}

// Substring matches files whose name contains substr. The match is
// case sensitive.
func Substring(substr string) FilePattern {
	return FilePattern{kind: substringPattern, value: substr}
}

// Glob matches the file name against a shell-style glob, such as
// "*.go" or "report-[0-9]*".
func Glob(pattern string) (FilePattern, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return FilePattern{}, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}

	return FilePattern{kind: globPattern, value: pattern, compiled: g}, nil
}

// ParsePattern builds a pattern from its textual form: "ext:toml",
// "sub:notes" or "glob:*.md". A bare value with no prefix is taken as
// an extension. The empty string yields a nil pattern, meaning no
// filter.
func ParsePattern(s string) (*FilePattern, error) {
	if s == "" {
		return nil, nil
	}

	kind, value, found := strings.Cut(s, ":")
	if !found {
		p := Extension(s)
		return &p, nil
	}

	var p FilePattern
	switch kind {
	case "ext":
		p = Extension(value)
	case "sub":
		p = Substring(value)
	case "glob":
		g, err := Glob(value)
		if err != nil {
			return nil, err
		}
		p = g
	default:
		return nil, fmt.Errorf("unknown pattern kind %q in %q", kind, s)
	}

	return &p, nil
}

// String returns the pattern in the form understood by
// [ParsePattern].
func (p FilePattern) String() string {
	switch p.kind {
	case substringPattern:
		return "sub:" + p.value
	case globPattern:
		return "glob:" + p.value
	default:
		return "ext:" + p.value
	}
}

// Matches reports whether the file at path passes the filter. It
// always returns true for directories, following symlinks.
func (p FilePattern) Matches(path string) bool {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return true
	}

	return p.matchName(filepath.Base(path))
}

// matchName applies the pattern to a bare file name, without touching
// the filesystem. The scanner uses this since it already knows which
// children are directories.
func (p FilePattern) matchName(name string) bool {
	switch p.kind {
	case extensionPattern:
		ext, ok := extension(name)
		return ok && strings.EqualFold(ext, p.value)
	case substringPattern:
		return strings.Contains(name, p.value)
	case globPattern:
		return p.compiled != nil && p.compiled.Match(name)
	}

	return false
}

// extension returns whatever follows the last dot of name. A name
// whose only dot is the leading one (".bashrc") has no extension.
func extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}

	return name[i+1:], true
}
