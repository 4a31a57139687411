package filedialog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// parentEntry is the synthetic first entry of every listing, used to
// navigate to the parent directory. Having it means a listing is
// never empty, even for an empty directory.
const parentEntry = ".."

// scan reads the direct children of dir and returns them as display
// entries: directories carry a trailing slash, files are bare names.
// Hidden children (a leading '.') are skipped unless showHidden is
// set. Files are further restricted by filter, if there is one.
//
// The result always starts with [parentEntry], followed by
// directories and then files, each group in ascending order. On error
// no listing is returned at all, since [os.ReadDir] may hand back a
// partial one.
func scan(dir string, filter *FilePattern, showHidden bool) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newIOError(opReadDir, dir, err)
	}

	entries := []string{parentEntry}

	for _, d := range dirEntries {
		name := d.Name()

		if isHidden(name) && !showHidden {
			continue
		}

		if isDirEntry(dir, d) {
			entries = append(entries, name+"/")
			continue
		}

		if filter != nil && !filter.matchName(name) {
			continue
		}

		entries = append(entries, name)
	}

	slices.SortFunc(entries, compareEntries)

	return entries, nil
}

// isHidden only checks whether the name starts with a dot.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// isDirEntry reports whether d is a directory. Symlinks are resolved,
// so that a link to a directory can be entered like one. A dangling
// link counts as a file.
func isDirEntry(dir string, d os.DirEntry) bool {
	if d.Type()&os.ModeSymlink == 0 {
		return d.IsDir()
	}

	info, err := os.Stat(filepath.Join(dir, d.Name()))
	return err == nil && info.IsDir()
}

// compareEntries orders ".." first, then directories, then files;
// lexicographically within each group.
func compareEntries(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == parentEntry:
		return -1
	case b == parentEntry:
		return 1
	}

	aDir, bDir := isDirDisplay(a), isDirDisplay(b)
	switch {
	case aDir && !bDir:
		return -1
	case !aDir && bDir:
		return 1
	}

	return strings.Compare(a, b)
}

func isDirDisplay(entry string) bool {
	return strings.HasSuffix(entry, "/")
}
