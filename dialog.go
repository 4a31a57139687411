// Package filedialog provides a file dialog popup for terminal
// applications. The dialog browses one directory at a time, filters
// files by pattern, and reports the picked absolute paths to the host.
//
// A host creates a [Dialog] with [New], feeds it key messages through
// [Dialog.Dispatch], draws it with [Dialog.View], and polls
// [Dialog.SelectedFiles] once per update to learn about completed
// picks.
package filedialog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a closed dialog from cfg. It fails if the starting
// directory can't be resolved or read; no dialog is returned in that
// case.
func New(cfg Config) (*Dialog, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	currentDir, err := canonicalize(dir)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}

	d := &Dialog{
		id:         nextID(),
		width:      clampPercent(cfg.Width),
		height:     clampPercent(cfg.Height),
		filter:     cfg.Filter,
		showHidden: cfg.ShowHidden,
		multi:      cfg.MultiSelection,
		showHints:  cfg.ShowHints,
		sel:        newSelection(),
		keys:       newKeyMap(),
	}
	d.log = logger.WithField("dialog", d.id)

	entries, err := scan(currentDir, d.filter, d.showHidden)
	if err != nil {
		return nil, err
	}

	d.commit(currentDir, entries)

	return d, nil
}

func clampPercent(p int) int {
	return max(0, min(100, p))
}

// canonicalize turns path into an absolute path with all symlinks
// resolved.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", newIOError(opCanonicalize, path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", newIOError(opCanonicalize, path, err)
	}

	return resolved, nil
}

// commit makes a successfully scanned directory the dialog's state.
// Nothing may call it with a listing whose scan failed.
func (d *Dialog) commit(dir string, entries []string) {
	d.log.WithFields(logrus.Fields{"dir": dir, "entries": len(entries)}).Debug("listing committed")

	d.currentDir = dir
	d.items = entries
	d.sel.reset()
	d.sel.moveNext(len(d.items))
}

// navigate scans dir and, only if that works, switches to it.
func (d *Dialog) navigate(dir string) error {
	entries, err := scan(dir, d.filter, d.showHidden)
	if err != nil {
		d.log.WithError(err).Warn("scan failed, keeping current listing")
		return err
	}

	d.commit(dir, entries)

	return nil
}

// Open opens the dialog in its current directory, starting a fresh
// session: previous selections and any uncollected result are
// dropped, and the cursor is unset.
func (d *Dialog) Open() {
	d.sel.reset()
	d.pending = false
	d.open = true
}

// Close closes the dialog. Closing a multi-selection dialog completes
// the session, so that [Dialog.SelectedFiles] reports whatever was
// marked, even if that is nothing.
func (d *Dialog) Close() {
	if d.open && d.multi {
		d.pending = true
	}

	d.open = false
}

func (d *Dialog) IsOpen() bool {
	return d.open
}

// MoveNext moves the cursor one row down.
func (d *Dialog) MoveNext() {
	d.sel.moveNext(len(d.items))
}

// MovePrevious moves the cursor one row up.
func (d *Dialog) MovePrevious() {
	d.sel.movePrevious()
}

// MoveFirst moves the cursor to the ".." row.
func (d *Dialog) MoveFirst() {
	d.sel.moveFirst(len(d.items))
}

// MoveLast moves the cursor to the last row.
func (d *Dialog) MoveLast() {
	d.sel.moveLast(len(d.items))
}

// ToggleSelection marks or unmarks the row under the cursor. It only
// does something in multi-selection mode; in single-selection mode
// use [Dialog.Select]. The ".." row can't be marked.
func (d *Dialog) ToggleSelection() {
	if !d.multi || d.sel.cursor == 0 {
		return
	}

	d.sel.toggleCurrent(len(d.items))
}

// Select acts on the row under the cursor. A directory, including
// "..", is entered. A file is marked, or unmarked if it already was;
// in single-selection mode this also closes the dialog, leaving the
// file for [Dialog.SelectedFiles].
//
// If the cursor is unset, Select only positions it. Select does
// nothing while the dialog is closed.
func (d *Dialog) Select() error {
	if !d.open {
		return nil
	}

	if d.sel.cursor == noCursor {
		d.MoveNext()
		return nil
	}

	entry := d.items[d.sel.cursor]
	if entry == parentEntry {
		return d.navigate(filepath.Dir(d.currentDir))
	}

	path := d.entryPath(entry)

	info, err := os.Stat(path)
	if err != nil {
		d.log.WithError(err).Warn("entry vanished")
		return newIOError(opStat, path, err)
	}

	if !info.IsDir() {
		d.sel.toggleCurrent(len(d.items))
		d.log.WithField("file", path).Debug("file toggled")

		if !d.multi {
			d.pending = true
			d.open = false
		}

		return nil
	}

	target, err := canonicalize(path)
	if err != nil {
		return err
	}

	return d.navigate(target)
}

// Up moves to the parent directory. At the filesystem root it does
// nothing.
func (d *Dialog) Up() error {
	parent := filepath.Dir(d.currentDir)
	if parent == d.currentDir {
		return nil
	}

	return d.navigate(parent)
}

// SetDir switches the dialog to dir.
func (d *Dialog) SetDir(dir string) error {
	target, err := canonicalize(dir)
	if err != nil {
		return err
	}

	return d.navigate(target)
}

// SetFilter replaces the file filter and rescans the current
// directory. The filter is left unchanged if the rescan fails.
func (d *Dialog) SetFilter(p FilePattern) error {
	return d.rescan(&p, d.showHidden)
}

// ResetFilter removes the file filter and rescans the current
// directory.
func (d *Dialog) ResetFilter() error {
	return d.rescan(nil, d.showHidden)
}

// ToggleShowHidden flips whether entries starting with a dot are
// listed, and rescans the current directory. The flag is left
// unchanged if the rescan fails.
func (d *Dialog) ToggleShowHidden() error {
	return d.rescan(d.filter, !d.showHidden)
}

func (d *Dialog) rescan(filter *FilePattern, showHidden bool) error {
	entries, err := scan(d.currentDir, filter, showHidden)
	if err != nil {
		d.log.WithError(err).Warn("rescan failed, keeping current settings")
		return err
	}

	d.filter = filter
	d.showHidden = showHidden
	d.commit(d.currentDir, entries)

	return nil
}

// SelectedFiles returns the absolute paths picked in the last
// session, in listing order, and forgets them. It reports false while
// the dialog is open, and when there is no result to collect, such as
// after a single-selection dialog was closed without a pick.
//
// Hosts call this once per update.
func (d *Dialog) SelectedFiles() ([]string, bool) {
	if d.open || !d.pending {
		return nil, false
	}

	indices := d.sel.indices()
	files := make([]string, 0, len(indices))
	for _, i := range indices {
		files = append(files, d.entryPath(d.items[i]))
	}

	clear(d.sel.chosen)
	d.pending = false

	d.log.WithField("files", files).Debug("selection collected")

	return files, true
}

// entryPath is the absolute path of a listing entry other than "..".
func (d *Dialog) entryPath(entry string) string {
	return filepath.Join(d.currentDir, strings.TrimSuffix(entry, "/"))
}

// CurrentDir returns the absolute path of the directory being
// browsed.
func (d *Dialog) CurrentDir() string {
	return d.currentDir
}

// Items returns a copy of the current listing.
func (d *Dialog) Items() []string {
	return slices.Clone(d.items)
}

// Cursor returns the row under the cursor; ok is false when the
// cursor is unset.
func (d *Dialog) Cursor() (row int, ok bool) {
	return d.sel.cursor, d.sel.cursor != noCursor
}

func (d *Dialog) IsSelected(row int) bool {
	return d.sel.isChosen(row)
}

func (d *Dialog) MultiSelection() bool {
	return d.multi
}

func (d *Dialog) ShowHidden() bool {
	return d.showHidden
}

// Filter returns the active file filter, or nil.
func (d *Dialog) Filter() *FilePattern {
	return d.filter
}

// Width returns the popup width in percent.
func (d *Dialog) Width() int {
	return d.width
}

// Height returns the popup height in percent.
func (d *Dialog) Height() int {
	return d.height
}
