package filedialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Config holds the construction-time settings of a [Dialog]. Only
// the filter and the hidden-file flag may change afterwards, through
// [Dialog.SetFilter], [Dialog.ResetFilter] and
// [Dialog.ToggleShowHidden].
type Config struct {
	// Width and Height are the size of the popup in percent of
	// the area it is drawn in. They are clamped to [0, 100].
	Width, Height int

	// Dir is the directory the dialog starts in. It defaults to
	// the current working directory.
	Dir string

	// Filter restricts which files are listed. Nil lists every
	// file.
	Filter *FilePattern

	ShowHidden bool

	// MultiSelection lets the user mark several files with the
	// space bar before closing the dialog. Without it, picking a
	// file closes the dialog straight away.
	MultiSelection bool

	// ShowHints renders a one-line summary of the key bindings
	// below the listing.
	ShowHints bool

	// Logger receives debug traces. Output is discarded when nil.
	Logger logrus.FieldLogger
}

// Dialog is the file dialog state machine. It is either open or
// closed, starts out closed, and may be opened again after closing.
//
// A Dialog is meant to be embedded in the host application's state
// and driven from a single goroutine.
type Dialog struct {
	// The id field distinguishes dialogs in log output.
	id int

	width, height int

	filter     *FilePattern
	showHidden bool
	multi      bool
	showHints  bool

	open bool

	// The pending field is set when a pick has been made that
	// [Dialog.SelectedFiles] hasn't handed to the host yet.
	pending bool

	// The currentDir field is the canonical absolute path of the
	// directory being browsed.
	currentDir string

	// The items field is the listing of currentDir, as produced
	// by scan. It always starts with "..".
	items []string

	sel selection

	keys keyMap
	log  logrus.FieldLogger
}

// keyMap defines key bindings for each dialog action.
type keyMap struct {
	close        key.Binding
	down         key.Binding
	up           key.Binding
	beginning    key.Binding
	end          key.Binding
	selectEntry  key.Binding
	toggleSelect key.Binding
	parent       key.Binding
	toggleHidden key.Binding
}

// ResultKind tells whether [Dialog.Dispatch] kept a message for
// itself.
type ResultKind int

const (
	// Consumed means the dialog handled the message; the host
	// must not act on it.
	Consumed ResultKind = iota

	// PassThrough means the dialog ignored the message, which is
	// returned for the host to handle.
	PassThrough
)

// Result is the outcome of [Dialog.Dispatch].
type Result struct {
	Kind ResultKind

	// Msg is the original message, set for [PassThrough] only.
	Msg tea.Msg
}
