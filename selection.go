package filedialog

import (
	"maps"
	"slices"
)

// noCursor marks the cursor as unset. The first move after a reset
// positions it.
const noCursor = -1

// selection tracks the cursor and, in multi-selection mode, the set
// of chosen rows. It knows nothing about the filesystem: rows are
// plain indices into a listing of length n.
type selection struct {
	// The cursor field is the zero-indexed row under the cursor,
	// or [noCursor].
	cursor int

	// The chosen field holds the indices of the selected rows.
	chosen map[int]struct{}
}

func newSelection() selection {
	return selection{cursor: noCursor, chosen: make(map[int]struct{})}
}

// moveNext advances the cursor by one row. From an unset cursor it
// lands on the second row, skipping "..", when there is one.
func (s *selection) moveNext(n int) {
	if n == 0 {
		return
	}

	if s.cursor == noCursor {
		s.cursor = min(n-1, 1)
		return
	}

	s.cursor = min(n-1, s.cursor+1)
}

func (s *selection) movePrevious() {
	if s.cursor == noCursor {
		s.cursor = 0
		return
	}

	s.cursor = max(0, s.cursor-1)
}

func (s *selection) moveFirst(n int) {
	if n > 0 {
		s.cursor = 0
	}
}

func (s *selection) moveLast(n int) {
	if n > 0 {
		s.cursor = n - 1
	}
}

// toggleCurrent flips membership of the cursor's row. With an unset
// cursor it only positions the cursor, as [selection.moveNext] does.
func (s *selection) toggleCurrent(n int) {
	if s.cursor == noCursor {
		s.moveNext(n)
		return
	}

	if _, ok := s.chosen[s.cursor]; ok {
		delete(s.chosen, s.cursor)
	} else {
		s.chosen[s.cursor] = struct{}{}
	}
}

// reset clears the chosen rows and unsets the cursor.
func (s *selection) reset() {
	clear(s.chosen)
	s.cursor = noCursor
}

func (s *selection) isChosen(i int) bool {
	_, ok := s.chosen[i]
	return ok
}

// indices returns the chosen rows in ascending order.
func (s *selection) indices() []int {
	return slices.Sorted(maps.Keys(s.chosen))
}
