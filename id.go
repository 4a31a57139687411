package filedialog

import "sync/atomic"

var dialogCount atomic.Int64

// nextID numbers dialogs in creation order, so that several of them
// can be told apart in a shared log.
func nextID() int {
	return int(dialogCount.Add(1))
}
