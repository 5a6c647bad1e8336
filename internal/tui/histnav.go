package tui

// histnav.go — up/down arrow cycling through submitted commands.
//
// A cursor walks the command log most-recent-first; the in-progress input is
// snapshotted on the first step up and restored when stepping back past the
// newest entry. Navigation resets whenever the log grows, so it always starts
// fresh after a submission. Nothing persists between sessions.

// Navigator steps through a command log. The zero cursor state is -1,
// meaning "not navigating".
type Navigator struct {
	cursor   int
	snapshot string
	logLen   int
}

// NewNavigator returns a navigator in the fresh-input position.
func NewNavigator() *Navigator {
	return &Navigator{cursor: -1}
}

// Up moves to the previous (older) command, clamped at the oldest. The first
// step saves currentInput so Down can restore it later.
func (n *Navigator) Up(log []string, currentInput string) string {
	n.sync(log)
	if len(log) == 0 {
		return currentInput
	}
	if n.cursor == -1 {
		n.snapshot = currentInput
		n.cursor = len(log) - 1
	} else if n.cursor > 0 {
		n.cursor--
	}
	return log[n.cursor]
}

// Down moves to the next (newer) command. Stepping past the newest entry
// un-sets the cursor and restores the saved snapshot; Down while not
// navigating returns currentInput unchanged.
func (n *Navigator) Down(log []string, currentInput string) string {
	n.sync(log)
	if n.cursor == -1 {
		return currentInput
	}
	n.cursor++
	if n.cursor >= len(log) {
		n.cursor = -1
		return n.snapshot
	}
	return log[n.cursor]
}

// Reset returns to the fresh-input position.
func (n *Navigator) Reset() {
	n.cursor = -1
	n.snapshot = ""
}

// sync resets navigation when the log grew since the last call.
func (n *Navigator) sync(log []string) {
	if len(log) != n.logLen {
		n.logLen = len(log)
		n.Reset()
	}
}
