// Package earlyinit must be imported before github.com/charmbracelet/bubbletea
// in cmd/termfolio/main.go. Its init pre-sets lipgloss's dark-background flag
// so bubbletea's own init finds the value cached and never sends the OSC 11
// terminal colour query.
//
// Without this, on WSL2 the cursor-position response arrives before the OSC 11
// response, termenv gives up on OSC, and the colour reply bytes land in the
// PTY buffer where bubbletea reads them as keystrokes. The session would open
// with garbage in the input line. The light theme still renders fine on a
// dark-background assumption; lipgloss only uses the flag to pick adaptive
// colours, and every theme here sets explicit ones.
package earlyinit

import "github.com/charmbracelet/lipgloss"

func init() {
	lipgloss.SetHasDarkBackground(true)
}
