package session

import (
	"sync"

	"github.com/google/uuid"
)

// Entry is one command/output pair in the visible transcript. Immutable once
// appended, except that the chat controller may patch the Output of the most
// recently appended entry while its stream is active (OutputAI only).
type Entry struct {
	ID      string
	Command string
	Output  Output
}

// ConfirmFlow tracks the staged theme-confirmation dialog.
// Stage 0 = inactive, 1 = "Really?", 2 = final warning.
type ConfirmFlow struct {
	Stage   int
	Visible bool
}

// Store owns all session-lifetime state: the transcript, the active theme,
// transient visual flags, and the chat-mode flag. Every other component
// mutates session state only through the methods here. Mutations can arrive
// from timer and stream goroutines, so all access is mutex-guarded.
//
// Nothing persists across runs; the store lives exactly as long as the
// process.
type Store struct {
	mu            sync.RWMutex
	entries       []Entry
	bootCompleted bool
	theme         string
	boost         bool
	glitch        bool
	chatMode      bool
	confirm       ConfirmFlow
}

// New creates an empty session store with the default theme.
func New() *Store {
	return &Store{theme: "matrix"}
}

// Append adds a new transcript entry and returns it. Empty commands are
// allowed: submitting a blank line still advances history.
func (s *Store) Append(command string, out Output) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := Entry{
		ID:      uuid.New().String()[:8],
		Command: command,
		Output:  out,
	}
	s.entries = append(s.entries, e)
	return e
}

// Clear empties the transcript. Flags, theme, and chat mode are untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// UpdateLastAI overwrites the content of the most recent entry, provided it
// is an ai entry. This is the single documented exception to append-only
// semantics. Returns false when the latest entry is not an ai entry (the
// stream lost ownership).
func (s *Store) UpdateLastAI(content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return false
	}
	last := &s.entries[len(s.entries)-1]
	if last.Output.Type != OutputAI {
		return false
	}
	last.Output.Content = content
	return true
}

// Entries returns a copy of the transcript in append order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Last returns the most recent entry, or false when the transcript is empty.
func (s *Store) Last() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of transcript entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Commands returns the non-empty submitted command strings, oldest first.
// This is the log the history navigator steps through.
func (s *Store) Commands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var cmds []string
	for _, e := range s.entries {
		if e.Command != "" {
			cmds = append(cmds, e.Command)
		}
	}
	return cmds
}

// SetBootCompleted marks the boot sequence as finished.
func (s *Store) SetBootCompleted(done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bootCompleted = done
}

// BootCompleted reports whether the boot sequence has finished.
func (s *Store) BootCompleted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bootCompleted
}

// SetTheme sets the active theme name.
func (s *Store) SetTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = name
}

// Theme returns the active theme name.
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetBoost sets the visual-boost flag.
func (s *Store) SetBoost(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boost = active
}

// Boost reports the visual-boost flag.
func (s *Store) Boost() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boost
}

// SetGlitch sets the glitch flag.
func (s *Store) SetGlitch(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.glitch = active
}

// Glitch reports the glitch flag.
func (s *Store) Glitch() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.glitch
}

// SetChatMode toggles the chat sub-mode.
func (s *Store) SetChatMode(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatMode = active
}

// ChatMode reports whether the chat sub-mode is active.
func (s *Store) ChatMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chatMode
}

// SetConfirm sets the theme-confirmation flow state.
func (s *Store) SetConfirm(stage int, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirm = ConfirmFlow{Stage: stage, Visible: visible}
}

// Confirm returns the theme-confirmation flow state.
func (s *Store) Confirm() ConfirmFlow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.confirm
}
