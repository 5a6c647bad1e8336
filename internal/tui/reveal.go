package tui

// reveal.go — timed character-by-character output reveal.
//
// One pending timer at a time; each tick shows one more rune and reschedules.
// Starting over with new text bumps the generation so ticks from the
// superseded run fall through harmlessly, and completion is reported exactly
// once per run.

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RevealTickMsg advances the active reveal run. Gen identifies the run the
// tick belongs to; stale ticks are dropped.
type RevealTickMsg struct {
	Gen int
}

// Reveal drives the typing animation for a single piece of text.
type Reveal struct {
	interval  time.Duration
	runes     []rune
	pos       int
	gen       int
	active    bool
	completed bool
}

// NewReveal returns a reveal running at the given per-character interval.
func NewReveal(interval time.Duration) *Reveal {
	return &Reveal{interval: interval}
}

// Start begins revealing text from the empty prefix, cancelling any run in
// progress. The returned command schedules the first tick.
func (r *Reveal) Start(text string) tea.Cmd {
	r.gen++
	r.runes = []rune(text)
	r.pos = 0
	r.active = true
	r.completed = false
	return r.tick()
}

// Advance applies one tick. It returns the command for the next tick and
// whether the run just completed. Ticks from superseded or stopped runs
// return (nil, false).
func (r *Reveal) Advance(msg RevealTickMsg) (tea.Cmd, bool) {
	if !r.active || msg.Gen != r.gen {
		return nil, false
	}
	if r.pos < len(r.runes) {
		r.pos++
	}
	if r.pos >= len(r.runes) {
		r.active = false
		if !r.completed {
			r.completed = true
			return nil, true
		}
		return nil, false
	}
	return r.tick(), false
}

// Stop cancels the run in progress. No completion is reported afterwards.
func (r *Reveal) Stop() {
	r.gen++
	r.active = false
}

// Visible returns the currently revealed prefix. Once a run completes the
// full text stays visible.
func (r *Reveal) Visible() string {
	return string(r.runes[:r.pos])
}

// Active reports whether a run is in progress.
func (r *Reveal) Active() bool {
	return r.active
}

func (r *Reveal) tick() tea.Cmd {
	gen := r.gen
	return tea.Tick(r.interval, func(time.Time) tea.Msg {
		return RevealTickMsg{Gen: gen}
	})
}
