package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KindaJayant/termfolio/internal/config"
	"github.com/KindaJayant/termfolio/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := &config.Config{Theme: "matrix", TypingIntervalMS: 1}
	cfg.Chat.Endpoint = "http://127.0.0.1:1/api/chat"
	cfg.Chat.Persona = "jayant-ai"
	m := New(cfg)

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return sized.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// submit types a line and presses enter, returning the updated model.
func submit(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.textarea.SetValue(line)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func skipBoot(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(keyRunes(" "))
	return updated.(Model)
}

func TestBootSkipRunsBanner(t *testing.T) {
	m := newTestModel(t)
	if !m.booting {
		t.Fatal("model should start in boot sequence")
	}

	m = skipBoot(t, m)

	if m.booting {
		t.Error("key press did not skip boot")
	}
	if !m.store.BootCompleted() {
		t.Error("boot not marked completed")
	}
	last, ok := m.store.Last()
	if !ok || last.Output.Type != session.OutputBanner {
		t.Errorf("expected banner entry after boot, got %+v", last.Output)
	}
}

func TestSubmitDispatchesCommand(t *testing.T) {
	m := skipBoot(t, newTestModel(t))

	m = submit(t, m, "whoami")

	last, _ := m.store.Last()
	if last.Output.Type != session.OutputProfile {
		t.Errorf("output type = %q, want profile", last.Output.Type)
	}
	if m.textarea.Value() != "" {
		t.Error("input not cleared after submit")
	}
}

func TestSubmitTextOutputStartsReveal(t *testing.T) {
	m := skipBoot(t, newTestModel(t))

	m = submit(t, m, "matrix")

	if !m.reveal.Active() {
		t.Error("reveal not running for text output")
	}
	last, _ := m.store.Last()
	if m.revealingID != last.ID {
		t.Error("reveal not bound to the newest entry")
	}
}

func TestTabSingleMatchReplacesInput(t *testing.T) {
	m := skipBoot(t, newTestModel(t))
	m.textarea.SetValue("who")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	if got := m.textarea.Value(); got != "whoami" {
		t.Errorf("input = %q, want whoami", got)
	}
}

func TestTabMultipleMatchesListsCandidates(t *testing.T) {
	m := skipBoot(t, newTestModel(t))
	before := m.store.Len()
	m.textarea.SetValue("c") // clear, contact, coffee

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	if m.store.Len() != before+1 {
		t.Fatal("candidate list entry not appended")
	}
	last, _ := m.store.Last()
	if last.Output.Type != session.OutputSuggest || len(last.Output.Items) < 3 {
		t.Errorf("suggest entry = %+v", last.Output)
	}
	// "c" is already the shared prefix; input must not change.
	if got := m.textarea.Value(); got != "c" {
		t.Errorf("input = %q, want unchanged", got)
	}
}

func TestConfirmFlowAcceptsLightTheme(t *testing.T) {
	m := skipBoot(t, newTestModel(t))

	m = submit(t, m, "light")
	if c := m.store.Confirm(); c.Stage != 1 || !c.Visible {
		t.Fatalf("confirm = %+v, want stage 1", c)
	}

	updated, _ := m.Update(keyRunes("y"))
	m = updated.(Model)
	if c := m.store.Confirm(); c.Stage != 2 {
		t.Fatalf("confirm = %+v, want stage 2", c)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if c := m.store.Confirm(); c.Visible {
		t.Error("dialog still visible after accepting")
	}
	if m.store.Theme() != "light" {
		t.Errorf("theme = %q, want light", m.store.Theme())
	}
}

func TestConfirmFlowDecline(t *testing.T) {
	m := skipBoot(t, newTestModel(t))
	m = submit(t, m, "light")

	updated, _ := m.Update(keyRunes("n"))
	m = updated.(Model)

	if c := m.store.Confirm(); c.Visible || c.Stage != 0 {
		t.Errorf("confirm = %+v, want dismissed", c)
	}
	if m.store.Theme() == "light" {
		t.Error("declining must not switch the theme")
	}
}

func TestHistoryKeysCycleCommands(t *testing.T) {
	m := skipBoot(t, newTestModel(t))
	m = submit(t, m, "help")
	m = submit(t, m, "projects")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if got := m.textarea.Value(); got != "projects" {
		t.Errorf("after Up: input = %q, want projects", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if got := m.textarea.Value(); got != "help" {
		t.Errorf("after second Up: input = %q, want help", got)
	}
}

func TestChatModeRoutesToController(t *testing.T) {
	m := skipBoot(t, newTestModel(t))

	m = submit(t, m, "ai")
	if !m.store.ChatMode() {
		t.Fatal("ai command did not enter chat mode")
	}

	m = submit(t, m, "exit")
	if m.store.ChatMode() {
		t.Error("exit did not leave chat mode")
	}
	last, _ := m.store.Last()
	if last.Output.Content != "Exiting AI mode." {
		t.Errorf("exit notice = %q", last.Output.Content)
	}
}

func TestClearKeptOutOfTranscript(t *testing.T) {
	m := skipBoot(t, newTestModel(t))
	m = submit(t, m, "help")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)

	if m.store.Len() != 0 {
		t.Errorf("transcript has %d entries after Ctrl+L, want 0", m.store.Len())
	}
}
