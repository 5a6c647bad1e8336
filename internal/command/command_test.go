package command

import (
	"strings"
	"testing"

	"github.com/KindaJayant/termfolio/internal/session"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *session.Store) {
	t.Helper()
	store := session.New()
	actions := Actions{
		Clear:               func() { store.Clear() },
		SetBoost:            func(active bool) { store.SetBoost(active) },
		SetGlitch:           func(active bool) { store.SetGlitch(active) },
		SetTheme:            func(name string) { store.SetTheme(name) },
		RequestThemeConfirm: func() { store.SetConfirm(1, true) },
		SetChatMode:         func(active bool) { store.SetChatMode(active) },
	}
	return NewDispatcher(NewRegistry(), store, actions), store
}

func TestDispatchEmptyInput(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("   ")

	entries := store.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Command != "" || !entries[0].Output.IsEmpty() {
		t.Errorf("blank submission entry = %+v, want empty command and output", entries[0])
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("frobnicate now")

	last, ok := store.Last()
	if !ok {
		t.Fatal("no entry appended")
	}
	want := "Command not found: frobnicate. Type 'help' for available commands."
	if last.Output.Content != want {
		t.Errorf("output = %q, want %q", last.Output.Content, want)
	}
	if last.Command != "frobnicate now" {
		t.Errorf("entry command = %q, want full trimmed input", last.Command)
	}
}

func TestDispatchCaseInsensitive(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("WhoAmI")

	last, _ := store.Last()
	if last.Output.Type != session.OutputProfile {
		t.Errorf("output type = %q, want %q", last.Output.Type, session.OutputProfile)
	}
}

func TestDispatchClearSentinel(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("help")
	d.Dispatch("whoami")
	d.Dispatch("clear")

	if store.Len() != 0 {
		t.Errorf("after clear: %d entries, want 0 (sentinel must not append)", store.Len())
	}
}

func TestOpenProject(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("open 1")
	last, _ := store.Last()
	if last.Output.Type != session.OutputProject || last.Output.Project == nil {
		t.Fatalf("open 1: output = %+v, want project card", last.Output)
	}
	if last.Output.Project.ID != 1 {
		t.Errorf("open 1 resolved project %d", last.Output.Project.ID)
	}

	d.Dispatch("open 7")
	last, _ = store.Last()
	if last.Output.Content != "Project not found: 7" {
		t.Errorf("open 7: output = %q", last.Output.Content)
	}

	d.Dispatch("open")
	last, _ = store.Last()
	if !strings.HasPrefix(last.Output.Content, "Usage:") {
		t.Errorf("bare open: output = %q, want usage text", last.Output.Content)
	}
}

func TestThemeCommand(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("theme amber")
	if store.Theme() != "amber" {
		t.Errorf("theme = %q, want amber", store.Theme())
	}

	d.Dispatch("theme light")
	if store.Theme() != "matrix" && store.Theme() != "amber" {
		t.Error("theme light must not switch directly")
	}
	if c := store.Confirm(); c.Stage != 1 || !c.Visible {
		t.Errorf("theme light: confirm = %+v, want stage 1 visible", c)
	}

	d.Dispatch("theme neon")
	last, _ := store.Last()
	if !strings.Contains(last.Output.Content, "Unknown theme: neon") {
		t.Errorf("unknown theme output = %q", last.Output.Content)
	}

	d.Dispatch("theme")
	last, _ = store.Last()
	if !strings.Contains(last.Output.Content, "matrix, amber, light") {
		t.Errorf("bare theme output = %q, want theme list", last.Output.Content)
	}
}

func TestLightCommandRequestsConfirm(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("light")

	if c := store.Confirm(); c.Stage != 1 || !c.Visible {
		t.Errorf("confirm = %+v, want stage 1 visible", c)
	}
}

func TestAICommandEntersChatMode(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("ai")

	if !store.ChatMode() {
		t.Error("chat mode not set")
	}
	last, _ := store.Last()
	if !strings.Contains(last.Output.Content, "exit") {
		t.Errorf("ai output = %q, want exit hint", last.Output.Content)
	}
}

func TestSudo(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("sudo hire jayant")
	last, _ := store.Last()
	if !strings.Contains(last.Output.Content, "Access granted.") {
		t.Errorf("sudo hire jayant: %q", last.Output.Content)
	}

	d.Dispatch("sudo rm -rf /")
	last, _ = store.Last()
	if !strings.Contains(last.Output.Content, "Permission denied") {
		t.Errorf("sudo other: %q", last.Output.Content)
	}
}

func TestMatrixSetsBoost(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("matrix")

	if !store.Boost() {
		t.Error("boost flag not set")
	}
	last, _ := store.Last()
	if last.Output.Content != "Follow the white rabbit..." {
		t.Errorf("matrix output = %q", last.Output.Content)
	}
}

func TestKonamiSetsGlitch(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("konami")

	if !store.Glitch() {
		t.Error("glitch flag not set")
	}
}

func TestHelpListsVisibleOnly(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("help")

	last, _ := store.Last()
	if last.Output.Type != session.OutputHelp {
		t.Fatalf("help output type = %q", last.Output.Type)
	}
	listing := strings.Join(last.Output.Items, "\n")
	for _, visible := range []string{"help", "whoami", "projects", "theme", "ai", "clear"} {
		if !strings.Contains(listing, visible) {
			t.Errorf("help listing missing %q", visible)
		}
	}
	for _, hidden := range []string{"sudo", "matrix", "konami", "coffee", "banner", "light"} {
		if strings.Contains(listing, hidden+"\t") {
			t.Errorf("help listing leaks hidden command %q", hidden)
		}
	}
}

func TestNamesIncludesHidden(t *testing.T) {
	r := NewRegistry()

	names := r.Names()
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	for _, want := range []string{"help", "sudo", "matrix", "konami", "coffee", "banner", "light", "open"} {
		if !set[want] {
			t.Errorf("Names() missing %q", want)
		}
	}
}

func TestCoffeeReturnsJoke(t *testing.T) {
	d, store := newTestDispatcher(t)

	d.Dispatch("coffee")

	last, _ := store.Last()
	found := false
	for _, joke := range coffeeJokes {
		if last.Output.Content == joke {
			found = true
		}
	}
	if !found {
		t.Errorf("coffee output %q not in joke pool", last.Output.Content)
	}
}
