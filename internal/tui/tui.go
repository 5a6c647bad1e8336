package tui

// tui.go — the interactive terminal session: boot sequence, command loop,
// chat sub-mode, and the light-mode confirmation dialog.

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KindaJayant/termfolio/internal/chat"
	"github.com/KindaJayant/termfolio/internal/command"
	"github.com/KindaJayant/termfolio/internal/config"
	"github.com/KindaJayant/termfolio/internal/session"
	"github.com/KindaJayant/termfolio/internal/theme"
)

const promptText = "visitor@jayant-portfolio:~$"
const chatPromptText = "jayant-ai:~$"

var bootSequence = []string{
	"Initializing Jayant Terminal v2.0...",
	"Loading AI modules...",
	"Verifying security protocols...",
	"Authenticating user...",
	"Access granted.",
}

// bootPauseDelay is how long the completed boot sequence lingers before the
// banner takes over.
const bootPauseDelay = 800 * time.Millisecond

// refreshMsg asks the model to re-render after an out-of-loop store
// mutation (stream chunks, delayed flag reverts).
type refreshMsg struct{}

// bootDoneMsg ends the boot pause.
type bootDoneMsg struct{}

// Model is the terminal session model.
type Model struct {
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	store         *session.Store
	registry      *command.Registry
	dispatcher    *command.Dispatcher
	chat          *chat.Controller
	themeRegistry *theme.Registry
	autocomplete  *Autocomplete
	histnav       *Navigator
	reveal        *Reveal
	config        *config.Config

	width  int
	height int

	booting     bool
	bootIdx     int
	revealingID string // entry the reveal run belongs to
	uiCh        chan tea.Msg
}

// New wires up a complete session model.
func New(cfg *config.Config) Model {
	store := session.New()
	registry := command.NewRegistry()
	themeRegistry := theme.NewRegistry()
	if err := themeRegistry.SetCurrent(cfg.Theme); err == nil {
		store.SetTheme(cfg.Theme)
	}

	uiCh := make(chan tea.Msg, 64)
	notify := func() {
		select {
		case uiCh <- refreshMsg{}:
		default:
		}
	}

	actions := command.Actions{
		Clear: func() { store.Clear() },
		SetBoost: func(active bool) {
			store.SetBoost(active)
			notify()
		},
		SetGlitch: func(active bool) {
			store.SetGlitch(active)
			notify()
		},
		SetTheme: func(name string) {
			if err := themeRegistry.SetCurrent(name); err != nil {
				return
			}
			store.SetTheme(name)
			notify()
		},
		RequestThemeConfirm: func() {
			store.SetConfirm(1, true)
			notify()
		},
		SetChatMode: func(active bool) {
			store.SetChatMode(active)
			notify()
		},
	}

	ta := textarea.New()
	ta.Placeholder = "type 'help' to get started"
	ta.Focus()
	ta.CharLimit = 512
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.Cursor.SetMode(cursor.CursorBlink)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.SetContent("")

	interval := time.Duration(cfg.TypingIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = 20 * time.Millisecond
	}

	return Model{
		viewport:      vp,
		textarea:      ta,
		spinner:       sp,
		store:         store,
		registry:      registry,
		dispatcher:    command.NewDispatcher(registry, store, actions),
		chat:          chat.NewController(store, cfg.Endpoint(), cfg.Chat.Persona, notify),
		themeRegistry: themeRegistry,
		autocomplete:  NewAutocomplete(registry.Names()),
		histnav:       NewNavigator(),
		reveal:        NewReveal(interval),
		config:        cfg,
		booting:       true,
		uiCh:          uiCh,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.reveal.Start(bootSequence[0]),
		waitForEvent(m.uiCh),
	)
}

// waitForEvent re-subscribes to the UI event channel. Stream chunks and
// delayed flag reverts arrive here.
func waitForEvent(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
		m.textarea.SetWidth(msg.Width - lipgloss.Width(m.prompt()) - 2)
		m.refreshViewport()
		return m, nil

	case refreshMsg:
		m.refreshViewport()
		return m, waitForEvent(m.uiCh)

	case RevealTickMsg:
		next, completed := m.reveal.Advance(msg)
		if m.booting {
			if completed {
				if m.bootIdx+1 < len(bootSequence) {
					m.bootIdx++
					return m, m.reveal.Start(bootSequence[m.bootIdx])
				}
				return m, tea.Tick(bootPauseDelay, func(time.Time) tea.Msg {
					return bootDoneMsg{}
				})
			}
			return m, next
		}
		m.refreshViewport()
		return m, next

	case bootDoneMsg:
		if m.booting {
			m.finishBoot()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.chat.Close()
		return m, tea.Quit
	}

	// Any key skips the boot sequence.
	if m.booting {
		m.finishBoot()
		return m, nil
	}

	if m.store.Confirm().Visible {
		return m.handleConfirmKey(key)
	}

	switch key {
	case "ctrl+l":
		m.dispatcher.Dispatch("clear")
		m.reveal.Stop()
		m.revealingID = ""
		m.refreshViewport()
		return m, nil

	case "up":
		v := m.histnav.Up(m.store.Commands(), m.textarea.Value())
		m.textarea.SetValue(v)
		m.textarea.CursorEnd()
		return m, nil

	case "down":
		v := m.histnav.Down(m.store.Commands(), m.textarea.Value())
		m.textarea.SetValue(v)
		m.textarea.CursorEnd()
		return m, nil

	case "tab":
		return m.handleTab()

	case "enter":
		return m.handleSubmit()
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) handleTab() (tea.Model, tea.Cmd) {
	if m.store.ChatMode() {
		return m, nil
	}
	input := m.textarea.Value()
	suggestions := m.autocomplete.Suggestions(input)

	switch {
	case len(suggestions) == 1:
		m.textarea.SetValue(suggestions[0])
		m.textarea.CursorEnd()
	case len(suggestions) > 1:
		if prefix := SharedPrefix(suggestions); len(prefix) > len(input) {
			m.textarea.SetValue(prefix)
			m.textarea.CursorEnd()
		}
		m.store.Append(input, session.Suggest(suggestions))
		m.refreshViewport()
	}
	return m, nil
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	input := m.textarea.Value()
	m.textarea.Reset()

	if m.store.ChatMode() {
		m.reveal.Stop()
		m.revealingID = ""
		m.chat.Submit(input)
		m.histnav.Reset()
		m.refreshViewport()
		return m, nil
	}

	m.dispatcher.Dispatch(input)
	m.histnav.Reset()
	m.refreshViewport()

	// Only a plain-text result on the newest entry types out; everything
	// else renders instantly.
	if last, ok := m.store.Last(); ok &&
		last.Output.Type == session.OutputText && last.Output.Content != "" {
		m.revealingID = last.ID
		return m, m.reveal.Start(last.Output.Content)
	}
	m.reveal.Stop()
	m.revealingID = ""
	return m, nil
}

func (m Model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	c := m.store.Confirm()
	switch c.Stage {
	case 1:
		switch key {
		case "y", "Y":
			m.store.SetConfirm(2, true)
		case "n", "N", "esc":
			m.store.SetConfirm(0, false)
		}
	case 2:
		switch key {
		case "enter", "y", "Y", "f", "F":
			if err := m.themeRegistry.SetCurrent("light"); err == nil {
				m.store.SetTheme("light")
			}
			m.store.SetConfirm(0, false)
			m.refreshViewport()
		case "esc":
			m.store.SetConfirm(0, false)
		}
	default:
		m.store.SetConfirm(0, false)
	}
	return m, nil
}

func (m *Model) finishBoot() {
	m.reveal.Stop()
	m.booting = false
	m.store.SetBootCompleted(true)
	m.dispatcher.Dispatch("banner")
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *Model) renderTranscript() string {
	r := newRenderer(m.themeRegistry.Current(), m.store.Boost())
	entries := m.store.Entries()

	var blocks []string
	for i, e := range entries {
		revealing := i == len(entries)-1 && e.ID == m.revealingID && m.reveal.Active()
		blocks = append(blocks, r.Entry(e, promptText, revealing, m.reveal.Visible()))
	}
	return strings.Join(blocks, "\n")
}

func (m *Model) prompt() string {
	if m.store.ChatMode() {
		return chatPromptText
	}
	return promptText
}

// chatWaiting reports whether a chat turn is still waiting on its first
// chunk, which is when the spinner shows.
func (m *Model) chatWaiting() bool {
	if !m.store.ChatMode() {
		return false
	}
	last, ok := m.store.Last()
	return ok && last.Output.Type == session.OutputAI && last.Output.Content == ""
}

func (m Model) View() string {
	t := m.themeRegistry.Current()
	r := newRenderer(t, m.store.Boost())

	if m.booting {
		return m.bootView(r)
	}

	var b strings.Builder
	b.WriteString(m.viewport.View() + "\n")

	if m.chatWaiting() {
		b.WriteString(m.spinner.View() + r.muted().Render(" thinking...") + "\n")
	}

	b.WriteString(r.muted().Render(strings.Repeat("─", max(m.width, 20))) + "\n")
	b.WriteString(r.primary().Bold(true).Render(m.prompt()) + " " + m.textarea.View() + "\n")
	b.WriteString(m.footer(r))

	if m.store.Confirm().Visible {
		return m.confirmView(r)
	}
	return b.String()
}

func (m Model) bootView(r *renderer) string {
	var b strings.Builder
	for i := 0; i < m.bootIdx; i++ {
		b.WriteString(r.primary().Render(bootSequence[i]) + "\n")
	}
	b.WriteString(r.primary().Render(m.reveal.Visible()) + "\n")
	b.WriteString("\n" + r.muted().Render("Press any key to skip..."))
	return b.String()
}

func (m Model) confirmView(r *renderer) string {
	t := m.themeRegistry.Current()
	var body string
	switch m.store.Confirm().Stage {
	case 1:
		body = r.primary().Bold(true).Render("WARNING") + "\n\n" +
			r.bright().Render("Really?") + "\n\n" +
			r.text().Render("[y] Yes    [n] No")
	case 2:
		body = r.primary().Bold(true).Render("SIGH...") + "\n\n" +
			r.bright().Render("I guess people love being blinded these days.") + "\n\n" +
			r.text().Render("[enter] Fine.")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(body)

	return lipgloss.Place(max(m.width, 40), max(m.height, 10),
		lipgloss.Center, lipgloss.Center, box)
}

func (m Model) footer(r *renderer) string {
	var status []string
	status = append(status, r.primary().Render("theme:"+m.store.Theme()))
	if m.store.ChatMode() {
		status = append(status, r.bright().Render("AI MODE"))
	}
	if m.store.Boost() {
		status = append(status, r.primary().Bold(true).Render("BOOST"))
	}
	if m.store.Glitch() {
		status = append(status, lipgloss.NewStyle().
			Foreground(m.themeRegistry.Current().Error).Render("░▒▓ GLITCH ▓▒░"))
	}

	hints := "Tab autocomplete · ↑/↓ history · Ctrl+L clear · Ctrl+C quit"
	return fmt.Sprintf("%s  %s", strings.Join(status, "  "), r.muted().Render(hints))
}

// Run starts the terminal session in the alternate screen and blocks until
// it exits.
func Run(cfg *config.Config) error {
	m := New(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.chat.Close()
	return err
}
