package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the terminal session.
type Theme struct {
	Name        string
	Description string
	Type        string // "dark" or "light"

	// Core colors
	Primary lipgloss.Color // prompt, command names, section headers
	Accent  lipgloss.Color // links, highlights
	Error   lipgloss.Color

	// Text colors
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	TextBright lipgloss.Color

	// UI colors
	Background lipgloss.Color
	Border     lipgloss.Color
}

// Registry holds all available themes.
type Registry struct {
	themes  map[string]*Theme
	current string
}

// NewRegistry creates a theme registry with the builtin themes registered
// and "matrix" selected.
func NewRegistry() *Registry {
	r := &Registry{
		themes:  make(map[string]*Theme),
		current: "matrix",
	}
	r.Register(Matrix())
	r.Register(Amber())
	r.Register(Light())
	return r
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (*Theme, error) {
	t, ok := r.themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	return t, nil
}

// Current returns the currently active theme.
func (r *Registry) Current() *Theme {
	t, _ := r.Get(r.current)
	return t
}

// SetCurrent sets the current theme.
func (r *Registry) SetCurrent(name string) error {
	if _, ok := r.themes[name]; !ok {
		return fmt.Errorf("theme not found: %s", name)
	}
	r.current = name
	return nil
}

// List returns all available theme names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	return names
}

// Register registers a theme, replacing any existing theme of the same name.
func (r *Registry) Register(t *Theme) {
	r.themes[t.Name] = t
}

// Default returns the default theme (matrix).
func Default() *Theme {
	return Matrix()
}
