package theme

import "github.com/charmbracelet/lipgloss"

// Matrix returns the default green-on-black terminal theme.
func Matrix() *Theme {
	return &Theme{
		Name:        "matrix",
		Description: "Classic green phosphor (default)",
		Type:        "dark",

		Primary: lipgloss.Color("#00FF41"), // terminal green
		Accent:  lipgloss.Color("#89B4FA"), // link blue
		Error:   lipgloss.Color("#F38BA8"),

		Text:       lipgloss.Color("#B7E4C7"),
		TextMuted:  lipgloss.Color("#6C7086"),
		TextBright: lipgloss.Color("#FFFFFF"),

		Background: lipgloss.Color("#0C0C0C"),
		Border:     lipgloss.Color("#00FF41"),
	}
}

// Amber returns the retro amber-monitor theme.
func Amber() *Theme {
	return &Theme{
		Name:        "amber",
		Description: "Retro amber monitor",
		Type:        "dark",

		Primary: lipgloss.Color("#FFB000"),
		Accent:  lipgloss.Color("#FFD75F"),
		Error:   lipgloss.Color("#FF5555"),

		Text:       lipgloss.Color("#E8C07D"),
		TextMuted:  lipgloss.Color("#8A6D1D"),
		TextBright: lipgloss.Color("#FFE8B0"),

		Background: lipgloss.Color("#14100A"),
		Border:     lipgloss.Color("#FFB000"),
	}
}

// Light returns the light theme. Only reachable through the confirmation
// flow; the terminal warns twice before applying it.
func Light() *Theme {
	return &Theme{
		Name:        "light",
		Description: "Blinding daylight mode",
		Type:        "light",

		Primary: lipgloss.Color("#1A7F37"),
		Accent:  lipgloss.Color("#0969DA"),
		Error:   lipgloss.Color("#CF222E"),

		Text:       lipgloss.Color("#1F2328"),
		TextMuted:  lipgloss.Color("#656D76"),
		TextBright: lipgloss.Color("#000000"),

		Background: lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#1A7F37"),
	}
}
