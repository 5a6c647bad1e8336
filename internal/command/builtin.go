package command

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/KindaJayant/termfolio/internal/resume"
	"github.com/KindaJayant/termfolio/internal/session"
)

const boostDuration = 5 * time.Second
const glitchDuration = 3 * time.Second

var coffeeJokes = []string{
	"I drink coffee for your protection.",
	"Sudo make me a sandwich.",
	"Error 418: I'm a teapot.",
	"Software developers are devices that turn coffee into code.",
}

func registerBuiltins(r *Registry) {
	r.Register(&Command{
		Name:        "help",
		Description: "List all available commands",
		Execute: func(_ []string, _ Actions) session.Output {
			var items []string
			for _, c := range r.Visible() {
				items = append(items, c.Name+"\t"+c.Description)
			}
			return session.Help(items)
		},
	})

	r.Register(&Command{
		Name:        "banner",
		Description: "Display the welcome banner",
		Hidden:      true,
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Section(session.OutputBanner)
		},
	})

	r.Register(&Command{
		Name:        "whoami",
		Description: "Display user profile",
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Section(session.OutputProfile)
		},
	})

	r.Register(&Command{
		Name:        "experience",
		Description: "View professional experience",
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Section(session.OutputJobs)
		},
	})

	r.Register(&Command{
		Name:        "education",
		Description: "View educational background",
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Section(session.OutputEdu)
		},
	})

	r.Register(&Command{
		Name:        "projects",
		Description: "List technical projects",
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Section(session.OutputProject)
		},
	})

	r.Register(&Command{
		Name:        "skills",
		Description: "Display technical skills",
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Section(session.OutputSkills)
		},
	})

	r.Register(&Command{
		Name:        "open",
		Description: "Open a project by id or slug",
		Execute: func(args []string, _ Actions) session.Output {
			if len(args) == 0 {
				return session.Text("Usage: open <id|slug>")
			}
			token := args[0]
			p := resume.FindProject(token)
			if p == nil {
				return session.Text("Project not found: " + token)
			}
			return session.ProjectCard(p)
		},
	})

	r.Register(&Command{
		Name:        "contact",
		Description: "Get contact information",
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Section(session.OutputContact)
		},
	})

	r.Register(&Command{
		Name:        "theme",
		Description: "Switch the terminal theme",
		Execute:     themeCommand,
	})

	r.Register(&Command{
		Name:        "ai",
		Description: "Chat with the AI assistant",
		Execute: func(_ []string, actions Actions) session.Output {
			actions.SetChatMode(true)
			return session.Text("Entering AI mode. Ask me anything. Type 'exit' to leave.")
		},
	})

	r.Register(&Command{
		Name:        "clear",
		Description: "Clear the terminal screen",
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Clear
		},
	})

	r.Register(&Command{
		Name:        "light",
		Description: "Turn on the lights",
		Hidden:      true,
		Execute: func(_ []string, actions Actions) session.Output {
			actions.RequestThemeConfirm()
			return session.Output{}
		},
	})

	r.Register(&Command{
		Name:        "sudo",
		Description: "Admin privileges",
		Hidden:      true,
		Execute: func(args []string, _ Actions) session.Output {
			if strings.Join(args, " ") == "hire jayant" {
				return session.Text("Access granted.\n\nWelcome aboard! 🚀\nContacting candidate...")
			}
			return session.Text("Permission denied: User is not in the sudoers file. This incident will be reported.")
		},
	})

	r.Register(&Command{
		Name:        "matrix",
		Description: "Enter the Matrix",
		Hidden:      true,
		Execute: func(_ []string, actions Actions) session.Output {
			actions.SetBoost(true)
			time.AfterFunc(boostDuration, func() { actions.SetBoost(false) })
			return session.Text("Follow the white rabbit...")
		},
	})

	r.Register(&Command{
		Name:        "coffee",
		Description: "Brew some coffee",
		Hidden:      true,
		Execute: func(_ []string, _ Actions) session.Output {
			return session.Text(coffeeJokes[rand.Intn(len(coffeeJokes))])
		},
	})

	r.Register(&Command{
		Name:        "konami",
		Description: "Cheat code",
		Hidden:      true,
		Execute: func(_ []string, actions Actions) session.Output {
			actions.SetGlitch(true)
			time.AfterFunc(glitchDuration, func() { actions.SetGlitch(false) })
			return session.Text("GOD MODE ENABLED (visuals only, sorry)")
		},
	})
}

func themeCommand(args []string, actions Actions) session.Output {
	if len(args) == 0 {
		return session.Text("Available themes: matrix, amber, light\nUsage: theme <name>")
	}

	name := strings.ToLower(args[0])
	switch name {
	case "matrix", "amber":
		actions.SetTheme(name)
		return session.Text("Theme set to " + name + ".")
	case "light":
		// Light mode goes through the confirmation dialog.
		actions.RequestThemeConfirm()
		return session.Output{}
	default:
		return session.Text(fmt.Sprintf("Unknown theme: %s. Available themes: matrix, amber, light", args[0]))
	}
}
