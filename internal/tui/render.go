package tui

// render.go — transcript rendering. Layout lives here; the entries themselves
// only carry tags and payloads.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KindaJayant/termfolio/internal/resume"
	"github.com/KindaJayant/termfolio/internal/session"
	"github.com/KindaJayant/termfolio/internal/theme"
)

const bannerArt = `
      _                         _
     | |                       | |
     | | __ _ _   _  __ _ _ __ | |_
 _   | |/ _` + "`" + ` | | | |/ _` + "`" + ` | '_ \| __|
| |__| | (_| | |_| | (_| | | | | |_
 \____/ \__,_|\__, |\__,_|_| |_|\__|
               __/ |
              |___/`

var quickMenu = []struct {
	cmd   string
	label string
}{
	{"projects", "View Projects"},
	{"experience", "Experience"},
	{"skills", "Tech Stack"},
	{"education", "Education"},
	{"contact", "Contact Info"},
	{"ai", "Chat with AI"},
	{"help", "All Commands"},
}

type renderer struct {
	theme *theme.Theme
	boost bool
}

func newRenderer(t *theme.Theme, boost bool) *renderer {
	return &renderer{theme: t, boost: boost}
}

func (r *renderer) primary() lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(r.theme.Primary)
	if r.boost {
		st = st.Bold(true)
	}
	return st
}

func (r *renderer) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(r.theme.TextMuted)
}

func (r *renderer) bright() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(r.theme.TextBright).Bold(true)
}

func (r *renderer) text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(r.theme.Text)
}

func (r *renderer) header(title string) string {
	return r.bright().Render(title) + "\n" +
		r.muted().Render(strings.Repeat("─", lipgloss.Width(title)+4))
}

// Entry renders one transcript entry: the prompt line, then the output.
// revealed overrides the output content for the entry currently typing.
func (r *renderer) Entry(e session.Entry, prompt string, revealing bool, revealed string) string {
	var b strings.Builder
	b.WriteString(r.primary().Bold(true).Render(prompt) + " " + r.bright().Render(e.Command))

	out := r.Output(e.Output, revealing, revealed)
	if out != "" {
		b.WriteString("\n" + indent(out, 2))
	}
	return b.String()
}

// Output renders an output payload in full, or the revealed prefix for a
// text payload mid-animation.
func (r *renderer) Output(o session.Output, revealing bool, revealed string) string {
	switch o.Type {
	case session.OutputText:
		if revealing {
			return r.text().Render(revealed)
		}
		return r.text().Render(o.Content)
	case session.OutputAI:
		return r.primary().Render(o.Content)
	case session.OutputBanner:
		return r.banner()
	case session.OutputProfile:
		return r.profile()
	case session.OutputJobs:
		return r.jobs()
	case session.OutputEdu:
		return r.education()
	case session.OutputSkills:
		return r.skills()
	case session.OutputContact:
		return r.contact()
	case session.OutputProject:
		if o.Project != nil {
			return r.projectCard(o.Project)
		}
		return r.projects()
	case session.OutputSuggest:
		return r.muted().Render(strings.Join(o.Items, "    "))
	case session.OutputHelp:
		return r.help(o.Items)
	default:
		return ""
	}
}

func (r *renderer) banner() string {
	var b strings.Builder
	b.WriteString(r.primary().Render(bannerArt) + "\n\n")
	b.WriteString(r.bright().Render("Hello, I'm "+resume.Data.Basics.Name) + "\n")
	b.WriteString(r.muted().Render(resume.Data.Basics.Tagline) + "\n\n")
	b.WriteString(r.muted().Render("QUICK MENU / EXECUTE COMMAND:") + "\n")
	for _, q := range quickMenu {
		b.WriteString("  " + r.muted().Render("$") + " " +
			r.bright().Render(q.label) + " " +
			r.muted().Render("("+q.cmd+")") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *renderer) profile() string {
	basics := resume.Data.Basics
	var b strings.Builder
	b.WriteString(r.bright().Render("Hello, I'm "+basics.Name) + "\n")
	b.WriteString(r.text().Render(basics.Location+" | "+basics.Email+" | "+basics.Phone) + "\n")
	var links []string
	for platform, url := range basics.Profiles {
		links = append(links, r.withAccent("["+platform+"] "+url))
	}
	if len(links) > 0 {
		b.WriteString(strings.Join(links, "\n") + "\n")
	}
	b.WriteString("\n" + r.muted().Render(basics.Tagline))
	return b.String()
}

func (r *renderer) jobs() string {
	var b strings.Builder
	b.WriteString(r.header("Professional Experience") + "\n\n")
	for i, job := range resume.Data.Jobs {
		b.WriteString(r.primary().Bold(true).Render(job.Position) + "  " +
			r.muted().Render("["+job.StartDate+" - "+job.EndDate+"]") + "\n")
		b.WriteString(r.text().Italic(true).Render(job.Company+", "+job.Location) + "\n")
		for _, h := range job.Highlights {
			b.WriteString(r.muted().Render("  • "+h) + "\n")
		}
		if i < len(resume.Data.Jobs)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *renderer) education() string {
	var b strings.Builder
	b.WriteString(r.header("Education") + "\n\n")
	for _, edu := range resume.Data.Education {
		b.WriteString(r.primary().Bold(true).Render(edu.Institution) + "  " +
			r.muted().Render("["+edu.StartDate+" - "+edu.EndDate+"]") + "\n")
		b.WriteString(r.text().Render(edu.StudyType+" in "+edu.Area) + "\n")
		b.WriteString(r.muted().Render("Coursework: "+strings.Join(edu.Courses, ", ")) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *renderer) skills() string {
	s := resume.Data.Skills
	var b strings.Builder
	b.WriteString(r.header("Technical Skills") + "\n\n")
	b.WriteString(r.primary().Bold(true).Render("Tools & Platforms: ") +
		r.text().Render(strings.Join(s.ToolsAndPlatforms, ", ")) + "\n")
	b.WriteString(r.primary().Bold(true).Render("Professional Skills: ") +
		r.text().Render(strings.Join(s.Professional, ", ")))
	return b.String()
}

func (r *renderer) contact() string {
	basics := resume.Data.Basics
	var b strings.Builder
	b.WriteString(r.header("Contact Protocol") + "\n\n")
	b.WriteString(r.primary().Render("Email:    ") + r.text().Render(basics.Email) + "\n")
	b.WriteString(r.primary().Render("Phone:    ") + r.text().Render(basics.Phone) + "\n")
	b.WriteString(r.primary().Render("Location: ") + r.text().Render(basics.Location))
	return b.String()
}

func (r *renderer) projects() string {
	var b strings.Builder
	b.WriteString(r.header("Projects") + "\n\n")
	for i, p := range resume.Projects {
		b.WriteString(r.primary().Bold(true).Render(p.Title) + "  " +
			r.muted().Render(fmt.Sprintf("(open %d | open %s)", p.ID, p.Slug)) + "\n")
		b.WriteString(r.text().Render("  "+p.Description) + "\n")
		b.WriteString(r.muted().Render("  "+strings.Join(p.Tech, " · ")) + "\n")
		if i < len(resume.Projects)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *renderer) projectCard(p *resume.Project) string {
	var b strings.Builder
	b.WriteString(r.bright().Render(p.Title) + "  " +
		r.muted().Render(fmt.Sprintf("#%d · %s", p.ID, p.Slug)) + "\n\n")
	b.WriteString(r.text().Render(p.Description) + "\n\n")
	b.WriteString(r.primary().Render("Tech: ") + r.text().Render(strings.Join(p.Tech, ", ")))
	if p.GitHub != "" {
		b.WriteString("\n" + r.primary().Render("GitHub: ") + r.withAccent(p.GitHub))
	}
	if p.Live != "" {
		b.WriteString("\n" + r.primary().Render("Live: ") + r.withAccent(p.Live))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Border).
		Padding(0, 2)
	return box.Render(b.String())
}

func (r *renderer) help(items []string) string {
	var b strings.Builder
	b.WriteString(r.text().Render("Available commands:") + "\n")
	for _, item := range items {
		name, desc, _ := strings.Cut(item, "\t")
		b.WriteString("  " + r.primary().Bold(true).Render(pad(name, 12)) +
			r.muted().Render("- "+desc) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *renderer) withAccent(s string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Render(s)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
