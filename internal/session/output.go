package session

import "github.com/KindaJayant/termfolio/internal/resume"

// Output payload types. Exactly one type is active per value.
const (
	OutputText    = "text"    // plain text, revealed character by character
	OutputAI      = "ai"      // chat-streamed text, patched in place while streaming
	OutputBanner  = "banner"  // ASCII banner marker
	OutputProfile = "profile" // whoami card
	OutputJobs    = "jobs"    // professional experience list
	OutputEdu     = "edu"     // education list
	OutputSkills  = "skills"  // skills table
	OutputContact = "contact" // contact card
	OutputProject = "project" // single project record
	OutputSuggest = "suggest" // autocomplete candidate list (informational)
	OutputHelp    = "help"    // command listing

	// outputClear is the reserved dispatcher sentinel. It is never stored.
	outputClear = "clear"
)

// Output is a tagged union of everything an entry can display. Structured
// types carry their payload in the typed fields; the renderer owns layout.
type Output struct {
	Type    string
	Content string          // OutputText, OutputAI
	Project *resume.Project // OutputProject
	Items   []string        // OutputSuggest, OutputHelp
}

// Text returns a plain-text output.
func Text(content string) Output {
	return Output{Type: OutputText, Content: content}
}

// AI returns a chat output. Content grows in place while a stream is active.
func AI(content string) Output {
	return Output{Type: OutputAI, Content: content}
}

// Section returns a structured output with no extra payload; the renderer
// reads the static resume data for these.
func Section(outputType string) Output {
	return Output{Type: outputType}
}

// ProjectCard returns a structured single-project output.
func ProjectCard(p *resume.Project) Output {
	return Output{Type: OutputProject, Project: p}
}

// Suggest returns an informational candidate-list output.
func Suggest(items []string) Output {
	return Output{Type: OutputSuggest, Items: items}
}

// Help returns the command listing, one "name\tdescription" line per item.
func Help(items []string) Output {
	return Output{Type: OutputHelp, Items: items}
}

// Clear is the reserved result a command handler returns to wipe the
// transcript instead of appending an entry.
var Clear = Output{Type: outputClear}

// IsClear reports whether o is the clear sentinel.
func (o Output) IsClear() bool { return o.Type == outputClear }

// IsEmpty reports whether o renders nothing (blank-line submissions).
func (o Output) IsEmpty() bool {
	return o.Type == "" || (o.Type == OutputText && o.Content == "")
}
