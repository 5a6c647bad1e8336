package tui

// autocomplete.go — Tab completion over the command registry.
//
// Matching is case-insensitive prefix matching against every registered name,
// hidden commands included: discoverability by typing is intentional even
// though they stay out of the help text. A bare Tab on empty input completes
// nothing rather than dumping the whole registry.

import "strings"

// Autocomplete matches partial input against a fixed option set.
type Autocomplete struct {
	options []string
}

// NewAutocomplete returns an engine over the given option set.
func NewAutocomplete(options []string) *Autocomplete {
	return &Autocomplete{options: options}
}

// Suggestions returns the options the partial input is a prefix of, in
// option order. Empty or whitespace-only input yields none.
func (a *Autocomplete) Suggestions(partial string) []string {
	if strings.TrimSpace(partial) == "" {
		return nil
	}
	lower := strings.ToLower(partial)
	var out []string
	for _, opt := range a.options {
		if strings.HasPrefix(strings.ToLower(opt), lower) {
			out = append(out, opt)
		}
	}
	return out
}

// SharedPrefix returns the longest common prefix of the candidates, or ""
// for an empty set.
func SharedPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
