package tui

import (
	"reflect"
	"testing"

	"github.com/KindaJayant/termfolio/internal/command"
)

func TestSuggestions(t *testing.T) {
	ac := NewAutocomplete([]string{"projects", "project-x", "help", "contact"})

	tests := []struct {
		partial string
		want    []string
	}{
		{"proj", []string{"projects", "project-x"}},
		{"PROJ", []string{"projects", "project-x"}},
		{"projects", []string{"projects"}},
		{"h", []string{"help"}},
		{"z", nil},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		if got := ac.Suggestions(tt.partial); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Suggestions(%q) = %v, want %v", tt.partial, got, tt.want)
		}
	}
}

func TestSuggestionsIncludeHidden(t *testing.T) {
	ac := NewAutocomplete(command.NewRegistry().Names())

	if got := ac.Suggestions("sud"); len(got) != 1 || got[0] != "sudo" {
		t.Errorf("Suggestions(sud) = %v, want [sudo]", got)
	}
	if got := ac.Suggestions("kon"); len(got) != 1 || got[0] != "konami" {
		t.Errorf("Suggestions(kon) = %v, want [konami]", got)
	}
}

func TestSharedPrefix(t *testing.T) {
	tests := []struct {
		words []string
		want  string
	}{
		{[]string{"projects", "project-x"}, "project"},
		{[]string{"help"}, "help"},
		{[]string{"abc", "xyz"}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := SharedPrefix(tt.words); got != tt.want {
			t.Errorf("SharedPrefix(%v) = %q, want %q", tt.words, got, tt.want)
		}
	}
}
