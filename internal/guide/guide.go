// Package guide handles loading the built-in question guides.
package guide

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultName is the guide used when none is requested.
const DefaultName = "en"

// Guide holds the user-facing text for one language.
type Guide struct {
	Name        string      `yaml:"name"`
	Version     int         `yaml:"version"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Disclaimer  string      `yaml:"disclaimer"`
	Questions   []Question  `yaml:"questions"`
	Notes       []string    `yaml:"notes"`
	References  []Reference `yaml:"references"`
}

// Question describes one observation as asked of the examiner.
type Question struct {
	ID      string   `yaml:"id"`
	Heading string   `yaml:"heading"`
	Prompt  string   `yaml:"prompt"`
	Help    string   `yaml:"help"`
	Points  int      `yaml:"points"`
	Choices []Choice `yaml:"choices"`
}

// Choice pairs a display label with the enum value it records.
type Choice struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Reference is a literature citation.
type Reference struct {
	Citation string `yaml:"citation"`
	URL      string `yaml:"url"`
}

// LoadBuiltin loads a built-in guide by name.
func LoadBuiltin(name string) (*Guide, error) {
	filename := name + ".yaml"
	data, err := builtinFS.ReadFile("builtin/" + filename)
	if err != nil {
		return nil, fmt.Errorf("guide.LoadBuiltin: unknown guide %q: %w", name, err)
	}
	var g Guide
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("guide.LoadBuiltin: parse %q: %w", name, err)
	}
	return &g, nil
}

// List returns the names of all available built-in guides.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Question returns the question with the given ID.
func (g *Guide) Question(id string) (Question, bool) {
	for _, q := range g.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ChoiceLabel returns the display label recorded for value, or value itself.
func (q Question) ChoiceLabel(value string) string {
	for _, c := range q.Choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// FormatReferences renders the references as a bulleted list.
func FormatReferences(g *Guide) string {
	var b strings.Builder
	for _, r := range g.References {
		fmt.Fprintf(&b, "- %s", r.Citation)
		if r.URL != "" {
			fmt.Fprintf(&b, " (%s)", r.URL)
		}
		b.WriteString("\n")
	}
	return b.String()
}
