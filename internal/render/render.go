// Package render writes registry query results as styled text, JSON or TOML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/fuelup/components/internal/config"
	"github.com/fuelup/components/pkg/component"
)

// Renderer writes results to one writer in one format.
type Renderer struct {
	w      io.Writer
	format string
	label  lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	ok     lipgloss.Style
}

// New returns a Renderer for format (one of the config.Output* values).
// Colors follow the terminal behind w unless noColor is set.
func New(w io.Writer, format string, noColor bool) *Renderer {
	re := lipgloss.NewRenderer(w)
	if noColor {
		re.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		w:      w,
		format: format,
		label:  re.NewStyle().Bold(true).Foreground(lipgloss.Color("8")),
		value:  re.NewStyle().Foreground(lipgloss.Color("14")),
		dim:    re.NewStyle().Foreground(lipgloss.Color("8")),
		ok:     re.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Components writes a component listing.
func (r *Renderer) Components(components []component.Component) error {
	switch r.format {
	case config.OutputJSON:
		return r.json(nonNil(components))
	case config.OutputTOML:
		return r.toml(struct {
			Component []component.Component `toml:"component"`
		}{components})
	}

	width := 0
	for _, c := range components {
		width = max(width, len(c.Name))
	}
	for _, c := range components {
		fmt.Fprintf(r.w, "  %s %-*s  %s\n",
			r.ok.Render("●"), width, c.Name,
			r.dim.Render(strings.Join(c.Executables, " ")),
		)
	}
	return nil
}

// Component writes every field of one component.
func (r *Renderer) Component(c component.Component) error {
	switch r.format {
	case config.OutputJSON:
		return r.json(c)
	case config.OutputTOML:
		return r.toml(c)
	}

	fmt.Fprintf(r.w, "  %s %s\n", r.label.Render("Name:       "), r.value.Render(c.Name))
	fmt.Fprintf(r.w, "  %s %s\n", r.label.Render("Plugin:     "), optional(c.IsPlugin))
	fmt.Fprintf(r.w, "  %s %s\n", r.label.Render("Publish:    "), optional(c.Publish))
	fmt.Fprintf(r.w, "  %s %s\n", r.label.Render("Tarball:    "), c.TarballPrefix)
	fmt.Fprintf(r.w, "  %s %s\n", r.label.Render("Repository: "), c.RepositoryName)
	fmt.Fprintf(r.w, "  %s %s\n", r.label.Render("Executables:"), strings.Join(c.Executables, ", "))
	fmt.Fprintf(r.w, "  %s %s\n", r.label.Render("Targets:    "), strings.Join(c.Targets, ", "))
	return nil
}

// Plugins writes a plugin listing. Plugins whose only executable is named
// after themselves are marked.
func (r *Renderer) Plugins(plugins []component.Plugin) error {
	switch r.format {
	case config.OutputJSON:
		return r.json(nonNil(plugins))
	case config.OutputTOML:
		return r.toml(struct {
			Plugin []component.Plugin `toml:"plugin"`
		}{plugins})
	}

	width := 0
	for _, p := range plugins {
		width = max(width, len(p.Name))
	}
	for _, p := range plugins {
		mark := r.dim.Render("○")
		if p.IsMainExecutable() {
			mark = r.ok.Render("●")
		}
		fmt.Fprintf(r.w, "  %s %-*s  %s\n", mark, width, p.Name, r.dim.Render(strings.Join(p.Executables, " ")))
	}
	return nil
}

// Strings writes a list of names under key, one per line in text mode.
func (r *Renderer) Strings(key string, values []string) error {
	switch r.format {
	case config.OutputJSON:
		return r.json(nonNil(values))
	case config.OutputTOML:
		return r.toml(map[string][]string{key: nonNil(values)})
	}
	for _, v := range values {
		fmt.Fprintln(r.w, v)
	}
	return nil
}

// Bool writes a single boolean under key.
func (r *Renderer) Bool(key string, v bool) error {
	switch r.format {
	case config.OutputJSON:
		return r.json(map[string]bool{key: v})
	case config.OutputTOML:
		return r.toml(map[string]bool{key: v})
	}
	_, err := fmt.Fprintln(r.w, v)
	return err
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (r *Renderer) toml(v any) error {
	enc := toml.NewEncoder(r.w)
	enc.SetIndentTables(true)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

func optional(b *bool) string {
	if b == nil {
		return "unset"
	}
	return fmt.Sprint(*b)
}

// nonNil keeps empty results as [] rather than null in JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
