// Package browser implements the interactive component picker behind
// `fuelup-components browse`. Main components are listed first, then
// plugins; "/" filters by name, space toggles and enter confirms.
// When Options.Yes is true the TUI is skipped and Run returns the
// preselected components.
package browser

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fuelup/components/pkg/component"
)

// Options controls browser behaviour.
type Options struct {
	// Preselect names components that start checked.
	Preselect []string
	// Yes skips the TUI and returns the preselection immediately.
	Yes bool
}

// ErrNotSelectable is returned for a preselected name that the picker does
// not list, such as fuelup or a component with is_plugin = false.
var ErrNotSelectable = errors.New("component cannot be selected")

// Selection is what the user picked, in listing order.
type Selection struct {
	Components  []string
	Executables []string
}

// Run shows the picker over r and returns the user's selection.
func Run(r *component.Registry, opts Options) (*Selection, error) {
	m := newModel(r)
	if err := m.preselect(opts.Preselect); err != nil {
		return nil, err
	}
	if opts.Yes {
		return m.toSelection(), nil
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	return final.(browserModel).result()
}

// ── styles ────────────────────────────────────────────────────────────────────

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle     = dimStyle
)

type item struct {
	name        string
	executables []string
	plugin      bool
	checked     bool
}

type browserModel struct {
	items     []item
	filter    textinput.Model
	cursor    int
	filtering bool
	cancelled bool
	confirmed bool
}

func newModel(r *component.Registry) browserModel {
	var items []item
	for _, c := range r.ExcludePlugins() {
		items = append(items, item{name: c.Name, executables: c.Executables})
	}
	for _, p := range r.Plugins() {
		items = append(items, item{name: p.Name, executables: p.Executables, plugin: true})
	}

	fi := textinput.New()
	fi.Placeholder = "filter"
	fi.Prompt = "/ "
	fi.Width = 30

	return browserModel{items: items, filter: fi}
}

// ── tea.Model interface ───────────────────────────────────────────────────────

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if m.filtering {
			m.filter, cmd = m.filter.Update(msg)
		}
		return m, cmd
	}
	if m.filtering {
		return m.handleFilterKey(key)
	}
	return m.handleListKey(key)
}

func (m browserModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "esc", "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m browserModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "/":
		m.filtering = true
		return m, m.filter.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(visible) {
			i := visible[m.cursor]
			m.items[i].checked = !m.items[i].checked
		}
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

// visible returns the indices of items matching the filter.
func (m browserModel) visible() []int {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var out []int
	for i, it := range m.items {
		if query == "" || strings.Contains(strings.ToLower(it.name), query) {
			out = append(out, i)
		}
	}
	return out
}

// ── View ──────────────────────────────────────────────────────────────────────

func (m browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  fuelup-components") + "  select components\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n\n")
	}

	visible := m.visible()
	section := ""
	for pos, i := range visible {
		it := m.items[i]
		want := "─── Components ───"
		if it.plugin {
			want = "─── Plugins ───"
		}
		if want != section {
			if section != "" {
				b.WriteString("\n")
			}
			b.WriteString("  " + sectionStyle.Render(want) + "\n")
			section = want
		}
		b.WriteString(m.renderItem(pos, it))
	}
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("  no components match") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  ↑↓ move · space toggle · / filter · enter done · esc quit"))
	return b.String()
}

func (m browserModel) renderItem(pos int, it item) string {
	cursor := "  "
	if pos == m.cursor && !m.filtering {
		cursor = focusStyle.Render(" ▶")
	}
	check := "○"
	style := normalStyle
	if it.checked {
		check = selectedStyle.Render("◉")
		style = selectedStyle
	}
	return fmt.Sprintf("%s %s  %-18s  %s\n",
		cursor, check,
		style.Render(it.name),
		dimStyle.Render(strings.Join(it.executables, " ")),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// preselect checks the named items. Every name must be listed by the picker.
func (m browserModel) preselect(names []string) error {
	for _, name := range names {
		i := slices.IndexFunc(m.items, func(it item) bool { return it.name == name })
		if i < 0 {
			return fmt.Errorf("%w: %q is neither a main component nor a plugin", ErrNotSelectable, name)
		}
		m.items[i].checked = true
	}
	return nil
}

// result turns the final model into a Selection. Leaving the picker any way
// other than enter counts as cancelling.
func (m browserModel) result() (*Selection, error) {
	if m.cancelled || !m.confirmed {
		return nil, fmt.Errorf("selection cancelled")
	}
	return m.toSelection(), nil
}

func (m browserModel) toSelection() *Selection {
	sel := &Selection{}
	for _, it := range m.items {
		if it.checked {
			sel.Components = append(sel.Components, it.name)
			sel.Executables = append(sel.Executables, it.executables...)
		}
	}
	return sel
}
