package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelup/components/pkg/component"
)

// sampleRegistry returns a small registry for use in tests.
func sampleRegistry() *component.Registry {
	return component.New(component.Components{
		"forc":        {Name: "forc", Executables: []string{"forc"}},
		"fuel-core":   {Name: "fuel-core", Executables: []string{"fuel-core"}},
		"forc-fmt":    {Name: "forc-fmt", IsPlugin: component.Bool(true), Executables: []string{"forc-fmt"}},
		"forc-client": {Name: "forc-client", IsPlugin: component.Bool(true), Executables: []string{"forc-deploy", "forc-run"}},
		"forc-off":    {Name: "forc-off", IsPlugin: component.Bool(false), Executables: []string{"forc-off"}},
	})
}

func press(m browserModel, keys ...string) browserModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(browserModel)
	}
	return m
}

// TestNewModelOrder verifies that main components come before plugins, each
// group sorted by name.
func TestNewModelOrder(t *testing.T) {
	m := newModel(sampleRegistry())

	var got []string
	for _, it := range m.items {
		got = append(got, it.name)
	}
	assert.Equal(t, []string{"forc", "fuel-core", "forc-client", "forc-fmt"}, got)
	assert.False(t, m.items[1].plugin)
	assert.True(t, m.items[2].plugin)
}

// TestRunYesReturnsPreselection verifies that Yes skips the TUI.
func TestRunYesReturnsPreselection(t *testing.T) {
	sel, err := Run(sampleRegistry(), Options{Yes: true, Preselect: []string{"forc-client", "forc"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"forc", "forc-client"}, sel.Components)
	assert.Equal(t, []string{"forc", "forc-deploy", "forc-run"}, sel.Executables)
}

// TestRunRejectsUnlistedPreselection verifies that names the picker does not
// show are rejected instead of being dropped.
func TestRunRejectsUnlistedPreselection(t *testing.T) {
	for _, name := range []string{component.Fuelup, "forc-off", "missing"} {
		sel, err := Run(sampleRegistry(), Options{Yes: true, Preselect: []string{"forc", name}})
		require.ErrorIs(t, err, ErrNotSelectable, name)
		assert.Contains(t, err.Error(), name)
		assert.Nil(t, sel)
	}
}

// TestResultRequiresConfirmation verifies that only enter yields a selection.
func TestResultRequiresConfirmation(t *testing.T) {
	m := newModel(sampleRegistry())
	require.NoError(t, m.preselect([]string{"forc"}))

	_, err := m.result()
	assert.Error(t, err, "model that never confirmed")

	_, err = press(m, "esc").result()
	assert.Error(t, err)

	sel, err := press(m, "enter").result()
	require.NoError(t, err)
	assert.Equal(t, []string{"forc"}, sel.Components)
}

// TestRunYesNothingSelected verifies an empty selection without preselection.
func TestRunYesNothingSelected(t *testing.T) {
	sel, err := Run(sampleRegistry(), Options{Yes: true})
	require.NoError(t, err)
	assert.Empty(t, sel.Components)
	assert.Empty(t, sel.Executables)
}

// TestToggleAndConfirm verifies cursor movement, toggling and confirmation.
func TestToggleAndConfirm(t *testing.T) {
	m := newModel(sampleRegistry())
	m = press(m, "down", "down", " ", "down", " ", "up", " ", " ", "enter")

	assert.True(t, m.confirmed)
	assert.False(t, m.cancelled)
	sel := m.toSelection()
	assert.Equal(t, []string{"forc-client", "forc-fmt"}, sel.Components)
	assert.Equal(t, []string{"forc-deploy", "forc-run", "forc-fmt"}, sel.Executables)
}

// TestCursorBounds verifies that the cursor stays inside the list.
func TestCursorBounds(t *testing.T) {
	m := newModel(sampleRegistry())
	m = press(m, "up")
	assert.Equal(t, 0, m.cursor)

	m = press(m, "down", "down", "down", "down", "down")
	assert.Equal(t, 3, m.cursor)
}

// TestCancel verifies esc in list mode cancels.
func TestCancel(t *testing.T) {
	m := press(newModel(sampleRegistry()), "esc")
	assert.True(t, m.cancelled)
}

// TestFilter verifies that filtering narrows the list and that toggling
// applies to the filtered item.
func TestFilter(t *testing.T) {
	m := newModel(sampleRegistry())
	m = press(m, "/", "f", "m", "t", "enter")

	assert.False(t, m.filtering)
	require.Len(t, m.visible(), 1)
	assert.Equal(t, "forc-fmt", m.items[m.visible()[0]].name)

	m = press(m, " ", "enter")
	assert.Equal(t, []string{"forc-fmt"}, m.toSelection().Components)
}

// TestFilterEscKeepsBrowsing verifies that esc leaves filter mode without
// cancelling the picker.
func TestFilterEscKeepsBrowsing(t *testing.T) {
	m := press(newModel(sampleRegistry()), "/", "esc")
	assert.False(t, m.filtering)
	assert.False(t, m.cancelled)
}

// TestViewSections verifies the rendered section headers and empty filter
// message.
func TestViewSections(t *testing.T) {
	m := newModel(sampleRegistry())
	view := m.View()
	assert.Contains(t, view, "Components")
	assert.Contains(t, view, "Plugins")
	assert.Contains(t, view, "forc-deploy forc-run")

	m = press(m, "/", "z", "z", "z", "enter")
	assert.Contains(t, m.View(), "no components match")
}

// TestToggleEmptyList verifies that space on an empty filtered list is a no-op.
func TestToggleEmptyList(t *testing.T) {
	m := press(newModel(sampleRegistry()), "/", "q", "q", "enter", " ")
	assert.Empty(t, m.toSelection().Components)
}
