package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/themekit/internal/registry"
)

func testModel(t *testing.T) Model {
	t.Helper()
	reg, err := registry.NewManagerFs(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	return NewModel(reg, nil)
}

func keyPress(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestNavigation(t *testing.T) {
	m := testModel(t)
	require.NotEmpty(t, m.themes)
	assert.Equal(t, 0, m.cursor)

	next, _ := m.Update(keyPress("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyPress("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	// Cursor stays pinned at the top.
	next, _ = m.Update(keyPress("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestDetailTransition(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Equal(t, StateDetail, m.state)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, StateBrowse, m.state)
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewsRender(t *testing.T) {
	m := testModel(t)
	assert.Contains(t, m.View(), "themekit preview")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	view := m.View()
	assert.Contains(t, view, m.selected().Display)
	assert.Contains(t, view, "Contrast")
}

func TestReloadMessage(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(themesReloadedMsg{})
	m = next.(Model)
	assert.NotEmpty(t, m.themes)
}
