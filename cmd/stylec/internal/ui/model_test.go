package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestModel_Navigation(t *testing.T) {
	m := NewModel(sampleSummaries())

	s, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "button", s.Element)
	assert.Equal(t, 0, s.Index)

	m = press(m, keyDown)
	s, _ = m.Selected()
	assert.Equal(t, 1, s.Index)

	// Clamped at the last definition
	m = press(m, keyDown, keyDown)
	s, _ = m.Selected()
	assert.Equal(t, 1, s.Index)

	m = press(m, keyUp, keyUp)
	s, _ = m.Selected()
	assert.Equal(t, 0, s.Index)

	m = press(m, keyDown, keyRight)
	s, _ = m.Selected()
	assert.Equal(t, "card", s.Element)
	assert.Equal(t, 0, s.Index, "switching element resets the cursor")

	// Wraps around
	m = press(m, keyRight)
	s, _ = m.Selected()
	assert.Equal(t, "button", s.Element)
	m = press(m, keyLeft)
	s, _ = m.Selected()
	assert.Equal(t, "card", s.Element)
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(sampleSummaries())
	next, cmd := m.Update(keyQuit)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.View())
}

func TestModel_View(t *testing.T) {
	m := NewModel(sampleSummaries())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.View()

	assert.Contains(t, view, "button")
	assert.Contains(t, view, "(1/2)")
	assert.Contains(t, view, "q quit")
}

func TestModel_Empty(t *testing.T) {
	m := NewModel(nil)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No style definitions.")

	// Navigation on an empty model is a no-op
	m = press(m, keyRight, keyDown)
	_, ok = m.Selected()
	assert.False(t, ok)
}
