// Package ui renders collected style definitions for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/recera/stylecollector/pkg/styling"
)

// KeyMap defines the browser key bindings
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap is the default set of key bindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←/h", "previous element"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/l", "next element"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// Model browses the definitions of every element in a registry
type Model struct {
	width  int
	height int

	elements []string
	byName   map[string][]styling.Summary

	element  int // selected element
	fragment int // selected definition within the element

	detail   viewport.Model
	quitting bool
}

// NewModel builds a browser over sums, keeping elements in first-seen order
func NewModel(sums []styling.Summary) Model {
	m := Model{
		elements: lo.Uniq(lo.Map(sums, func(s styling.Summary, _ int) string { return s.Element })),
		byName:   lo.GroupBy(sums, func(s styling.Summary) string { return s.Element }),
		detail:   viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = max(msg.Width/2-4, 10)
		m.detail.Height = max(msg.Height-6, 3)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.fragment > 0 {
				m.fragment--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.fragment < len(m.current())-1 {
				m.fragment++
			}
		case key.Matches(msg, DefaultKeyMap.Left):
			if len(m.elements) > 0 {
				m.element = (m.element - 1 + len(m.elements)) % len(m.elements)
				m.fragment = 0
			}
		case key.Matches(msg, DefaultKeyMap.Right):
			if len(m.elements) > 0 {
				m.element = (m.element + 1) % len(m.elements)
				m.fragment = 0
			}
		default:
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil
	}

	return m, nil
}

// View renders the element list and the selected definition side by side
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.elements) == 0 {
		return mutedStyle.Render("No style definitions.") + "\n"
	}

	var list strings.Builder
	name := m.elements[m.element]
	list.WriteString(titleStyle.Render(fmt.Sprintf("%s  (%d/%d)", name, m.element+1, len(m.elements))))
	list.WriteString("\n\n")
	for i, s := range m.current() {
		line := fmt.Sprintf("%s %s", s.Separator, s.Hash)
		if i == m.fragment {
			list.WriteString(selectedStyle.Render("> " + line))
		} else {
			list.WriteString("  " + line)
		}
		list.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(list.String()),
		paneStyle.Render(m.detail.View()),
	)

	help := helpStyle.Render(strings.Join([]string{
		helpEntry(DefaultKeyMap.Up), helpEntry(DefaultKeyMap.Down),
		helpEntry(DefaultKeyMap.Left), helpEntry(DefaultKeyMap.Right),
		helpEntry(DefaultKeyMap.Quit),
	}, " • "))

	return body + "\n" + help + "\n"
}

// Selected returns the summary under the cursor
func (m Model) Selected() (styling.Summary, bool) {
	defs := m.current()
	if m.fragment >= len(defs) {
		return styling.Summary{}, false
	}
	return defs[m.fragment], true
}

func (m Model) current() []styling.Summary {
	if len(m.elements) == 0 {
		return nil
	}
	return m.byName[m.elements[m.element]]
}

func (m *Model) refresh() {
	if s, ok := m.Selected(); ok {
		m.detail.SetContent(Detail(s))
		m.detail.GotoTop()
	}
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
