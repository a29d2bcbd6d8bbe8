package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar is the inline title-search input shown under the header while
// a search-capable view is active.
type SearchBar struct {
	input  textinput.Model
	active bool
}

func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorGold)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorWhite)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(ColorDim)
	return SearchBar{input: ti}
}

func (s *SearchBar) SetWidth(w int) {
	s.input.Width = w - 8
}

func (s *SearchBar) IsActive() bool { return s.active }

func (s *SearchBar) Open(placeholder string) {
	s.active = true
	s.input.Placeholder = placeholder
	s.input.SetValue("")
	s.input.Focus()
}

func (s *SearchBar) Close() {
	s.active = false
	s.input.Blur()
	s.input.SetValue("")
}

func (s *SearchBar) Value() string {
	return s.input.Value()
}

func (s *SearchBar) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *SearchBar) View() string {
	return " " + s.input.View()
}
