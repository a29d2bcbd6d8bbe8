package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wemarz/cinelux/internal/catalog"
)

// MovieGrid is the scrolling movie listing shared by the grid, list, and
// search-results views.
type MovieGrid struct {
	movies []catalog.Movie
	cursor int
	width  int
	height int
}

func NewMovieGrid() MovieGrid {
	return MovieGrid{}
}

func (g *MovieGrid) SetMovies(movies []catalog.Movie) {
	g.movies = movies
	g.cursor = 0
}

func (g *MovieGrid) SetSize(w, h int) {
	g.width = w
	g.height = h
}

func (g *MovieGrid) Up() {
	if g.cursor > 0 {
		g.cursor--
	}
}

func (g *MovieGrid) Down() {
	if g.cursor < len(g.movies)-1 {
		g.cursor++
	}
}

func (g *MovieGrid) Selected() *catalog.Movie {
	if len(g.movies) == 0 {
		return nil
	}
	return &g.movies[g.cursor]
}

func (g *MovieGrid) Len() int {
	return len(g.movies)
}

// View renders the listing with a cursor and a scrolling window. emptyMsg
// is shown when there are no movies — an expected state, not an error.
func (g *MovieGrid) View(emptyMsg string) string {
	if len(g.movies) == 0 {
		return "\n" + SubtleStyle.Render("  "+emptyMsg)
	}

	available := g.height
	if available < 1 {
		available = 1
	}

	start := 0
	if g.cursor >= available {
		start = g.cursor - available + 1
	}
	end := start + available
	if end > len(g.movies) {
		end = len(g.movies)
	}

	maxTitle := g.width - 24
	if maxTitle < 12 {
		maxTitle = 12
	}

	var lines []string
	for i := start; i < end; i++ {
		m := g.movies[i]
		title := m.Title
		if len(title) > maxTitle {
			title = title[:maxTitle-3] + "..."
		}
		meta := fmt.Sprintf("%d  ★ %s", m.Year, m.Rating)

		if i == g.cursor {
			marker := SelectedStyle.Render("▸")
			lines = append(lines, fmt.Sprintf(" %s %s  %s",
				marker,
				SelectedStyle.Render(title),
				lipgloss.NewStyle().Foreground(ColorGold).Render(meta)))
		} else {
			lines = append(lines, fmt.Sprintf("   %s  %s",
				NormalStyle.Render(title),
				DimStyle.Render(meta)))
		}
	}

	return strings.Join(lines, "\n")
}
