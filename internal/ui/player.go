package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPlayer draws the now-playing panel and the related-videos list.
// The rendered content comes from the router's player entry; when the view
// is being left the router clears it and nothing is drawn.
func (m Model) renderPlayer(w, h int) string {
	entry := m.router.Player()
	if entry == nil {
		return ""
	}
	mv := entry.Movie

	innerW := w - 6
	if innerW < 20 {
		innerW = 20
	}

	var body strings.Builder
	body.WriteString("\n")
	body.WriteString("  " + TitleStyle.Render(mv.Title) + "\n")
	body.WriteString("  " + SubtleStyle.Render(fmt.Sprintf("%d   ★ %s", mv.Year, mv.Rating)) + "\n\n")
	for _, line := range wrapText(mv.Synopsis, innerW) {
		body.WriteString("  " + NormalStyle.Render(line) + "\n")
	}
	body.WriteString("\n")
	body.WriteString("  " + lipgloss.NewStyle().Foreground(ColorSky).Underline(true).
		Render("https://www.youtube.com/watch?v="+mv.TrailerID) + "\n")

	playerH := h * 55 / 100
	if playerH < 8 {
		playerH = 8
	}
	relatedH := h - playerH - 4
	if relatedH < 3 {
		relatedH = 3
	}

	var rel strings.Builder
	if len(entry.Related) == 0 {
		rel.WriteString(DimStyle.Render("  nothing else in this category"))
	} else {
		start := 0
		if m.relCursor >= relatedH {
			start = m.relCursor - relatedH + 1
		}
		end := start + relatedH
		if end > len(entry.Related) {
			end = len(entry.Related)
		}
		for i := start; i < end; i++ {
			r := entry.Related[i]
			if i == m.relCursor {
				rel.WriteString(fmt.Sprintf(" %s %s  %s\n",
					SelectedStyle.Render("▸"),
					SelectedStyle.Render(r.Title),
					DimStyle.Render(fmt.Sprintf("%d", r.Year))))
			} else {
				rel.WriteString(fmt.Sprintf("   %s  %s\n",
					NormalStyle.Render(r.Title),
					DimStyle.Render(fmt.Sprintf("%d", r.Year))))
			}
		}
	}

	playerBox := RenderPanel("NOW PLAYING", body.String(), w, playerH, false)
	relatedBox := RenderPanel("RELATED", strings.TrimRight(rel.String(), "\n"), w, relatedH, false)

	return playerBox + "\n" + relatedBox
}
