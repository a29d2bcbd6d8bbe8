package ui

import (
	"fmt"
	"strings"

	"github.com/wemarz/cinelux/internal/library"
)

// renderDetailPopup draws the movie detail overlay: metadata, synopsis,
// and the play / list-toggle actions with their current membership state.
func (m Model) renderDetailPopup() string {
	mv := m.router.Detail()
	if mv == nil {
		return ""
	}
	locale := m.lib.Locale()

	modalW := m.width * 60 / 100
	if modalW > 76 {
		modalW = 76
	}
	if modalW < 44 {
		modalW = 44
	}
	innerW := modalW - 6

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + TitleStyle.Render(mv.Title) + "\n")
	b.WriteString("  " + SubtleStyle.Render(fmt.Sprintf("%d   ★ %s", mv.Year, mv.Rating)) + "\n\n")

	synopsis := wrapText(mv.Synopsis, innerW)
	if len(synopsis) > 6 {
		synopsis = synopsis[:6]
	}
	for _, line := range synopsis {
		b.WriteString("  " + NormalStyle.Render(line) + "\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + DimStyle.Render(truncateToWidth("poster: "+mv.Poster, innerW)) + "\n\n")

	fav := m.lib.IsMember(library.Favorites, *mv)
	later := m.lib.IsMember(library.WatchLater, *mv)
	b.WriteString("  " + SelectedStyle.Render("[enter] "+txtPlay.For(locale)))
	b.WriteString("   " + toggleLabel("w", txtWatchLater.For(locale), later))
	b.WriteString("   " + toggleLabel("f", txtFavorites.For(locale), fav))
	b.WriteString("\n\n")
	b.WriteString(DimStyle.Render("  esc close"))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	return RenderPanel("DETAILS", strings.Join(lines, "\n"), modalW, len(lines)+1, true)
}

func toggleLabel(key, label string, member bool) string {
	if member {
		return ModelMsgStyle.Render(fmt.Sprintf("[%s] ✓ %s", key, label))
	}
	return SubtleStyle.Render(fmt.Sprintf("[%s] %s", key, label))
}
