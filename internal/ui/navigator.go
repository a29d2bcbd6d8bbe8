package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyph tiers for the category spheres, picked by current scale.
func planetGlyph(scale float64, focused bool) string {
	switch {
	case focused:
		return "◉"
	case scale >= 2.0:
		return "●"
	case scale >= 1.6:
		return "◍"
	default:
		return "○"
	}
}

var spinFrames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

// renderNavigator draws the category space: a starfield, the planet strip,
// the focused-category info panel, and camera telemetry.
func (m Model) renderNavigator(w, h int) string {
	var b strings.Builder

	locale := m.lib.Locale()
	focused := m.navigator.Focused()

	// Info panel
	infoH := 4
	if focused != nil {
		cat, _ := m.cat.Category(focused.ID)
		count := len(m.cat.MoviesFor(cat.ID))
		catStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color))
		name := catStyle.Bold(true).Render(cat.Name.For(locale))
		b.WriteString("\n  " + catStyle.Render("⬤") + " " + name + "\n")
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %d movies", count)) + "\n")
		b.WriteString(DimStyle.Render("  [enter] "+txtViewCategory.For(locale)) + "\n")
	} else {
		b.WriteString(strings.Repeat("\n", infoH))
	}

	// Starfield with the planet strip through the middle
	fieldH := h - infoH - 2
	if fieldH < 3 {
		fieldH = 3
	}
	stripRow := fieldH / 2

	starDensity := 53
	if m.cfg.LowFX {
		starDensity = 211
	}

	for row := 0; row < fieldH; row++ {
		if row == stripRow {
			b.WriteString(m.renderPlanetStrip(w))
			b.WriteString("\n")
			continue
		}
		var line strings.Builder
		for col := 0; col < w; col++ {
			n := (row*7919 + col*104729) % starDensity
			switch {
			case n == 0 && (row+col+m.frame/8)%3 == 0:
				line.WriteString(DimStyle.Render("✦"))
			case n == 1:
				line.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render("·"))
			default:
				line.WriteByte(' ')
			}
		}
		b.WriteString(line.String())
		b.WriteString("\n")
	}

	// Camera telemetry; during a transition the engine owns the camera.
	cam := m.cam
	mode := "IDLE"
	if cam.Transitioning() {
		mode = "TRANSIT"
	}
	b.WriteString(DimStyle.Render(fmt.Sprintf(
		"  CAM %-7s  pos %6.1f %6.1f %6.1f   look %6.1f %6.1f %6.1f",
		mode,
		cam.Position.X, cam.Position.Y, cam.Position.Z,
		cam.LookAt.X, cam.LookAt.Y, cam.LookAt.Z)))

	return b.String()
}

// renderPlanetStrip lays the category spheres on one line, centered, the
// focused one emphasized and spinning.
func (m Model) renderPlanetStrip(w int) string {
	focused := m.navigator.Focused()

	var parts []string
	for _, o := range m.navigator.Objects {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(o.Color))
		if o == focused {
			spin := spinFrames[int(o.Rotation/0.1)%len(spinFrames)]
			parts = append(parts, style.Bold(true).Render("❮ "+spin+planetGlyph(o.Scale, true)+spin+" ❯"))
		} else {
			parts = append(parts, style.Render(planetGlyph(o.Scale, false)))
		}
	}
	strip := strings.Join(parts, "   ")

	pad := (w - visibleLen(strip)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + strip
}
