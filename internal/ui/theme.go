package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// CineLux deep-space palette
var (
	ColorGold    = lipgloss.Color("#facc15")
	ColorViolet  = lipgloss.Color("#8b5cf6")
	ColorSky     = lipgloss.Color("#0ea5e9")
	ColorPink    = lipgloss.Color("#ec4899")
	ColorGreen   = lipgloss.Color("#22c55e")
	ColorRed     = lipgloss.Color("#b56a6a")
	ColorWhite   = lipgloss.Color("#e5e7eb")
	ColorGray    = lipgloss.Color("#9ca3af")
	ColorDim     = lipgloss.Color("#4b5563")
	ColorMuted   = lipgloss.Color("#1f2937")
	ColorBg      = lipgloss.Color("#000000")
	ColorBarBg   = lipgloss.Color("#111827")
	ColorBarText = lipgloss.Color("#d1d5db")

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	UserMsgStyle = lipgloss.NewStyle().
			Foreground(ColorSky)

	ModelMsgStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// RenderPanel draws a bordered box with the title set into the top border:
//
//	╭─╴ NOW PLAYING ╶──────╮
//	│                      │
//	╰──────────────────────╯
//
// accent switches the border to the gold highlight used for overlays.
func RenderPanel(title, content string, w, h int, accent bool) string {
	borderColor := ColorDim
	titleColor := ColorGray
	if accent {
		borderColor = ColorGold
		titleColor = ColorGold
	}
	bc := lipgloss.NewStyle().Foreground(borderColor)
	tc := lipgloss.NewStyle().Foreground(titleColor).Bold(true)

	innerW := w - 2

	titleText := " " + title + " "
	fillLen := w - 5 - utf8.RuneCountInString(titleText)
	if fillLen < 0 {
		fillLen = 0
	}
	top := bc.Render("╭─╴") + tc.Render(titleText) + bc.Render("╶"+strings.Repeat("─", fillLen)+"╮")
	bottom := bc.Render("╰" + strings.Repeat("─", innerW) + "╯")
	side := bc.Render("│")

	lines := strings.Split(content, "\n")
	for len(lines) < h {
		lines = append(lines, "")
	}
	if len(lines) > h {
		lines = lines[:h]
	}

	rows := make([]string, 0, h+2)
	rows = append(rows, top)
	for _, line := range lines {
		visible := visibleLen(line)
		if visible > innerW {
			line = truncateToWidth(line, innerW)
			visible = innerW
		}
		rows = append(rows, side+line+strings.Repeat(" ", innerW-visible)+side)
	}
	rows = append(rows, bottom)

	return strings.Join(rows, "\n")
}

func visibleLen(s string) int {
	return runewidth.StringWidth(stripAnsi(s))
}

func stripAnsi(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// truncateToWidth cuts a styled line to at most w visible columns, keeping
// escape sequences intact and closing the style at the end.
func truncateToWidth(s string, w int) string {
	var b strings.Builder
	col := 0
	i := 0
	for i < len(s) && col < w {
		if s[i] == '\x1b' {
			j := i + 1
			for j < len(s) && !((s[j] >= 'a' && s[j] <= 'z') || (s[j] >= 'A' && s[j] <= 'Z')) {
				j++
			}
			if j < len(s) {
				j++
			}
			b.WriteString(s[i:j])
			i = j
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := runewidth.RuneWidth(r)
		if col+rw > w {
			break
		}
		b.WriteString(s[i : i+size])
		col += rw
		i += size
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// wrapText breaks s into lines of at most w visible columns, on spaces
// where possible.
func wrapText(s string, w int) []string {
	if w < 1 {
		return []string{s}
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, word := range words {
			switch {
			case cur == "":
				cur = word
			case runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= w:
				cur += " " + word
			default:
				lines = append(lines, cur)
				cur = word
			}
		}
		lines = append(lines, cur)
	}
	return lines
}

// overlayCenter composites a modal on top of a rendered background,
// replacing the covered cells while keeping the rest visible.
func overlayCenter(bg, modal string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	modalLines := strings.Split(modal, "\n")

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	modalW := 0
	for _, ml := range modalLines {
		if mw := visibleLen(ml); mw > modalW {
			modalW = mw
		}
	}

	topOff := (height - len(modalLines)) / 2
	leftOff := (width - modalW) / 2
	if topOff < 0 {
		topOff = 0
	}
	if leftOff < 0 {
		leftOff = 0
	}

	for i, ml := range modalLines {
		row := topOff + i
		if row < len(bgLines) {
			bgLines[row] = spliceLine(bgLines[row], ml, leftOff)
		}
	}

	return strings.Join(bgLines, "\n")
}

// spliceLine overlays modalLine onto bgLine starting at visible column
// leftOff, preserving the background on both sides.
func spliceLine(bgLine, modalLine string, leftOff int) string {
	modalVisW := visibleLen(modalLine)
	rightStart := leftOff + modalVisW

	var out strings.Builder
	col := 0
	i := 0

	writeUpTo := func(limit int, emit bool) {
		for i < len(bgLine) && col < limit {
			if bgLine[i] == '\x1b' {
				j := i + 1
				for j < len(bgLine) && !((bgLine[j] >= 'a' && bgLine[j] <= 'z') || (bgLine[j] >= 'A' && bgLine[j] <= 'Z')) {
					j++
				}
				if j < len(bgLine) {
					j++
				}
				if emit {
					out.WriteString(bgLine[i:j])
				}
				i = j
				continue
			}
			r, size := utf8.DecodeRuneInString(bgLine[i:])
			if emit {
				out.WriteString(bgLine[i : i+size])
			}
			col += runewidth.RuneWidth(r)
			i += size
		}
	}

	writeUpTo(leftOff, true)
	for col < leftOff {
		out.WriteByte(' ')
		col++
	}

	out.WriteString("\x1b[0m")
	out.WriteString(modalLine)

	writeUpTo(rightStart, false) // skip background under the modal
	out.WriteString("\x1b[0m")
	writeUpTo(1<<30, true)

	return out.String()
}
