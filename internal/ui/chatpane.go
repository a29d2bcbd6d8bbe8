package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatFallback is shown in place of a reply when the relay call fails.
const chatFallback = "An error occurred. Please try again."

type chatMsgKind int

const (
	chatFromUser chatMsgKind = iota
	chatFromModel
	chatError
)

// chatLine is one rendered bubble. Display text is the raw prompt, not the
// instruction-wrapped turn the relay sends.
type chatLine struct {
	kind chatMsgKind
	text string
}

// ChatPane is the floating CineLux AI window.
type ChatPane struct {
	input   textinput.Model
	lines   []chatLine
	open    bool
	waiting bool
	width   int
	height  int
}

func NewChatPane() ChatPane {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorGold)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorWhite)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(ColorDim)
	return ChatPane{input: ti}
}

func (c *ChatPane) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.input.Width = w - 10
}

func (c *ChatPane) IsOpen() bool { return c.open }

func (c *ChatPane) Open(placeholder string) {
	c.open = true
	c.input.Placeholder = placeholder
	c.input.Focus()
}

func (c *ChatPane) Close() {
	c.open = false
	c.input.Blur()
}

func (c *ChatPane) IsWaiting() bool { return c.waiting }

// BeginSend records the user's bubble and the outstanding call. Returns
// the trimmed prompt, or "" when there is nothing to send.
func (c *ChatPane) BeginSend() string {
	prompt := strings.TrimSpace(c.input.Value())
	if prompt == "" || c.waiting {
		return ""
	}
	c.lines = append(c.lines, chatLine{kind: chatFromUser, text: prompt})
	c.input.SetValue("")
	c.waiting = true
	return prompt
}

// FinishSend resolves the outstanding call: reply on success, the fixed
// fallback on failure. The loading indicator clears exactly once either way.
func (c *ChatPane) FinishSend(reply string, err error) {
	c.waiting = false
	if err != nil {
		c.lines = append(c.lines, chatLine{kind: chatError, text: chatFallback})
		return
	}
	c.lines = append(c.lines, chatLine{kind: chatFromModel, text: reply})
}

func (c *ChatPane) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *ChatPane) View(frame int) string {
	innerW := c.width - 6
	if innerW < 20 {
		innerW = 20
	}

	var rows []string
	for _, l := range c.lines {
		style := UserMsgStyle
		prefix := "you "
		switch l.kind {
		case chatFromModel:
			style = ModelMsgStyle
			prefix = " ai "
		case chatError:
			style = ErrorStyle
			prefix = " ai "
		}
		for i, line := range wrapText(l.text, innerW-5) {
			if i == 0 {
				rows = append(rows, " "+DimStyle.Render(prefix)+" "+style.Render(line))
			} else {
				rows = append(rows, "      "+style.Render(line))
			}
		}
	}
	if c.waiting {
		dots := strings.Repeat("·", frame/4%3+1)
		rows = append(rows, " "+DimStyle.Render(" ai ")+" "+SubtleStyle.Render(dots))
	}

	// Keep the tail visible; the pane has no scrollback.
	bodyH := c.height - 4
	if bodyH < 3 {
		bodyH = 3
	}
	if len(rows) > bodyH {
		rows = rows[len(rows)-bodyH:]
	}

	var b strings.Builder
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString(strings.Repeat("\n", bodyH-len(rows)+1))
	b.WriteString(" " + c.input.View() + "\n")
	b.WriteString(DimStyle.Render(" enter send  esc close"))

	return RenderPanel("CINELUX AI", b.String(), c.width, c.height, true)
}
