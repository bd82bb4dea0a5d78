package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/querybox/editor"
	"github.com/iw2rmb/querybox/focus"
	"github.com/iw2rmb/querybox/internal/grapheme"
)

const (
	panelHeight      = 3
	promptText       = "> "
	suggestionPrefix = "-> "
)

func (m Model) View() string {
	if m.coord == nil {
		return ""
	}
	width := m.panelWidth()
	parts := []string{
		m.inputView(width),
		m.suggestionView(width),
	}
	if spacer := m.spacerView(width); spacer != "" {
		parts = append(parts, spacer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) inputView(width int) string {
	ed := m.coord.Editor()
	editing := m.coord.State() == focus.Editing

	title := "StandBy"
	frame := m.styles.StandBy
	if editing {
		title = "Editing"
		frame = m.validationStyle(ed.Validation())
	}

	inner := max(width-2, 0)
	before, after := ed.BeforeCursor(), strings.TrimPrefix(ed.Text(), ed.BeforeCursor())
	var content string
	if editing {
		content = m.styles.Text.Render(promptText) + renderWithCursor(m.styles, before, after, inner-len(promptText))
	} else {
		content = m.styles.Text.Render(promptText + grapheme.Truncate(ed.Text(), inner-len(promptText), "…"))
	}
	return titledBox(m.styles.Border, frame, title, content, width)
}

func (m Model) suggestionView(width int) string {
	if m.coord.State() != focus.Editing {
		return strings.Repeat("\n", panelHeight-1)
	}
	inner := max(width-2, 0)
	text := suggestionPrefix + strings.Join(m.coord.Editor().Suggestions(), " ")
	content := m.styles.Text.Render(grapheme.Truncate(text, inner, "…"))
	return titledBox(m.styles.Border, m.styles.Suggestions, "Suggestions", content, width)
}

func (m Model) spacerView(width int) string {
	rows := m.height - 2*panelHeight
	if m.height == 0 {
		rows = 1
	}
	if rows <= 0 {
		return ""
	}

	var keys help.KeyMap = m.coord.Keys()
	if m.coord.State() == focus.Editing {
		keys = m.coord.EditorKeys()
	}
	hm := m.help
	hm.Width = width
	lines := make([]string, rows)
	lines[0] = hm.View(keys)
	return strings.Join(lines, "\n")
}

func (m Model) validationStyle(v editor.Validation) lipgloss.Style {
	switch v {
	case editor.Valid:
		return m.styles.Valid
	case editor.Invalid:
		return m.styles.Invalid
	default:
		return m.styles.Pending
	}
}

// renderWithCursor draws before|cursor|after into at most width cells. When
// the text is too wide the head is dropped so the cursor stays visible.
func renderWithCursor(st Styles, before, after string, width int) string {
	if width <= 0 {
		return ""
	}

	cursorCell := " "
	rest := after
	if clusters := grapheme.Split(after); len(clusters) > 0 {
		cursorCell = clusters[0]
		rest = strings.Join(clusters[1:], "")
	}

	for grapheme.Width(before)+grapheme.Width(cursorCell) > width {
		clusters := grapheme.Split(before)
		if len(clusters) == 0 {
			break
		}
		before = strings.Join(clusters[1:], "")
	}
	used := grapheme.Width(before) + grapheme.Width(cursorCell)
	rest = grapheme.Truncate(rest, width-used, "")

	return st.Text.Render(before) + st.Cursor.Render(cursorCell) + st.Text.Render(rest)
}

// titledBox draws a three-row box with title set into the top border. Every
// row is exactly width cells wide.
func titledBox(b lipgloss.Border, frame lipgloss.Style, title, content string, width int) string {
	if width < 2 {
		width = 2
	}
	inner := width - 2

	title = grapheme.Truncate(title, inner, "")
	top := b.TopLeft + title + strings.Repeat(b.Top, inner-grapheme.Width(title)) + b.TopRight

	pad := inner - lipgloss.Width(content)
	if pad < 0 {
		pad = 0
	}
	middle := frame.Render(b.Left) + content + strings.Repeat(" ", pad) + frame.Render(b.Right)

	bottom := b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight

	return strings.Join([]string{frame.Render(top), middle, frame.Render(bottom)}, "\n")
}
