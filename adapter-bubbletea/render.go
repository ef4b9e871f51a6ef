package bubble_adapter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/ionut-t/tedit/core"
)

// truncate cuts s to at most width terminal cells, never splitting a grapheme.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var (
		b     strings.Builder
		used  int
		state = -1
	)
	for len(s) > 0 {
		var (
			cluster string
			w       int
		)
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}

// horizontalOffset returns how many segments to skip so column col stays
// inside a text area of width cells.
func horizontalOffset(col, width int) int {
	if width <= 0 {
		return col
	}
	return max(col-width+1, 0)
}

// renderRow styles one projected row, skipping offset segments and clipping
// the text to width cells.
func (m *Model) renderRow(row core.Row, offset, width int) string {
	var b strings.Builder

	textWidth := width
	if row.Label != "" {
		label := truncate(row.Label, width)
		b.WriteString(m.theme.LineNumberStyle.Render(label))
		textWidth -= uniseg.StringWidth(label)
	}

	used := 0
	for i, seg := range row.Segments {
		if i < offset {
			continue
		}
		w := uniseg.StringWidth(seg.Text)
		if used+w > textWidth {
			break
		}
		used += w

		switch {
		case seg.Highlighted:
			b.WriteString(m.theme.CursorStyle.Render(seg.Text))
		case seg.Placeholder:
			b.WriteString(m.theme.PlaceholderStyle.Render(seg.Text))
		default:
			b.WriteString(seg.Text)
		}
	}

	return b.String()
}

// titleBar draws the top edge of the frame with the title centred in it.
func (m *Model) titleBar(title string, width int) string {
	border := lipgloss.RoundedBorder()
	inner := max(width-2, 0)

	title = truncate(" "+title+" ", inner)
	titleWidth := uniseg.StringWidth(title)
	left := (inner - titleWidth) / 2
	right := inner - titleWidth - left

	return m.theme.BorderStyle.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		m.theme.TitleStyle.Render(title) +
		m.theme.BorderStyle.Render(strings.Repeat(border.Top, right)+border.TopRight)
}

// renderContent rebuilds the viewport content from a fresh projection and
// scrolls it so the cursor row is visible.
func (m *Model) renderContent() {
	cursor := m.editor.GetCursor()
	offset := horizontalOffset(cursor.Position.Col, m.textWidth())

	lines := make([]string, 0, m.editor.GetDocument().LineCount())
	for row := range m.editor.View() {
		lines = append(lines, m.renderRow(row, offset, m.viewport.Width))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	row := cursor.Position.Row
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
	} else if row >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

// textWidth is the width left for text once the line-number gutter is drawn.
func (m *Model) textWidth() int {
	if !m.editor.Options().ShowLineNumbers {
		return m.viewport.Width
	}
	gutter := uniseg.StringWidth(core.LineLabel(m.editor.GetDocument().LineCount()))
	return max(m.viewport.Width-gutter, 1)
}
