package core

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineLabel(t *testing.T) {
	assert.Equal(t, "⬞ 1 ", LineLabel(1))
	assert.Equal(t, "⬞ 9 ", LineLabel(9))
	assert.Equal(t, "⬞42 ", LineLabel(42))
	assert.Equal(t, "123 ", LineLabel(123))
	assert.Equal(t, "1000 ", LineLabel(1000))
}

func TestProject_OneRowPerLine(t *testing.T) {
	doc := Parse("ab\n\ncd\n")
	rows := slices.Collect(Project(doc, at(0, 1), ProjectOptions{LineNumbers: true}))

	require.Len(t, rows, 3)
	assert.Equal(t, "⬞ 1 ", rows[0].Label)
	assert.Equal(t, "ab", rows[0].Text())
	assert.Equal(t, "⬞", rows[1].Text())
	assert.Equal(t, 2, rows[2].Index)
}

func TestProject_HighlightsCursorCell(t *testing.T) {
	doc := Parse("abc\nxyz")
	rows := slices.Collect(Project(doc, at(1, 2), ProjectOptions{}))

	for _, s := range rows[0].Segments {
		assert.False(t, s.Highlighted)
	}
	assert.Equal(t, []Segment{
		{Text: "x"},
		{Text: "y"},
		{Text: "z", Highlighted: true},
	}, rows[1].Segments)
	assert.Empty(t, rows[1].Label)
}

func TestProject_EmptyLinePlaceholder(t *testing.T) {
	doc := Parse("\nx")
	rows := slices.Collect(Project(doc, at(0, 0), ProjectOptions{}))

	assert.Equal(t, []Segment{{Text: "⬞", Highlighted: true, Placeholder: true}}, rows[0].Segments)
	assert.Equal(t, []Segment{{Text: "x"}}, rows[1].Segments)
	assert.Equal(t, []string{"", "x"}, doc.Lines(), "projection must not touch the document")
}

func TestProject_CursorPastEndOfLine(t *testing.T) {
	doc := Parse("ab")
	rows := slices.Collect(Project(doc, at(0, 2), ProjectOptions{}))

	require.Len(t, rows[0].Segments, 3)
	assert.Equal(t, Segment{Text: " ", Highlighted: true, Placeholder: true}, rows[0].Segments[2])
}

func TestProject_StopsWhenConsumerStops(t *testing.T) {
	doc := Parse("a\nb\nc\nd")
	n := 0
	for range Project(doc, Cursor{}, ProjectOptions{}) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestTitle_UnnamedBuffer(t *testing.T) {
	state := InitialState()
	state.Mode = InsertMode

	assert.Equal(t, "<INSERT>-[No Name]-|2:5|-[3]", Title(state, at(1, 4), 3500*time.Millisecond))
}

func TestMode_Label(t *testing.T) {
	assert.Equal(t, "NORMAL", NormalMode.Label())
	assert.Equal(t, "INSERT", InsertMode.Label())
	assert.Equal(t, "DEBUG", DebugMode.Label())
	assert.Equal(t, "NULL", Mode("visual").Label())
}
