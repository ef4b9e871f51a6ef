package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertCharacter(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		cursor  Cursor
		r       rune
		want    []string
		wantCol int
	}{
		{"empty line", "", at(0, 0), 'a', []string{"a"}, 1},
		{"middle", "ac", at(0, 1), 'b', []string{"abc"}, 2},
		{"start", "bc", at(0, 0), 'a', []string{"abc"}, 1},
		{"append", "ab", at(0, 2), 'c', []string{"abc"}, 3},
		{"other lines untouched", "x\nac\ny", at(1, 1), 'b', []string{"x", "abc", "y"}, 2},
		{"unicode", "世", at(0, 1), '界', []string{"世界"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.text)
			got, err := InsertCharacter(doc, tt.cursor, tt.r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Lines())
			assert.Equal(t, tt.wantCol, got.Position.Col)
			assert.Equal(t, tt.cursor.Position.Row, got.Position.Row)
		})
	}
}

func TestInsertLineBreak_OpensLineBelowWithoutMovingCursor(t *testing.T) {
	doc := Parse("ab\ncd")
	c := at(0, 1)

	got, err := InsertLineBreak(doc, c)
	require.NoError(t, err)

	assert.Equal(t, []string{"ab", "", "cd"}, doc.Lines())
	assert.Equal(t, c.Position, got.Position)
	assert.Equal(t, "ab\n\ncd\n", doc.Serialize())
}

func TestDeleteCharacterBefore(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		cursor  Cursor
		want    []string
		wantCol int
	}{
		{"removes rune before cursor", "ab\ncd", at(0, 1), []string{"b", "cd"}, 0},
		{"at end of line", "abc", at(0, 3), []string{"ab"}, 2},
		{"start of line is a no-op", "ab\ncd", at(1, 0), []string{"ab", "cd"}, 0},
		{"empty line is a no-op", "", at(0, 0), []string{""}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.text)
			got, err := DeleteCharacterBefore(doc, tt.cursor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Lines())
			assert.Equal(t, tt.wantCol, got.Position.Col)
		})
	}
}

func TestInsertThenDeleteRestoresLine(t *testing.T) {
	for _, text := range []string{"", "a", "hello", "héllo wörld"} {
		for col := 0; col <= len([]rune(text)); col++ {
			doc := Parse(text)
			before := doc.Lines()
			c := at(0, col)

			inserted, err := InsertCharacter(doc, c, 'Z')
			require.NoError(t, err)
			restored, err := DeleteCharacterBefore(doc, inserted)
			require.NoError(t, err)

			assert.Equal(t, before, doc.Lines(), "text %q col %d", text, col)
			assert.Equal(t, col, restored.Position.Col, "text %q col %d", text, col)
		}
	}
}

func TestEditOperationsClampStaleCursor(t *testing.T) {
	doc := Parse("ab")

	got, err := InsertCharacter(doc, at(4, 9), 'c')
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, doc.Lines())
	assert.Equal(t, Position{Row: 0, Col: 3}, got.Position)

	got, err = DeleteCharacterBefore(doc, at(0, 99))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, doc.Lines())
	assert.Equal(t, 2, got.Position.Col)
}
