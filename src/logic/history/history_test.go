package history

import (
	"testing"

	"blockpuzzle/src/base"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, "", h.MovesAsText())

	h.Push(Entry{PieceID: "x", Shape: "mono", At: base.Point{Row: 0, Col: 0}, ScoreAfter: 0})
	h.Push(Entry{PieceID: "y", Shape: "tri-h", At: base.Point{Row: 0, Col: 1}, Lines: 1, Points: 10, ScoreAfter: 10})

	require.Equal(t, 2, h.Len())
	assert.Equal(t, 2, h.Entries()[1].Turn)
	assert.Equal(t, 1, h.TotalLines())
	assert.Equal(t, "1. mono a1 2. tri-h b1 +10", h.MovesAsText())

	// copies do not alias
	entries := h.Entries()
	entries[0].Shape = "changed"
	assert.Equal(t, "mono", h.Entries()[0].Shape)

	h.Reset()
	assert.Equal(t, 0, h.Len())
	h.Push(Entry{Shape: "mono"})
	assert.Equal(t, 1, h.Entries()[0].Turn)
}

func TestNotationOutOfBoard(t *testing.T) {
	e := Entry{Shape: "mono", At: base.Point{Row: 12, Col: 0}}
	assert.Equal(t, "mono (12,0)", e.Notation())
}

func TestNilHistoryText(t *testing.T) {
	var h *History
	assert.Equal(t, "", h.MovesAsText())
}
