package history

import (
	"fmt"
	"strings"

	"blockpuzzle/src/base"
)

// accepted placements of one game, oldest first; read only, no undo
type History struct {
	entries []Entry
}

type Entry struct {
	Turn       int
	PieceID    string
	Shape      string
	Color      int
	At         base.Point
	Lines      int
	Points     int
	ScoreAfter int
}

// example: "tetra-o c3 +40"
func (e Entry) Notation() string {
	pos, err := base.AlgebraicFromPoint(e.At)
	if err != nil {
		pos = e.At.String()
	}
	if e.Points > 0 {
		return fmt.Sprintf("%s %s +%d", e.Shape, pos, e.Points)
	}
	return fmt.Sprintf("%s %s", e.Shape, pos)
}

func NewHistory() *History {
	return &History{entries: make([]Entry, 0)}
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Push(e Entry) {
	e.Turn = len(h.entries) + 1
	h.entries = append(h.entries, e)
}

func (h *History) Reset() {
	h.entries = h.entries[:0]
}

func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) TotalLines() int {
	n := 0
	for _, e := range h.entries {
		n += e.Lines
	}
	return n
}

// returned string with all turns
// example: "1. mono a1 2. tri-h b1 +10"
func (h *History) MovesAsText() string {
	if h == nil || h.Len() == 0 {
		return ""
	}
	parts := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		parts = append(parts, fmt.Sprintf("%d. %s", e.Turn, e.Notation()))
	}
	return strings.Join(parts, " ")
}
