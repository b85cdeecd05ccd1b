package engine

import (
	"context"
	"errors"

	"blockpuzzle/src/base"
)

var ErrNoMove = errors.New("no placement available")

// Suggestion is a single placement proposed for the current inventory
type Suggestion struct {
	PieceID  string
	Shape    string
	At       base.Point
	Lines    int // lines the placement would clear
	Points   int
	Mobility int // placements left for the other pieces afterwards
}

// Engine looks one placement ahead; it is a hint source, not a solver
type Engine interface {
	Name() string
	Suggest(ctx context.Context, snap base.Snapshot) (Suggestion, error)
}

// Better orders suggestions: more lines, then more mobility, then earlier in scan order
func Better(a, b Suggestion) bool {
	if a.Lines != b.Lines {
		return a.Lines > b.Lines
	}
	return a.Mobility > b.Mobility
}
