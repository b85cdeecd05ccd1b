package myengine

import (
	"context"
	"fmt"

	"blockpuzzle/src/base"
	"blockpuzzle/src/engine"
	"blockpuzzle/src/logic/rules"
)

// greedy one-ply search over every (piece, origin) pair
type GreedyEngine struct{}

func NewGreedyEngine() *GreedyEngine {
	return &GreedyEngine{}
}

func (e *GreedyEngine) Name() string {
	return "greedy"
}

func (e *GreedyEngine) Suggest(ctx context.Context, snap base.Snapshot) (engine.Suggestion, error) {
	if snap.Status == base.Over {
		return engine.Suggestion{}, fmt.Errorf("suggest: %w", base.ErrInvalidGameState)
	}

	var best engine.Suggestion
	found := false
	for i, piece := range snap.Inventory {
		if err := ctx.Err(); err != nil {
			return engine.Suggestion{}, err
		}
		others := append(snap.Inventory[:i:i], snap.Inventory[i+1:]...)
		for _, at := range rules.Placements(piece.Shape, &snap.Board) {
			placed, _ := rules.Stamp(snap.Board, piece.Shape, at.Row, at.Col, piece.Color)
			lines := rules.EvaluateLines(placed)
			after := rules.ApplyClear(placed, lines)

			s := engine.Suggestion{
				PieceID:  piece.ID,
				Shape:    piece.Shape.Name,
				At:       at,
				Lines:    lines.Count(),
				Points:   rules.Points(lines.Count()),
				Mobility: mobility(others, &after),
			}
			if !found || engine.Better(s, best) {
				best = s
				found = true
			}
		}
	}
	if !found {
		return engine.Suggestion{}, engine.ErrNoMove
	}
	return best, nil
}

func mobility(inv base.Inventory, b *base.Board) int {
	n := 0
	for _, p := range inv {
		n += len(rules.Placements(p.Shape, b))
	}
	return n
}
