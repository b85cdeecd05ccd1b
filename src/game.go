package src

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"blockpuzzle/src/base"
	"blockpuzzle/src/engine"
	"blockpuzzle/src/logic/generator"
	"blockpuzzle/src/logic/history"
	"blockpuzzle/src/logic/rules"
	"blockpuzzle/src/logx"
)

// PlacementOutcome is everything a front end needs to render and sound one turn
type PlacementOutcome struct {
	Accepted      bool
	Piece         base.Piece
	At            base.Point
	Placed        []base.Point // cells stamped before any clear
	ClearedRows   []int
	ClearedCols   []int
	LinesCleared  int
	PointsAwarded int
	Refilled      bool
	GameOver      bool
	Snapshot      base.Snapshot
}

// ClearedCells lists every cell of the cleared rows and columns; a cell on a
// crossing appears once
func (out PlacementOutcome) ClearedCells() map[base.Point]bool {
	cells := map[base.Point]bool{}
	for _, r := range out.ClearedRows {
		for c := 0; c < base.GridSize; c++ {
			cells[base.Point{Row: r, Col: c}] = true
		}
	}
	for _, c := range out.ClearedCols {
		for r := 0; r < base.GridSize; r++ {
			cells[base.Point{Row: r, Col: c}] = true
		}
	}
	return cells
}

// at first use NewGame
type GameBuilder struct {
	board     base.Board
	inventory base.Inventory
	score     int
	status    base.GameStatus
	rng       *rand.Rand
	gen       *generator.Generator
	history   *history.History
	engine    engine.Engine
	logger    logx.Logger
}

func NewBuilderBoard(logger logx.Logger, rng *rand.Rand) *GameBuilder {
	if logger == nil {
		logger = logx.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	gen, err := generator.NewGenerator(rng, base.Catalog(), base.ColorCount)
	if err != nil {
		// the built-in catalog and palette are never empty
		panic(err)
	}
	gb := &GameBuilder{
		board:   base.NewBoard(),
		status:  base.InProgress,
		rng:     rng,
		gen:     gen,
		history: history.NewHistory(),
		logger:  logger.Named("game"),
	}
	return gb
}

// SetCatalog restricts future batches to the given shapes
func (gb *GameBuilder) SetCatalog(catalog []base.Shape) error {
	gen, err := generator.NewGenerator(gb.rng, catalog, base.ColorCount)
	if err != nil {
		return err
	}
	gb.gen = gen
	return nil
}

// NewGame replaces the whole state; valid from any status
func (gb *GameBuilder) NewGame() base.Snapshot {
	gb.logger.Debug("create new game")
	gb.board = base.NewBoard()
	gb.inventory = gb.gen.Batch()
	gb.score = 0
	gb.status = base.InProgress
	gb.history.Reset()
	gb.logger.Infof("new game, inventory: %v", gb.inventory)
	return gb.Snapshot()
}

func (gb *GameBuilder) Status() base.GameStatus {
	return gb.status
}

func (gb *GameBuilder) Score() int {
	return gb.score
}

func (gb *GameBuilder) CurrentBoard() base.Board {
	return gb.board
}

func (gb *GameBuilder) Inventory() base.Inventory {
	return gb.inventory.Clone()
}

func (gb *GameBuilder) Piece(id string) (base.Piece, bool) {
	i, ok := gb.inventory.Find(id)
	if !ok {
		return base.Piece{}, false
	}
	return gb.inventory[i], true
}

// PieceAt resolves a display slot (0-based) to a piece
func (gb *GameBuilder) PieceAt(slot int) (base.Piece, bool) {
	if slot < 0 || slot >= len(gb.inventory) {
		return base.Piece{}, false
	}
	return gb.inventory[slot], true
}

func (gb *GameBuilder) Snapshot() base.Snapshot {
	return base.Snapshot{
		Board:     gb.board,
		Inventory: gb.inventory.Clone(),
		Score:     gb.score,
		Status:    gb.status,
	}
}

// IsPlaceable checks the committed board only, for drag previews
func (gb *GameBuilder) IsPlaceable(shape base.Shape, row, col int) bool {
	return rules.CanPlace(shape, row, col, &gb.board)
}

// Place validates fully before any write; a rejected call leaves the state untouched
func (gb *GameBuilder) Place(id string, row, col int) (PlacementOutcome, error) {
	if gb.status == base.Over {
		gb.logger.Warnf("place %s rejected: game is over", id)
		return PlacementOutcome{Snapshot: gb.Snapshot()}, fmt.Errorf("place piece %s: %w", id, base.ErrInvalidGameState)
	}
	idx, ok := gb.inventory.Find(id)
	if !ok {
		gb.logger.Warnf("place %s rejected: not in inventory", id)
		return PlacementOutcome{Snapshot: gb.Snapshot()}, fmt.Errorf("piece %s not in inventory: %w", id, base.ErrInvalidPlacement)
	}
	piece := gb.inventory[idx]
	if !rules.CanPlace(piece.Shape, row, col, &gb.board) {
		gb.logger.Debugf("place %v at (%d,%d) rejected: blocked", piece, row, col)
		return PlacementOutcome{Piece: piece, At: base.Point{Row: row, Col: col}, Snapshot: gb.Snapshot()},
			fmt.Errorf("piece %s at (%d,%d): %w", id, row, col, base.ErrInvalidPlacement)
	}

	placed, cells := rules.Stamp(gb.board, piece.Shape, row, col, piece.Color)
	lines := rules.EvaluateLines(placed)
	cleared := rules.ApplyClear(placed, lines)
	points := rules.Points(lines.Count())

	inv := gb.inventory.Remove(id)
	refilled := false
	if len(inv) == 0 {
		inv = gb.gen.Batch()
		refilled = true
	}
	over := rules.CheckTerminal(inv, &cleared)

	// commit
	gb.board = cleared
	gb.inventory = inv
	gb.score += points
	if over {
		gb.status = base.Over
	}
	gb.history.Push(history.Entry{
		PieceID:    piece.ID,
		Shape:      piece.Shape.Name,
		Color:      piece.Color,
		At:         base.Point{Row: row, Col: col},
		Lines:      lines.Count(),
		Points:     points,
		ScoreAfter: gb.score,
	})

	gb.logger.Infof("place %v at (%d,%d): lines=%d points=%d score=%d", piece, row, col, lines.Count(), points, gb.score)
	if refilled {
		gb.logger.Debugf("inventory refilled: %v", gb.inventory)
	}
	if over {
		gb.logger.Infof("game over, final score %d", gb.score)
	}

	return PlacementOutcome{
		Accepted:      true,
		Piece:         piece,
		At:            base.Point{Row: row, Col: col},
		Placed:        cells,
		ClearedRows:   lines.Rows,
		ClearedCols:   lines.Cols,
		LinesCleared:  lines.Count(),
		PointsAwarded: points,
		Refilled:      refilled,
		GameOver:      over,
		Snapshot:      gb.Snapshot(),
	}, nil
}

// PlaceAt is Place addressed by display slot, used by text front ends
func (gb *GameBuilder) PlaceAt(slot, row, col int) (PlacementOutcome, error) {
	p, ok := gb.PieceAt(slot)
	if !ok {
		return PlacementOutcome{Snapshot: gb.Snapshot()}, fmt.Errorf("slot %d is empty: %w", slot+1, base.ErrInvalidPlacement)
	}
	return gb.Place(p.ID, row, col)
}

func (gb *GameBuilder) History() *history.History {
	return gb.history
}

// all turns as text
func (gb *GameBuilder) MovesText() string {
	return gb.history.MovesAsText()
}

func (gb *GameBuilder) CountTurns() int {
	return gb.history.Len()
}

var shareGlyph = [base.ColorCount]string{"🟥", "🟧", "🟨", "🟩", "🟦", "🟪", "🩷"}

// ShareText summarises the game for the clipboard
func (gb *GameBuilder) ShareText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Block Puzzle: score %d, %d turns, %d lines\n", gb.score, gb.history.Len(), gb.history.TotalLines())
	for r := 0; r < base.GridSize; r++ {
		for c := 0; c < base.GridSize; c++ {
			cell := gb.board[r][c]
			if cell.IsEmpty() {
				sb.WriteString("⬜")
				continue
			}
			sb.WriteString(shareGlyph[cell.Color()])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ---- Engine ----

func (gb *GameBuilder) SetEngineWorker(e engine.Engine) {
	gb.engine = e
}

func (gb *GameBuilder) EngineName() string {
	if gb.engine == nil {
		return ""
	}
	return gb.engine.Name()
}

func (gb *GameBuilder) Hint(ctx context.Context) (engine.Suggestion, error) {
	if gb.engine == nil {
		return engine.Suggestion{}, fmt.Errorf("no engine configured: %w", engine.ErrNoMove)
	}
	s, err := gb.engine.Suggest(ctx, gb.Snapshot())
	if err != nil {
		gb.logger.Debugf("hint failed: %v", err)
		return engine.Suggestion{}, err
	}
	gb.logger.Debugf("hint from %s: %s at %v (lines=%d)", gb.engine.Name(), s.Shape, s.At, s.Lines)
	return s, nil
}

// EngineMove plays the engine's suggestion
func (gb *GameBuilder) EngineMove(ctx context.Context) (PlacementOutcome, error) {
	s, err := gb.Hint(ctx)
	if err != nil {
		return PlacementOutcome{Snapshot: gb.Snapshot()}, err
	}
	return gb.Place(s.PieceID, s.At.Row, s.At.Col)
}
