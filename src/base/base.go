package base

import (
	"errors"
	"fmt"
	"strings"
)

const (
	GridSize   int = 9
	BatchSize  int = 3
	ColorCount int = 7
)

var (
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrInvalidGameState = errors.New("invalid game state operation")
)

type GameStatus uint8

const (
	InProgress GameStatus = 0
	Over       GameStatus = 1
)

func (gs GameStatus) String() string {
	switch gs {
	case InProgress:
		return "in progress"
	case Over:
		return "over"
	default:
		return "invalid"
	}
}

// Cell holds a colour index or EmptyCell
type Cell int8

const EmptyCell Cell = -1

func ColorCell(color int) Cell {
	if color < 0 || color >= ColorCount {
		return EmptyCell
	}
	return Cell(color)
}

func (c Cell) IsEmpty() bool {
	return c < 0
}

func (c Cell) Color() int {
	return int(c)
}

type Board [GridSize][GridSize]Cell

func NewBoard() Board {
	var b Board
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			b[r][c] = EmptyCell
		}
	}
	return b
}

func (b Board) At(p Point) Cell {
	if !IsValidPoint(p) {
		return EmptyCell
	}
	return b[p.Row][p.Col]
}

func (b *Board) Set(p Point, c Cell) {
	if !IsValidPoint(p) || b == nil {
		return
	}
	b[p.Row][p.Col] = c
}

func (b Board) Filled() int {
	n := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if !b[r][c].IsEmpty() {
				n++
			}
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if b[r][c].IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + b[r][c]))
			}
		}
		if r < GridSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func IsValidPoint(p Point) bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

type Piece struct {
	ID    string
	Shape Shape
	Color int
}

func (p Piece) String() string {
	return fmt.Sprintf("%s/%s/%d", p.Shape.Name, shortID(p.ID), p.Color)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Inventory is in display order only
type Inventory []Piece

func (inv Inventory) Find(id string) (int, bool) {
	for i, p := range inv {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Remove returns a new inventory without the piece, matched by id only
func (inv Inventory) Remove(id string) Inventory {
	out := make(Inventory, 0, len(inv))
	for _, p := range inv {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return nil
	}
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}

// Snapshot is a read-only projection of a game for renderers
type Snapshot struct {
	Board     Board
	Inventory Inventory
	Score     int
	Status    GameStatus
}

// PointFromAlgebraic reads "a1".."i9": column letter, then row counted from the top
func PointFromAlgebraic(pos string) (Point, error) {
	if len(pos) != 2 {
		return Point{}, fmt.Errorf("invalid position %q", pos)
	}
	col := int(pos[0]) - 'a'
	if pos[0] >= 'A' && pos[0] <= 'Z' {
		col = int(pos[0]) - 'A'
	}
	row := int(pos[1]) - '1'
	p := Point{Row: row, Col: col}
	if !IsValidPoint(p) {
		return Point{}, fmt.Errorf("invalid position %q", pos)
	}
	return p, nil
}

func AlgebraicFromPoint(p Point) (string, error) {
	if !IsValidPoint(p) {
		return "", fmt.Errorf("invalid point %v", p)
	}
	return string([]rune{rune(p.Col + 'a'), rune(p.Row + '1')}), nil
}
