package base

import (
	"fmt"
	"strings"
)

// Shape is a value type: copying it never shares the mask
type Shape struct {
	Name string
	Rows int
	Cols int
	Mask [GridSize][GridSize]bool
}

// ParseShape reads a pattern where 'X' (or '#') is occupied and '.' is empty
func ParseShape(name string, rows ...string) (Shape, error) {
	s := Shape{Name: name}
	if len(rows) > GridSize {
		return Shape{}, fmt.Errorf("shape %s: %d rows exceed grid size %d", name, len(rows), GridSize)
	}
	for r, line := range rows {
		if len(line) > GridSize {
			return Shape{}, fmt.Errorf("shape %s: row %d wider than grid size %d", name, r, GridSize)
		}
		if r > 0 && len(line) != s.Cols {
			return Shape{}, fmt.Errorf("shape %s: row %d has width %d, want %d", name, r, len(line), s.Cols)
		}
		s.Cols = len(line)
		for c, ch := range line {
			switch ch {
			case 'X', 'x', '#':
				s.Mask[r][c] = true
			case '.', ' ':
			default:
				return Shape{}, fmt.Errorf("shape %s: unexpected symbol %q", name, ch)
			}
		}
	}
	s.Rows = len(rows)
	if s.Cols == 0 {
		s.Rows = 0
	}
	return s, nil
}

func MustShape(name string, rows ...string) Shape {
	s, err := ParseShape(name, rows...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Shape) Occupied(r, c int) bool {
	if r < 0 || r >= s.Rows || c < 0 || c >= s.Cols {
		return false
	}
	return s.Mask[r][c]
}

// Cells returns occupied offsets in row-major order
func (s Shape) Cells() []Point {
	out := make([]Point, 0, s.Rows*s.Cols)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if s.Mask[r][c] {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}
	return out
}

func (s Shape) Area() int {
	n := 0
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if s.Mask[r][c] {
				n++
			}
		}
	}
	return n
}

func (s Shape) IsEmpty() bool {
	return s.Area() == 0
}

func (s Shape) String() string {
	lines := make([]string, 0, s.Rows)
	for r := 0; r < s.Rows; r++ {
		var sb strings.Builder
		for c := 0; c < s.Cols; c++ {
			if s.Mask[r][c] {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
