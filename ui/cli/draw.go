package cli

import (
	"fmt"
	"io"
	"strings"

	"blockpuzzle/src/base"
)

// ANSI-code
const (
	reset  = "\033[0m"
	emptyA = "\033[48;5;236m"
	emptyB = "\033[48;5;238m"
	dimF   = "\033[90m"
)

// background per piece colour, same order as base.ColorName
var colorBg = [base.ColorCount]string{
	"\033[41m",       // red
	"\033[48;5;208m", // orange
	"\033[43m",       // yellow
	"\033[42m",       // green
	"\033[44m",       // blue
	"\033[45m",       // purple
	"\033[48;5;213m", // pink
}

func cellBg(c base.Cell, r, col int) string {
	if c.IsEmpty() {
		// 3x3 boxes shaded alternately
		if (r/3+col/3)%2 == 0 {
			return emptyA
		}
		return emptyB
	}
	return colorBg[c.Color()]
}

func PrintSnapshot(w io.Writer, snap base.Snapshot) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h  i")
	for r := 0; r < base.GridSize; r++ {
		fmt.Fprintf(w, "%d ", r+1)
		for c := 0; c < base.GridSize; c++ {
			cell := snap.Board[r][c]
			g := " "
			if cell.IsEmpty() {
				g = dimF + "·"
			}
			fmt.Fprintf(w, "%s %s %s", cellBg(cell, r, c), g, reset)
		}
		fmt.Fprintf(w, " %d\n", r+1)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h  i")
	fmt.Fprintln(w)
	PrintInventory(w, snap.Inventory)
}

// PrintInventory draws the pieces side by side under their slot numbers
func PrintInventory(w io.Writer, inv base.Inventory) {
	if len(inv) == 0 {
		return
	}
	height := 0
	for _, p := range inv {
		height = max(height, p.Shape.Rows)
	}

	var sb strings.Builder
	for i, p := range inv {
		label := fmt.Sprintf("%d:%s", i+1, p.Shape.Name)
		sb.WriteString(pad(label, pieceWidth(p)))
	}
	fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))

	for r := 0; r < height; r++ {
		sb.Reset()
		for _, p := range inv {
			width := pieceWidth(p)
			used := 0
			for c := 0; c < p.Shape.Cols; c++ {
				if p.Shape.Occupied(r, c) {
					sb.WriteString(colorBg[p.Color] + "  " + reset)
				} else {
					sb.WriteString("  ")
				}
				used += 2
			}
			sb.WriteString(strings.Repeat(" ", width-used))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
	fmt.Fprintln(w)
}

func pieceWidth(p base.Piece) int {
	return max(p.Shape.Cols*2, len(p.Shape.Name)+2) + 3
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
