package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"blockpuzzle/src"
	"blockpuzzle/src/base"
	"blockpuzzle/src/engine"

	"golang.org/x/term"
)

type DrawFunc func(w io.Writer, snap base.Snapshot)

type CLIProcessing struct {
	builder *src.GameBuilder
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
}

func NewCLI(b *src.GameBuilder, draw DrawFunc) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: os.Stdin, out: os.Stdout}
}

// NewCLIWithIO reads commands from in, used for scripted sessions
func NewCLIWithIO(b *src.GameBuilder, draw DrawFunc, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: in, out: out}
}

const helpText = `Commands:
  p <slot> <cell>      place piece from slot (1-3) with its top-left at cell, e.g. "p 2 c4"
  p <slot> <row> <col> same with 1-based row and column
  <slot> <cell>        short form of p
  ?                    hint
  !                    let the engine place a piece
  moves                list placements
  share                score summary with an emoji board
  new                  start a new game
  help                 this text
  q                    quit`

// raw processing
// - type a command and press Enter
// - Backspace edits the line
// - q or Ctrl+C to exit
// - redraw board every accepted turn
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	// raw mode needs explicit carriage returns
	rawOut := c.out
	c.out = crlfWriter{w: rawOut}
	defer func() { c.out = rawOut }()

	r := bufio.NewReader(f)
	var inputBuf strings.Builder

	c.redraw()
	fmt.Fprint(c.out, "\nType 'help' for commands.\n> ")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprintln(c.out, "\nInterrupted")
			return nil
		}
		if b == 0x1b { // escape sequences are not used, swallow CSI
			if b1, err := r.ReadByte(); err == nil && b1 == '[' {
				_, _ = r.ReadByte()
			}
			continue
		}
		if b == 0x7f || b == 0x08 { // backspace
			s := inputBuf.String()
			if len(s) > 0 {
				inputBuf.Reset()
				inputBuf.WriteString(s[:len(s)-1])
				fmt.Fprint(c.out, "\b \b")
			}
			continue
		}

		if b == '\r' || b == '\n' {
			s := strings.TrimSpace(inputBuf.String())
			inputBuf.Reset()
			fmt.Fprintln(c.out)
			if s != "" && c.handle(s) {
				fmt.Fprintln(c.out, "Quitting")
				return nil
			}
			fmt.Fprint(c.out, "> ")
			continue
		}

		if b >= 32 && b <= 126 {
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Type 'help' for commands, 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if c.handle(line) {
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one command and reports whether the session should end
func (c *CLIProcessing) handle(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return true
	case "help", "h":
		fmt.Fprintln(c.out, helpText)
	case "moves", "m":
		moves := c.builder.MovesText()
		if moves == "" {
			moves = "(none)"
		}
		fmt.Fprintf(c.out, "Moves: %s\n", moves)
	case "share":
		fmt.Fprint(c.out, c.builder.ShareText())
	case "new", "n":
		c.builder.NewGame()
		c.redraw()
	case "?", "hint":
		c.hint()
	case "!", "auto":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		out, err := c.builder.EngineMove(ctx)
		c.report(out, err)
	case "p", "place":
		c.place(fields[1:])
	default:
		if _, err := strconv.Atoi(fields[0]); err == nil {
			c.place(fields)
			return false
		}
		fmt.Fprintf(c.out, "Unknown command: %s\n", line)
	}
	return false
}

func (c *CLIProcessing) place(args []string) {
	slot, pos, err := ParsePlacement(args)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid command: %v\n", err)
		return
	}
	out, err := c.builder.PlaceAt(slot, pos.Row, pos.Col)
	c.report(out, err)
}

func (c *CLIProcessing) report(out src.PlacementOutcome, err error) {
	switch {
	case errors.Is(err, base.ErrInvalidGameState):
		fmt.Fprintln(c.out, "Game is over, type 'new' to play again")
		return
	case errors.Is(err, engine.ErrNoMove):
		fmt.Fprintln(c.out, "No move available")
		return
	case err != nil:
		fmt.Fprintf(c.out, "Invalid move: %v\n", err)
		return
	}
	c.redraw()
	if out.LinesCleared > 0 {
		fmt.Fprintf(c.out, "Cleared %d line(s), +%d\n", out.LinesCleared, out.PointsAwarded)
	}
	if out.GameOver {
		fmt.Fprintf(c.out, "Game over! Final score: %d. Type 'new' to play again.\n", c.builder.Score())
	}
}

func (c *CLIProcessing) hint() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := c.builder.Hint(ctx)
	if err != nil {
		if errors.Is(err, base.ErrInvalidGameState) {
			fmt.Fprintln(c.out, "Game is over, type 'new' to play again")
			return
		}
		fmt.Fprintln(c.out, "No move available")
		return
	}
	slot := 0
	if i, ok := c.builder.Inventory().Find(s.PieceID); ok {
		slot = i + 1
	}
	cell, _ := base.AlgebraicFromPoint(s.At)
	fmt.Fprintf(c.out, "Hint: slot %d (%s) at %s, clears %d line(s)\n", slot, s.Shape, cell, s.Lines)
}

func (c *CLIProcessing) redraw() {
	c.draw(c.out, c.builder.Snapshot())
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	fmt.Fprintf(c.out, "Score: %d\n", c.builder.Score())
	fmt.Fprintf(c.out, "Status: %s\n", c.builder.Status())
}

// ParsePlacement reads "<slot> <cell>" or "<slot> <row> <col>", all 1-based;
// the returned slot is 0-based
func ParsePlacement(args []string) (int, base.Point, error) {
	if len(args) != 2 && len(args) != 3 {
		return 0, base.Point{}, fmt.Errorf("want <slot> <cell> or <slot> <row> <col>")
	}
	slot, err := strconv.Atoi(args[0])
	if err != nil || slot < 1 {
		return 0, base.Point{}, fmt.Errorf("invalid slot %q", args[0])
	}
	if len(args) == 2 {
		p, err := base.PointFromAlgebraic(args[1])
		if err != nil {
			return 0, base.Point{}, err
		}
		return slot - 1, p, nil
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, base.Point{}, fmt.Errorf("invalid row %q", args[1])
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return 0, base.Point{}, fmt.Errorf("invalid column %q", args[2])
	}
	// range is checked by the game itself
	return slot - 1, base.Point{Row: row - 1, Col: col - 1}, nil
}

type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(cw.w, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
