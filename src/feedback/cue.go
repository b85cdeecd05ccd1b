package feedback

import (
	"errors"
	"sort"
	"sync"
	"time"

	"blockpuzzle/src"
	"blockpuzzle/src/base"
)

type CueKind uint8

const (
	CueDragStart CueKind = iota
	CuePlace
	CueReject
	CueClear
	CueRefill
	CueGameOver
)

func (k CueKind) String() string {
	switch k {
	case CueDragStart:
		return "drag-start"
	case CuePlace:
		return "place"
	case CueReject:
		return "reject"
	case CueClear:
		return "clear"
	case CueRefill:
		return "refill"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// presentation delays, they never hold back the committed state
const (
	ClearDelay    = 100 * time.Millisecond
	RefillDelay   = 300 * time.Millisecond
	GameOverDelay = 500 * time.Millisecond
)

// Cue is one sound or visual effect; an empty Note means silent
type Cue struct {
	Kind  CueKind
	Note  string
	Value string // note value: "4n", "8n", "16n", "32n"
	Delay time.Duration

	// clear cues carry their own result, later drops may land before they fire
	Lines  int
	Points int
	Cells  map[base.Point]bool
}

func (c Cue) Silent() bool {
	return c.Note == ""
}

func DragStart() Cue {
	return Cue{Kind: CueDragStart, Note: "A4", Value: "32n"}
}

func Reject() Cue {
	return Cue{Kind: CueReject, Note: "C3", Value: "16n"}
}

// ForPlacement maps the result of GameBuilder.Place to ordered cues
func ForPlacement(out src.PlacementOutcome, err error) []Cue {
	if err != nil {
		if errors.Is(err, base.ErrInvalidPlacement) {
			return []Cue{Reject()}
		}
		return nil
	}
	if !out.Accepted {
		return nil
	}

	cues := []Cue{{Kind: CuePlace, Note: "C5", Value: "8n"}}
	if out.LinesCleared > 0 {
		cues = append(cues, Cue{
			Kind:   CueClear,
			Note:   "E5",
			Value:  "4n",
			Delay:  ClearDelay,
			Lines:  out.LinesCleared,
			Points: out.PointsAwarded,
			Cells:  out.ClearedCells(),
		})
	}
	if out.Refilled {
		cues = append(cues, Cue{Kind: CueRefill, Delay: RefillDelay})
	}
	if out.GameOver {
		cues = append(cues, Cue{Kind: CueGameOver, Delay: GameOverDelay})
	}
	return cues
}

type scheduled struct {
	at  time.Time
	cue Cue
}

// Timeline releases cues once their delay has elapsed
type Timeline struct {
	mu      sync.Mutex
	pending []scheduled
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (tl *Timeline) Push(now time.Time, cues ...Cue) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	for _, c := range cues {
		tl.pending = append(tl.pending, scheduled{at: now.Add(c.Delay), cue: c})
	}
	sort.SliceStable(tl.pending, func(i, j int) bool {
		return tl.pending[i].at.Before(tl.pending[j].at)
	})
}

// Due pops every cue scheduled at or before now, oldest first
func (tl *Timeline) Due(now time.Time) []Cue {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	n := 0
	for n < len(tl.pending) && !tl.pending[n].at.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]Cue, n)
	for i := 0; i < n; i++ {
		out[i] = tl.pending[i].cue
	}
	tl.pending = append(tl.pending[:0], tl.pending[n:]...)
	return out
}

func (tl *Timeline) Len() int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return len(tl.pending)
}

// Clear drops everything pending, e.g. on a new game
func (tl *Timeline) Clear() {
	tl.mu.Lock()
	tl.pending = nil
	tl.mu.Unlock()
}
