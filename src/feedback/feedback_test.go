package feedback

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"blockpuzzle/src"
	"blockpuzzle/src/base"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(cues []Cue) []CueKind {
	out := make([]CueKind, len(cues))
	for i, c := range cues {
		out[i] = c.Kind
	}
	return out
}

func TestForPlacement(t *testing.T) {
	tests := []struct {
		name string
		out  src.PlacementOutcome
		err  error
		want []CueKind
	}{
		{"rejected", src.PlacementOutcome{}, fmt.Errorf("x: %w", base.ErrInvalidPlacement), []CueKind{CueReject}},
		{"game already over", src.PlacementOutcome{}, fmt.Errorf("x: %w", base.ErrInvalidGameState), []CueKind{}},
		{"other error", src.PlacementOutcome{}, errors.New("boom"), []CueKind{}},
		{"plain", src.PlacementOutcome{Accepted: true}, nil, []CueKind{CuePlace}},
		{"clear", src.PlacementOutcome{Accepted: true, LinesCleared: 2}, nil, []CueKind{CuePlace, CueClear}},
		{
			"everything",
			src.PlacementOutcome{Accepted: true, LinesCleared: 1, Refilled: true, GameOver: true},
			nil,
			[]CueKind{CuePlace, CueClear, CueRefill, CueGameOver},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(ForPlacement(tt.out, tt.err)))
		})
	}
}

func TestCueNotesAndDelays(t *testing.T) {
	cues := ForPlacement(src.PlacementOutcome{Accepted: true, LinesCleared: 3, Refilled: true, GameOver: true}, nil)
	require.Len(t, cues, 4)

	assert.Equal(t, "C5", cues[0].Note)
	assert.Equal(t, time.Duration(0), cues[0].Delay)
	assert.Equal(t, "E5", cues[1].Note)
	assert.Equal(t, 3, cues[1].Lines)
	assert.Equal(t, ClearDelay, cues[1].Delay)
	assert.Equal(t, RefillDelay, cues[2].Delay)
	assert.True(t, cues[2].Silent())
	assert.Equal(t, GameOverDelay, cues[3].Delay)

	assert.Equal(t, "A4", DragStart().Note)
	assert.Equal(t, "C3", Reject().Note)
	assert.Equal(t, "game-over", CueGameOver.String())
}

func TestTimeline(t *testing.T) {
	tl := NewTimeline()
	start := time.Unix(1000, 0)
	tl.Push(start, ForPlacement(src.PlacementOutcome{Accepted: true, LinesCleared: 1, GameOver: true}, nil)...)
	require.Equal(t, 3, tl.Len())

	assert.Equal(t, []CueKind{CuePlace}, kinds(tl.Due(start)))
	assert.Nil(t, tl.Due(start.Add(50*time.Millisecond)))
	assert.Equal(t, []CueKind{CueClear}, kinds(tl.Due(start.Add(ClearDelay))))
	assert.Equal(t, []CueKind{CueGameOver}, kinds(tl.Due(start.Add(time.Second))))
	assert.Equal(t, 0, tl.Len())

	tl.Push(start, DragStart(), Reject())
	tl.Clear()
	assert.Nil(t, tl.Due(start.Add(time.Hour)))
}

func TestNoteFreq(t *testing.T) {
	tests := []struct {
		note string
		want float64
	}{
		{"A4", 440},
		{"A3", 220},
		{"C5", 523.25},
		{"E5", 659.26},
		{"C3", 130.81},
		{"C#4", 277.18},
		{"Eb4", 311.13},
	}
	for _, tt := range tests {
		got, err := NoteFreq(tt.note)
		require.NoError(t, err, tt.note)
		assert.InDelta(t, tt.want, got, 0.01, tt.note)
	}

	for _, bad := range []string{"", "H4", "A", "Ax", "C10"} {
		_, err := NoteFreq(bad)
		assert.Error(t, err, bad)
	}
}

func TestNoteDuration(t *testing.T) {
	d, err := NoteDuration("4n", 120)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)

	d, err = NoteDuration("32n", 120)
	require.NoError(t, err)
	assert.Equal(t, 62500*time.Microsecond, d)

	_, err = NoteDuration("4", 120)
	assert.Error(t, err)
	_, err = NoteDuration("0n", 120)
	assert.Error(t, err)
}

func TestSynthRender(t *testing.T) {
	s := NewSynth(AudioConfig{MasterVolume: 1, SampleRate: 8000, BPM: 120})

	pcm, err := s.Render(Cue{Note: "A4", Value: "8n"})
	require.NoError(t, err)
	// (250ms note + 100ms release) * 8000Hz * 2 channels * 2 bytes
	assert.Equal(t, 2800*4, len(pcm))

	var peak int16
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
		if v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, int16(1000))

	silent, err := s.Render(Cue{Kind: CueRefill})
	require.NoError(t, err)
	assert.Nil(t, silent)

	_, err = s.Render(Cue{Note: "Z9", Value: "8n"})
	assert.Error(t, err)
}

func TestLoadAudioConfig(t *testing.T) {
	t.Setenv("BLOCKPUZZLE_AUDIO_ENABLED", "false")
	t.Setenv("BLOCKPUZZLE_MASTER_VOLUME", "250")
	t.Setenv("BLOCKPUZZLE_SAMPLE_RATE", "-3")

	cfg := LoadAudioConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume)
	assert.Equal(t, DefaultAudioConfig().SampleRate, cfg.SampleRate)
}

func TestClearCueCarriesResult(t *testing.T) {
	out := src.PlacementOutcome{Accepted: true, ClearedRows: []int{2}, LinesCleared: 1, PointsAwarded: 10}
	cues := ForPlacement(out, nil)
	require.Len(t, cues, 2)

	cue := cues[1]
	require.Equal(t, CueClear, cue.Kind)
	assert.Equal(t, 1, cue.Lines)
	assert.Equal(t, 10, cue.Points)
	assert.Len(t, cue.Cells, base.GridSize)
	assert.True(t, cue.Cells[base.Point{Row: 2, Col: 0}])
	assert.Nil(t, cues[0].Cells)
}
