package feedback

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// plucked sine: fast attack, short decay to zero, then release
const (
	attack  = time.Millisecond
	decay   = 100 * time.Millisecond
	release = 100 * time.Millisecond
)

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// NoteFreq parses scientific pitch notation ("A4", "C#5", "Eb3"); A4 = 440Hz
func NoteFreq(note string) (float64, error) {
	if len(note) < 2 {
		return 0, fmt.Errorf("invalid note %q", note)
	}
	semi, ok := semitones[note[0]&^0x20]
	if !ok {
		return 0, fmt.Errorf("invalid note %q", note)
	}
	rest := note[1:]
	switch rest[0] {
	case '#':
		semi++
		rest = rest[1:]
	case 'b':
		semi--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || octave < 0 || octave > 9 {
		return 0, fmt.Errorf("invalid octave in note %q", note)
	}
	midi := (octave+1)*12 + semi
	return 440.0 * math.Pow(2, float64(midi-69)/12.0), nil
}

// NoteDuration converts "4n", "8n"... to time at the given tempo
func NoteDuration(value string, bpm float64) (time.Duration, error) {
	if !strings.HasSuffix(value, "n") || bpm <= 0 {
		return 0, fmt.Errorf("invalid note value %q", value)
	}
	div, err := strconv.Atoi(strings.TrimSuffix(value, "n"))
	if err != nil || div <= 0 {
		return 0, fmt.Errorf("invalid note value %q", value)
	}
	whole := 4 * 60 / bpm
	return time.Duration(whole / float64(div) * float64(time.Second)), nil
}

type pluck struct {
	streamer beep.Streamer
	pos      int
	attack   int
	decay    int
	release  int
	held     int
}

func newPluck(s beep.Streamer, held time.Duration, rate beep.SampleRate) *pluck {
	return &pluck{
		streamer: s,
		attack:   rate.N(attack),
		decay:    rate.N(decay),
		release:  rate.N(release),
		held:     rate.N(held),
	}
}

func (p *pluck) level(pos int) float64 {
	var vol float64
	switch {
	case pos < p.attack:
		vol = float64(pos) / float64(p.attack)
	case pos < p.attack+p.decay:
		vol = 1 - float64(pos-p.attack)/float64(p.decay)
	default:
		vol = 0
	}
	if pos >= p.held {
		vol *= math.Max(0, 1-float64(pos-p.held)/float64(p.release))
	}
	return vol
}

func (p *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := p.level(p.pos)
		samples[i][0] *= vol
		samples[i][1] *= vol
		p.pos++
	}
	return n, ok
}

func (p *pluck) Err() error { return p.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

type Synth struct {
	cfg  AudioConfig
	rate beep.SampleRate
}

func NewSynth(cfg AudioConfig) *Synth {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultAudioConfig().SampleRate
	}
	if cfg.BPM <= 0 {
		cfg.BPM = DefaultAudioConfig().BPM
	}
	cfg.MasterVolume = clampVolume(cfg.MasterVolume)
	return &Synth{cfg: cfg, rate: beep.SampleRate(cfg.SampleRate)}
}

func (s *Synth) SampleRate() beep.SampleRate {
	return s.rate
}

func (s *Synth) SetVolume(v float64) {
	s.cfg.MasterVolume = clampVolume(v)
}

func (s *Synth) Volume() float64 {
	return s.cfg.MasterVolume
}

// Streamer builds a finite stream for the cue; nil for silent cues
func (s *Synth) Streamer(c Cue) (beep.Streamer, error) {
	if c.Silent() {
		return nil, nil
	}
	freq, err := NoteFreq(c.Note)
	if err != nil {
		return nil, err
	}
	held, err := NoteDuration(c.Value, s.cfg.BPM)
	if err != nil {
		return nil, err
	}
	tone, err := generators.SineTone(s.rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %s: %w", c.Note, err)
	}
	total := s.rate.N(held + release)
	shaped := newPluck(beep.Take(total, tone), held, s.rate)
	return newVolume(shaped, s.cfg.MasterVolume), nil
}

// Render produces 16-bit little-endian stereo PCM
func (s *Synth) Render(c Cue) ([]byte, error) {
	st, err := s.Streamer(c)
	if err != nil || st == nil {
		return nil, err
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := math.Max(-1, math.Min(1, buf[i][ch]))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n < len(buf) {
			break
		}
	}
	return out, nil
}
