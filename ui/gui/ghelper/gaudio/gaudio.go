package gaudio

import (
	"sync"

	"blockpuzzle/src/feedback"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays synthesized cues through ebiten's audio context
type Player struct {
	mu      sync.Mutex
	ctx     *audio.Context
	synth   *feedback.Synth
	cache   map[feedback.CueKind][]byte
	live    []*audio.Player
	enabled bool
	volume  float64
}

func NewPlayer(cfg feedback.AudioConfig) *Player {
	volume := cfg.MasterVolume
	// full scale PCM, the volume is applied per player
	cfg.MasterVolume = 1
	synth := feedback.NewSynth(cfg)

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(synth.SampleRate()))
	}
	return &Player{
		ctx:     ctx,
		synth:   synth,
		cache:   make(map[feedback.CueKind][]byte),
		enabled: cfg.Enabled,
		volume:  volume,
	}
}

func (p *Player) Play(c feedback.Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.volume <= 0 || c.Silent() {
		return nil
	}
	pcm, ok := p.cache[c.Kind]
	if !ok {
		var err error
		pcm, err = p.synth.Render(c)
		if err != nil {
			return err
		}
		p.cache[c.Kind] = pcm
	}

	pl := p.ctx.NewPlayerFromBytes(pcm)
	pl.SetVolume(p.volume)
	pl.Play()
	p.prune()
	p.live = append(p.live, pl)
	return nil
}

// drop finished players
func (p *Player) prune() {
	kept := p.live[:0]
	for _, pl := range p.live {
		if pl.IsPlaying() {
			kept = append(kept, pl)
			continue
		}
		_ = pl.Close()
	}
	p.live = kept
}

func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetVolume takes 0..1
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = v
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}
