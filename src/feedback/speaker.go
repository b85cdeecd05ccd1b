package feedback

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays cues on the system output through beep's speaker
type Speaker struct {
	mu          sync.Mutex
	synth       *Synth
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeaker(synth *Synth) *Speaker {
	return &Speaker{synth: synth, mixer: &beep.Mixer{}}
}

func (sp *Speaker) Init() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.initialized {
		return nil
	}
	rate := sp.synth.SampleRate()
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sp.mixer)
	sp.initialized = true
	return nil
}

func (sp *Speaker) Play(c Cue) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.initialized {
		return nil
	}
	st, err := sp.synth.Streamer(c)
	if err != nil || st == nil {
		return err
	}
	speaker.Lock()
	sp.mixer.Add(st)
	speaker.Unlock()
	return nil
}

func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sp.initialized = false
}
