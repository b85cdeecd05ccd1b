package feedback

import (
	"os"
	"strconv"
)

type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
	BPM          float64
}

func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		BPM:          120,
	}
}

// LoadAudioConfig applies environment overrides on top of the defaults
func LoadAudioConfig() AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("BLOCKPUZZLE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 on the environment side
	if volume := os.Getenv("BLOCKPUZZLE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if rate := os.Getenv("BLOCKPUZZLE_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
