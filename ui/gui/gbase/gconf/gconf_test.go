package gconf

import (
	"os"
	"path/filepath"
	"testing"

	"blockpuzzle/src/feedback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingGivesDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), ConfigFile)
	c, err := LoadConfig(file)
	require.NoError(t, err)

	def := defaultConfig()
	def.path = file
	assert.Equal(t, def, *c)
}

func TestSaveAndLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), ConfigFile)
	c, err := LoadConfig(file)
	require.NoError(t, err)

	c.Theme = "dark"
	c.Lang = "ru"
	c.Volume = 80
	c.Muted = true
	assert.True(t, c.RecordScore(120))
	assert.False(t, c.RecordScore(90))
	require.NoError(t, c.Save())

	got, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, *c, *got)
	assert.Equal(t, 120, got.BestScore)
}

func TestCorrectableConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), ConfigFile)
	raw := `{"theme":"neon","language":"de","volume":300,"best_score":-4,"window_w":10,"window_h":10}`
	require.NoError(t, os.WriteFile(file, []byte(raw), 0644))

	c, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, "en", c.Lang)
	assert.Equal(t, 50, c.Volume)
	assert.Equal(t, 0, c.BestScore)
	assert.Equal(t, 1000, c.WindowW)
	assert.Equal(t, 720, c.WindowH)
}

func TestLoadBrokenFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(file, []byte("{"), 0644))
	_, err := LoadConfig(file)
	assert.ErrorContains(t, err, "error decode config")
}

func TestAudioOverlay(t *testing.T) {
	c := defaultConfig()
	c.Volume = 25
	a := c.Audio(feedback.DefaultAudioConfig())
	assert.True(t, a.Enabled)
	assert.InDelta(t, 0.25, a.MasterVolume, 1e-9)

	c.Muted = true
	assert.False(t, c.Audio(feedback.DefaultAudioConfig()).Enabled)
}

func TestRecordScore(t *testing.T) {
	c := defaultConfig()
	assert.False(t, c.RecordScore(0))
	assert.True(t, c.RecordScore(120))
	assert.False(t, c.RecordScore(120))
	assert.False(t, c.RecordScore(40))
	assert.Equal(t, 120, c.BestScore)
}
