package gconf

import (
	"encoding/json"
	"fmt"

	"blockpuzzle/src/feedback"
	"blockpuzzle/ui/gui/gbase/gos"
)

const ConfigFile = "blockpuzzle.json"

type Config struct {
	Theme     string `json:"theme"`      // light/dark
	Lang      string `json:"language"`   // en/ru
	Volume    int    `json:"volume"`     // 0..100
	Muted     bool   `json:"muted"`      // true/false
	BestScore int    `json:"best_score"` //
	WindowH   int    `json:"window_h"`   //
	WindowW   int    `json:"window_w"`   //
	Debug     bool   `json:"debug"`      // true/false

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:     "light",
		Lang:      "en",
		Volume:    50,
		Muted:     false,
		BestScore: 0,
		WindowH:   720,
		WindowW:   1000,
		Debug:     false,
		path:      ConfigFile,
	}
}

func NewGUIConfig() (*Config, error) {
	return LoadConfig(ConfigFile)
}

// LoadConfig returns defaults when the file is absent
func LoadConfig(file string) (*Config, error) {
	_, err := gos.Stat(file)
	if gos.IsNotExist(err) {
		def := defaultConfig()
		def.path = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := gos.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	c := defaultConfig()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	c.path = file
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save() error {
	file := c.path
	if file == "" {
		file = ConfigFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	err = gos.WriteFile(file, jsonData, 0644)
	if err != nil {
		return err
	}
	return nil
}

// RecordScore keeps the best final score, reports a new record
func (c *Config) RecordScore(score int) bool {
	if score <= c.BestScore {
		return false
	}
	c.BestScore = score
	return true
}

// Audio overlays the saved volume and mute switch on env/flag settings
func (c *Config) Audio(base feedback.AudioConfig) feedback.AudioConfig {
	base.MasterVolume = float64(c.Volume) / 100.0
	if c.Muted {
		base.Enabled = false
	}
	return base
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme == "" || (c.Theme != "light" && c.Theme != "dark") {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = "en"
	}
	if c.Volume < 0 || c.Volume > 100 {
		c.Volume = def.Volume
	}
	if c.BestScore < 0 {
		c.BestScore = 0
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
