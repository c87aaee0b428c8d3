package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	Theme        string  `json:"theme"`         // light/dark
	Orientation  string  `json:"orientation"`   // white/black
	AutoPromote  bool    `json:"auto_promote"`  // queen on promotion without asking
	CornerRadius float64 `json:"corner_radius"` // board corner rounding, px
	WindowW      int     `json:"window_w"`
	WindowH      int     `json:"window_h"`
	FEN          string  `json:"fen"`   // starting placement, optional
	Debug        bool    `json:"debug"` // true/false
}

func defaultConfig() Config {
	return Config{
		Theme:        "light",
		Orientation:  "white",
		AutoPromote:  false,
		CornerRadius: 6,
		WindowW:      1000,
		WindowH:      760,
	}
}

// Load reads the config file, falling back to defaults when it does not
// exist. A present but unreadable file is an error.
func Load(file string) (*Config, error) {
	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)
	return &c, nil
}

func (c *Config) Save(file string) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Orientation != "white" && c.Orientation != "black" {
		c.Orientation = def.Orientation
	}
	if c.CornerRadius < 0 || c.CornerRadius > 32 {
		c.CornerRadius = def.CornerRadius
	}
	if c.WindowW < 640 || c.WindowH < 480 {
		c.WindowW = def.WindowW
		c.WindowH = def.WindowH
	}
}
