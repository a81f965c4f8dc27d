// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Window   WindowConfig   `toml:"window"`
	Audio    AudioConfig    `toml:"audio"`
	Spectate SpectateConfig `toml:"spectate"`
	Game     GameConfig     `toml:"game"`
	Term     TermConfig     `toml:"term"`
}

// WindowConfig maps the ebiten host settings.
type WindowConfig struct {
	Title *string  `toml:"title"`
	Scale *float64 `toml:"scale"`
	TPS   *int     `toml:"tps"`
}

// AudioConfig maps sound settings.
type AudioConfig struct {
	Enabled *bool    `toml:"enabled"`
	Volume  *float64 `toml:"volume"`
}

// SpectateConfig maps the spectator feed settings. An empty address keeps the
// feed off.
type SpectateConfig struct {
	Addr *string `toml:"addr"`
}

// GameConfig maps match options that are not physics.
type GameConfig struct {
	Seed     *int64 `toml:"seed"`
	Autoplay *bool  `toml:"autoplay"`
}

// TermConfig maps terminal host settings.
type TermConfig struct {
	HoldMs *int `toml:"hold_ms"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
