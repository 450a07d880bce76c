package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/hdlcctl/internal/hdlc"
)

// Config carries the tool-level defaults for frame handling.
type Config struct {
	MaxInfoLen     int
	DefaultAddress byte
	LogLevel       string
}

type fileConfig struct {
	MaxInfoLen     int    `toml:"max_info_len"`
	DefaultAddress int    `toml:"default_address"`
	LogLevel       string `toml:"log_level"`
}

func Default() Config {
	return Config{
		MaxInfoLen: hdlc.MaxInfoLen,
		LogLevel:   "info",
	}
}

// Load reads path on top of the defaults. Only keys present in the file
// override.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("max_info_len") {
		if raw.MaxInfoLen < 0 || raw.MaxInfoLen > hdlc.MaxInfoLen {
			return Config{}, fmt.Errorf("max_info_len %d out of range 0..%d",
				raw.MaxInfoLen, hdlc.MaxInfoLen)
		}
		cfg.MaxInfoLen = raw.MaxInfoLen
	}

	if meta.IsDefined("default_address") {
		if raw.DefaultAddress < 0 || raw.DefaultAddress > 0xFF {
			return Config{}, fmt.Errorf("default_address %d out of range 0..255",
				raw.DefaultAddress)
		}
		cfg.DefaultAddress = byte(raw.DefaultAddress)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}
