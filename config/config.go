package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/audio"
	"github.com/GamesFromRust/piston-shooty/logger"
	"github.com/GamesFromRust/piston-shooty/parameter"
)

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("invalid config")

// GunAxeGunConfig tunes the gun axe
type GunAxeGunConfig struct {
	GunDepth int `yaml:"gun_depth"`
}

// LevelsConfig selects where levels come from
// Empty Dir uses the built-in levels; Names restricts and orders them
type LevelsConfig struct {
	Dir    string   `yaml:"dir"`
	Names  []string `yaml:"names"`
	Strict *bool    `yaml:"strict"`
}

// Config is the whole game configuration
type Config struct {
	GunAxeGunConfig GunAxeGunConfig             `yaml:"gunaxe_gun_config"`
	Audio           audio.Config                `yaml:"audio"`
	Log             logger.Config               `yaml:"log"`
	Levels          LevelsConfig                `yaml:"levels"`
	Textures        map[string]asset.Definition `yaml:"textures"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		GunAxeGunConfig: GunAxeGunConfig{GunDepth: parameter.GunAxeDepth},
		Audio:           audio.DefaultConfig(),
		Log:             logger.DefaultConfig(),
	}
}

// Load builds the configuration: defaults, then the optional YAML file, then the environment
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from the environment; unparsable values are ignored
func (c *Config) applyEnv() {
	if enabled := os.Getenv("PISTON_SHOOTY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("PISTON_SHOOTY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if depth := os.Getenv("PISTON_SHOOTY_GUNAXE_DEPTH"); depth != "" {
		if val, err := strconv.Atoi(depth); err == nil {
			c.GunAxeGunConfig.GunDepth = val
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}
}

// StrictLevels reports whether level grids must be exactly 32x18; on by default
func (c *Config) StrictLevels() bool {
	return c.Levels.Strict == nil || *c.Levels.Strict
}

// Validate checks ranges that would otherwise surface mid-game
func (c *Config) Validate() error {
	if c.GunAxeGunConfig.GunDepth <= 0 {
		return fmt.Errorf("%w: gunaxe_gun_config.gun_depth must be positive, got %d", ErrInvalid, c.GunAxeGunConfig.GunDepth)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume must be in [0, 1], got %g", ErrInvalid, c.Audio.MasterVolume)
	}
	if c.Levels.Names != nil && len(c.Levels.Names) == 0 {
		return fmt.Errorf("%w: levels.names is empty", ErrInvalid)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
