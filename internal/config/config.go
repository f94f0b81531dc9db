package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "cosmic_explorer.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. COSMIC_WINDOW_WIDTH.
const EnvPrefix = "COSMIC"

// Touch control modes.
const (
	TouchAuto   = "auto"
	TouchAlways = "always"
	TouchNever  = "never"
)

// WindowConfig holds window settings.
type WindowConfig struct {
	Width      int    `json:"width" mapstructure:"width"`
	Height     int    `json:"height" mapstructure:"height"`
	Fullscreen bool   `json:"fullscreen" mapstructure:"fullscreen"`
	Title      string `json:"title" mapstructure:"title"`
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Muted       bool    `json:"muted" mapstructure:"muted"`
	MusicPath   string  `json:"musicPath" mapstructure:"musicPath"`
	MusicVolume float64 `json:"musicVolume" mapstructure:"musicVolume"`
	SampleRate  int     `json:"sampleRate" mapstructure:"sampleRate"`
}

// Config is the launcher configuration. Scene constants are not configurable.
type Config struct {
	LogLevel string       `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string       `json:"logFile" mapstructure:"logFile"`
	Window   WindowConfig `json:"window" mapstructure:"window"`
	Audio    AudioConfig  `json:"audio" mapstructure:"audio"`
	Controls struct {
		Touch string `json:"touch" mapstructure:"touch"`
	} `json:"controls" mapstructure:"controls"`
	World struct {
		Seed uint64 `json:"seed" mapstructure:"seed"`
	} `json:"world" mapstructure:"world"`
	Intro struct {
		Skip bool `json:"skip" mapstructure:"skip"`
	} `json:"intro" mapstructure:"intro"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.title", "Cosmic Explorer")

	v.SetDefault("audio.muted", false)
	v.SetDefault("audio.musicPath", "")
	v.SetDefault("audio.musicVolume", 0.3)
	v.SetDefault("audio.sampleRate", 44100)

	v.SetDefault("controls.touch", TouchAuto)
	v.SetDefault("world.seed", 0)
	v.SetDefault("intro.skip", false)
}

// Load reads configuration from the JSON file in configDir, if present,
// applies COSMIC_* environment overrides and fills in defaults.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sampleRate %d must be positive", c.Audio.SampleRate)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("audio.musicVolume %.2f outside [0,1]", c.Audio.MusicVolume)
	}
	switch c.Controls.Touch {
	case TouchAuto, TouchAlways, TouchNever:
	default:
		return fmt.Errorf("controls.touch %q: want auto, always or never", c.Controls.Touch)
	}
	return nil
}
