package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pders01/tmr/internal/validation"
)

type Config struct {
	Timer TimerConfig `mapstructure:"timer"`
	State StateConfig `mapstructure:"state"`
	UI    UIConfig    `mapstructure:"ui"`
	Keys  KeyConfig   `mapstructure:"keys"`
	Log   LogConfig   `mapstructure:"log"`
}

type TimerConfig struct {
	Presets       []time.Duration `mapstructure:"presets"`
	FrameInterval time.Duration   `mapstructure:"frame_interval"`
	AutoStart     bool            `mapstructure:"auto_start"`
}

type StateConfig struct {
	Path         string        `mapstructure:"path"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Restore      bool          `mapstructure:"restore"`
	HistoryLimit int           `mapstructure:"history_limit"`
}

type UIConfig struct {
	Colors    UIColors `mapstructure:"colors"`
	BigDigits bool     `mapstructure:"big_digits"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

type KeyConfig struct {
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Start  string `mapstructure:"start"`
	Pause  string `mapstructure:"pause"`
	Toggle string `mapstructure:"toggle"`
	Reset  string `mapstructure:"reset"`
	Help   string `mapstructure:"help"`
	Quit   string `mapstructure:"quit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// DefaultPresets are the add-time buttons of the timer screen.
var DefaultPresets = []time.Duration{5 * time.Second, 30 * time.Second, 60 * time.Second}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Timer: TimerConfig{
			Presets:       append([]time.Duration(nil), DefaultPresets...),
			FrameInterval: 33 * time.Millisecond,
			AutoStart:     false,
		},
		State: StateConfig{
			Path:         filepath.Join(homeDir, ".tmr", "state.db"),
			Timeout:      1 * time.Second,
			Restore:      true,
			HistoryLimit: 20,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#FF6B6B",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#F87171",
				Success:   "#4ADE80",
			},
			BigDigits: true,
		},
		Keys: KeyConfig{
			Bindings: KeyBindings{
				Start:  "s",
				Pause:  "p",
				Toggle: "space",
				Reset:  "r",
				Help:   "?",
				Quit:   "q",
			},
		},
		Log: LogConfig{
			Level: "off",
			Path:  filepath.Join(homeDir, ".tmr", "tmr.log"),
		},
	}
}

// DefaultConfigPath is where Load looks when no explicit path is given.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "tmr", "config.toml")
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("timer.presets", cfg.Timer.Presets)
	v.SetDefault("timer.frame_interval", cfg.Timer.FrameInterval)
	v.SetDefault("timer.auto_start", cfg.Timer.AutoStart)
	v.SetDefault("state.path", cfg.State.Path)
	v.SetDefault("state.timeout", cfg.State.Timeout)
	v.SetDefault("state.restore", cfg.State.Restore)
	v.SetDefault("state.history_limit", cfg.State.HistoryLimit)
	v.SetDefault("ui.big_digits", cfg.UI.BigDigits)
	v.SetDefault("ui.colors.primary", cfg.UI.Colors.Primary)
	v.SetDefault("ui.colors.secondary", cfg.UI.Colors.Secondary)
	v.SetDefault("ui.colors.accent", cfg.UI.Colors.Accent)
	v.SetDefault("ui.colors.text", cfg.UI.Colors.Text)
	v.SetDefault("ui.colors.muted", cfg.UI.Colors.Muted)
	v.SetDefault("ui.colors.error", cfg.UI.Colors.Error)
	v.SetDefault("ui.colors.success", cfg.UI.Colors.Success)
	v.SetDefault("keys.bindings.start", cfg.Keys.Bindings.Start)
	v.SetDefault("keys.bindings.pause", cfg.Keys.Bindings.Pause)
	v.SetDefault("keys.bindings.toggle", cfg.Keys.Bindings.Toggle)
	v.SetDefault("keys.bindings.reset", cfg.Keys.Bindings.Reset)
	v.SetDefault("keys.bindings.help", cfg.Keys.Bindings.Help)
	v.SetDefault("keys.bindings.quit", cfg.Keys.Bindings.Quit)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.path", cfg.Log.Path)
}

func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v, defaultConfig())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Dir(DefaultConfigPath()))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TMR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks the values no surface can work around.
func Validate(cfg *Config) error {
	if err := validation.ValidatePresets(cfg.Timer.Presets); err != nil {
		return fmt.Errorf("timer.presets: %w", err)
	}
	if err := validation.ValidateInterval(cfg.Timer.FrameInterval); err != nil {
		return fmt.Errorf("timer.frame_interval: %w", err)
	}
	if cfg.State.HistoryLimit < 0 {
		return fmt.Errorf("state.history_limit: must not be negative")
	}
	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func expandPaths(cfg *Config) {
	cfg.State.Path = expandPath(cfg.State.Path)
	cfg.Log.Path = expandPath(cfg.Log.Path)
}

// Document converts the config into plain maps with durations as strings, the
// shape written to TOML.
func Document(config *Config) map[string]interface{} {
	presets := make([]string, len(config.Timer.Presets))
	for i, p := range config.Timer.Presets {
		presets[i] = p.String()
	}

	return map[string]interface{}{
		"timer": map[string]interface{}{
			"presets":        presets,
			"frame_interval": config.Timer.FrameInterval.String(),
			"auto_start":     config.Timer.AutoStart,
		},
		"state": map[string]interface{}{
			"path":          config.State.Path,
			"timeout":       config.State.Timeout.String(),
			"restore":       config.State.Restore,
			"history_limit": config.State.HistoryLimit,
		},
		"ui": map[string]interface{}{
			"big_digits": config.UI.BigDigits,
			"colors": map[string]interface{}{
				"primary":   config.UI.Colors.Primary,
				"secondary": config.UI.Colors.Secondary,
				"accent":    config.UI.Colors.Accent,
				"text":      config.UI.Colors.Text,
				"muted":     config.UI.Colors.Muted,
				"error":     config.UI.Colors.Error,
				"success":   config.UI.Colors.Success,
			},
		},
		"keys": map[string]interface{}{
			"bindings": map[string]interface{}{
				"start":  config.Keys.Bindings.Start,
				"pause":  config.Keys.Bindings.Pause,
				"toggle": config.Keys.Bindings.Toggle,
				"reset":  config.Keys.Bindings.Reset,
				"help":   config.Keys.Bindings.Help,
				"quit":   config.Keys.Bindings.Quit,
			},
		},
		"log": map[string]interface{}{
			"level": config.Log.Level,
			"path":  config.Log.Path,
		},
	}
}

func Save(config *Config, path string) error {
	v := viper.New()

	for key, value := range Document(config) {
		v.Set(key, value)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
