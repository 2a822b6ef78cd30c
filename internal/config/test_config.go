package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Timer.FrameInterval = 10 * time.Millisecond
	cfg.State.Path = ""
	cfg.State.Restore = false
	cfg.Log = LogConfig{Level: "off"}
	return cfg
}
