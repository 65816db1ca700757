package config

import "time"

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Color: "auto",
		},
		Watch: WatchConfig{
			Extensions: []string{".wav"},
			Debounce:   Duration{200 * time.Millisecond},
		},
	}
}
