package config

import "time"

type Config struct {
	Output OutputConfig `toml:"output"`
	Watch  WatchConfig  `toml:"watch"`
}

// OutputConfig controls how inspect and validate results are rendered.
type OutputConfig struct {
	Color string `toml:"color"` // "auto", "always", "never"
}

// WatchConfig controls watch-mode behavior.
type WatchConfig struct {
	Extensions []string `toml:"extensions"`
	Debounce   Duration `toml:"debounce"` // settle time after a write burst
}

// Duration decodes TOML strings like "200ms" into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
