package config

import (
	"fmt"
	"strings"
)

func (c *Config) Validate() error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[c.Output.Color] {
		return fmt.Errorf("invalid output.color: %s (must be auto, always, or never)", c.Output.Color)
	}

	if len(c.Watch.Extensions) == 0 {
		return fmt.Errorf("invalid watch.extensions: empty")
	}
	for _, ext := range c.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid watch.extensions entry: %s (must start with '.')", ext)
		}
	}

	if c.Watch.Debounce.Duration <= 0 {
		return fmt.Errorf("invalid watch.debounce: %v", c.Watch.Debounce.Duration)
	}

	return nil
}
