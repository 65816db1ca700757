package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	wavprobeDir := filepath.Join(configDir, "wavprobe")
	if err := os.MkdirAll(wavprobeDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(wavprobeDir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist so the tool works with zero setup.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills fields the user left out of the file.
func (c *Config) applyDefaults() {
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = []string{".wav"}
	}
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce = Duration{200 * time.Millisecond}
	}
}

const configTemplate = `# wavprobe configuration

[output]
  color = %q  # "auto" (only when stdout is a terminal), "always" or "never"

[watch]
  extensions = [%s]  # file extensions validated in watch mode
  debounce = %q      # settle time after a write burst before re-validating
`

func Save(c *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	quoted := make([]string, len(c.Watch.Extensions))
	for i, ext := range c.Watch.Extensions {
		quoted[i] = fmt.Sprintf("%q", ext)
	}

	content := fmt.Sprintf(configTemplate,
		c.Output.Color,
		strings.Join(quoted, ", "),
		c.Watch.Debounce.String(),
	)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
