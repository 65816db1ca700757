package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/probeaudio/wavprobe/internal/config"
)

// Run walks the user through the wavprobe settings and returns the edited
// config. The second return value is false when the user discarded their
// changes; the caller decides whether and where to save.
func Run(cfg *config.Config) (*config.Config, bool, error) {
	edited := *cfg
	color := edited.Output.Color
	extensions := strings.Join(edited.Watch.Extensions, ", ")
	debounce := edited.Watch.Debounce.Duration.String()
	save := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color Output").
				Description("How inspect and validate results are styled").
				Options(
					huh.NewOption("Auto (only when stdout is a terminal)", "auto"),
					huh.NewOption("Always", "always"),
					huh.NewOption("Never", "never"),
				).
				Value(&color),
			huh.NewInput().
				Title("Watched Extensions").
				Description(`Comma-separated, e.g. ".wav, .wave"`).
				Validate(validateExtensions).
				Value(&extensions),
			huh.NewInput().
				Title("Watch Debounce").
				Description(`Settle time after a write burst, e.g. "200ms"`).
				Validate(validateDuration).
				Value(&debounce),
			huh.NewConfirm().
				Title("Save changes?").
				Value(&save),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return nil, false, err
	}
	if !save {
		return nil, false, nil
	}

	edited.Output.Color = color
	edited.Watch.Extensions = splitExtensions(extensions)
	d, err := time.ParseDuration(debounce)
	if err != nil {
		return nil, false, fmt.Errorf("invalid debounce: %w", err)
	}
	edited.Watch.Debounce = config.Duration{Duration: d}

	if err := edited.Validate(); err != nil {
		return nil, false, err
	}
	return &edited, true, nil
}

func validateDuration(s string) error {
	if _, err := time.ParseDuration(s); err != nil {
		return errors.New(`not a duration (e.g. "200ms")`)
	}
	return nil
}

func validateExtensions(s string) error {
	if len(splitExtensions(s)) == 0 {
		return errors.New("at least one extension is required")
	}
	return nil
}

// splitExtensions normalizes a comma-separated extension list: lowercased,
// trimmed, leading dot added when missing.
func splitExtensions(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" || part == "." {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		out = append(out, part)
	}
	return out
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}
