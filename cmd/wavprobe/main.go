package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/probeaudio/wavprobe/internal/config"
	"github.com/probeaudio/wavprobe/internal/tui"
	"github.com/probeaudio/wavprobe/internal/watch"
	"github.com/probeaudio/wavprobe/internal/wav"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "wavprobe",
	Short:        "Strict inspector for canonical PCM WAVE headers",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyColorMode(cfg.Output.Color)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		inspectCmd(),
		validateCmd(),
		scanCmd(),
		watchCmd(),
		configureCmd(),
		versionCmd(),
	)
}

func applyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		lipgloss.SetColorProfile(termenv.ColorProfile())
	}
}

// openInput opens a named file, or stdin for "-".
func openInput(path string) (io.Reader, string, func(), error) {
	if path == "-" {
		return os.Stdin, "stdin", func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, err
	}
	return f, path, func() { f.Close() }, nil
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Parse a WAVE header and print its fields",
		Long: `Reads the 44-byte canonical PCM WAVE header from a file (or stdin) and
prints every decoded field. Magic tags are shown in hexadecimal, all other
fields in decimal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, name, closeInput, err := openInput(inputPath(args))
			if err != nil {
				return err
			}
			defer closeInput()

			h, err := wav.ParseHeader(r)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tui.StyleHeading.Render(name))
			fmt.Fprintln(out, h)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate PCM WAVE headers, one result line per input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args)
		},
	}
}

func runValidate(out io.Writer, paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	failed := 0
	for _, path := range paths {
		r, name, closeInput, err := openInput(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", tui.StyleFail.Render("FAIL"), path, err)
			continue
		}

		h, err := wav.ParseHeader(r)
		closeInput()
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", tui.StyleFail.Render("FAIL"), name, err)
			continue
		}

		fmt.Fprintf(out, "%s %s: %d ch, %d Hz, %d bit\n",
			tui.StyleOK.Render("ok"), name, h.NumChannels, h.SampleRate, h.BitsPerSample)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(paths))
	}
	return nil
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file]",
		Short: "Scan the audio payload for clicks (not implemented yet)",
		Long: `Parses and validates the WAVE header, then prints the fields a payload
scan would consume. The click detector itself is not implemented yet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, name, closeInput, err := openInput(inputPath(args))
			if err != nil {
				return err
			}
			defer closeInput()

			h, err := wav.ParseHeader(r)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ch, %d Hz, %d bit, %d payload bytes\n",
				name, h.NumChannels, h.SampleRate, h.BitsPerSample, h.SubChunk2Size)
			return errors.New("click detection is not implemented yet")
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Validate WAVE files in a directory as they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.New(args[0], cfg.Watch.Extensions, cfg.Watch.Debounce.Duration, nil)
			return w.Run(ctx)
		},
	}
}

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive settings editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			edited, save, err := tui.Run(cfg)
			if err != nil {
				return fmt.Errorf("configuration editor error: %w", err)
			}
			if !save {
				fmt.Println("Configuration unchanged.")
				return nil
			}

			if err := config.Save(edited); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := config.GetConfigPath()
			fmt.Printf("Configuration saved to %s\n", path)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wavprobe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wavprobe %s\n", version)
		},
	}
}
