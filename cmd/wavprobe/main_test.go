package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/probeaudio/wavprobe/internal/wav"
)

func writeWav(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()

	good := wav.EncodeHeader(wav.NewPCMHeader(2, 44100, 16, 4))
	goodPath := writeWav(t, dir, "good.wav", append(good[:], 0, 0, 0, 0))

	bad := wav.EncodeHeader(wav.NewPCMHeader(2, 44100, 16, 0))
	copy(bad[0:4], "RIFX")
	badPath := writeWav(t, dir, "bad.wav", bad[:])

	t.Run("all valid", func(t *testing.T) {
		var out strings.Builder
		if err := runValidate(&out, []string{goodPath}); err != nil {
			t.Fatalf("validate should succeed, got %v", err)
		}
		if !strings.Contains(out.String(), "ok") || !strings.Contains(out.String(), "44100 Hz") {
			t.Errorf("unexpected output: %q", out.String())
		}
	})

	t.Run("mixed inputs fail", func(t *testing.T) {
		var out strings.Builder
		err := runValidate(&out, []string{goodPath, badPath})
		if err == nil {
			t.Fatal("validate should fail when any input fails")
		}
		if !strings.Contains(err.Error(), "1 of 2 inputs failed") {
			t.Errorf("error should count failures, got %v", err)
		}
		if !strings.Contains(out.String(), "FAIL") {
			t.Errorf("output should mark the failing input: %q", out.String())
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		var out strings.Builder
		if err := runValidate(&out, []string{filepath.Join(dir, "nope.wav")}); err == nil {
			t.Fatal("validate should fail for a missing file")
		}
	})
}

func TestOpenInput(t *testing.T) {
	t.Run("dash means stdin", func(t *testing.T) {
		r, name, closeInput, err := openInput("-")
		if err != nil {
			t.Fatalf("stdin input should open, got %v", err)
		}
		defer closeInput()
		if r != os.Stdin {
			t.Error("reader should be os.Stdin")
		}
		if name != "stdin" {
			t.Errorf("name should be stdin, got %q", name)
		}
	})

	t.Run("file path", func(t *testing.T) {
		path := writeWav(t, t.TempDir(), "a.wav", []byte("x"))
		r, name, closeInput, err := openInput(path)
		if err != nil {
			t.Fatalf("file input should open, got %v", err)
		}
		defer closeInput()
		if r == nil || name != path {
			t.Errorf("unexpected input: %v %q", r, name)
		}
	})
}

func TestInputPath(t *testing.T) {
	if got := inputPath(nil); got != "-" {
		t.Errorf("no args should mean stdin, got %q", got)
	}
	if got := inputPath([]string{"a.wav"}); got != "a.wav" {
		t.Errorf("first arg should win, got %q", got)
	}
}
