package wav

import (
	"encoding/binary"
	"errors"
	"testing"
)

func tag(s string) uint32 {
	return binary.LittleEndian.Uint32([]byte(s))
}

func TestHeaderValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Header)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "valid header",
			mutate: func(h *Header) {},
			check:  wantNoError,
		},
		{
			name: "valid regardless of channels, rate and depth",
			mutate: func(h *Header) {
				h.NumChannels = 7
				h.SampleRate = 96000
				h.BitsPerSample = 24
				h.ByteRate = 0
				h.BlockAlign = 0
			},
			check: wantNoError,
		},
		{
			name:   "bad RIFF tag",
			mutate: func(h *Header) { h.ChunkID = tag("RIFX") },
			check:  wantMagicError("RIFF", tag("RIFX")),
		},
		{
			name: "bad RIFF and WAVE tags reports RIFF first",
			mutate: func(h *Header) {
				h.ChunkID = tag("RIFX")
				h.Format = tag("AIFF")
			},
			check: wantMagicError("RIFF", tag("RIFX")),
		},
		{
			name:   "bad WAVE tag",
			mutate: func(h *Header) { h.Format = tag("AIFF") },
			check:  wantMagicError("WAVE", tag("AIFF")),
		},
		{
			name:   "bad fmt tag",
			mutate: func(h *Header) { h.SubChunk1ID = tag("junk") },
			check:  wantMagicError("fmt ", tag("junk")),
		},
		{
			name:   "extended fmt chunk",
			mutate: func(h *Header) { h.SubChunk1Size = 18 },
			check: func(t *testing.T, err error) {
				var sizeErr *FormatChunkSizeError
				if !errors.As(err, &sizeErr) {
					t.Fatalf("expected FormatChunkSizeError, got %v", err)
				}
				if sizeErr.Got != 18 {
					t.Errorf("error should carry size 18, got %d", sizeErr.Got)
				}
			},
		},
		{
			name:   "IEEE float audio format",
			mutate: func(h *Header) { h.AudioFormat = AudioFormatIEEEFloat },
			check: func(t *testing.T, err error) {
				var formatErr *AudioFormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("expected AudioFormatError, got %v", err)
				}
				if formatErr.Got != 3 {
					t.Errorf("error should carry format 3, got %d", formatErr.Got)
				}
			},
		},
		{
			name: "data chunk fields are not checked",
			mutate: func(h *Header) {
				h.SubChunk2ID = tag("LIST")
				h.SubChunk2Size = 0xFFFFFFFF
			},
			check: wantNoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPCMHeader(2, 44100, 16, 2048)
			tt.mutate(&h)
			tt.check(t, h.Validate())
		})
	}
}

func wantNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("header should validate, got %v", err)
	}
}

func wantMagicError(field string, got uint32) func(*testing.T, error) {
	return func(t *testing.T, err error) {
		t.Helper()
		var magicErr *MagicError
		if !errors.As(err, &magicErr) {
			t.Fatalf("expected MagicError, got %v", err)
		}
		if magicErr.Field != field {
			t.Errorf("error should name field %q, got %q", field, magicErr.Field)
		}
		if magicErr.Got != got {
			t.Errorf("error should carry value 0x%08x, got 0x%08x", got, magicErr.Got)
		}
	}
}

func TestIsFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"short read", &ShortReadError{Actual: 30}, true},
		{"magic mismatch", &MagicError{Field: "RIFF"}, true},
		{"fmt chunk size", &FormatChunkSizeError{Got: 18}, true},
		{"audio format", &AudioFormatError{Got: 3}, true},
		{"plain error", errors.New("disk on fire"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFormatError(tt.err); got != tt.want {
				t.Errorf("IsFormatError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
