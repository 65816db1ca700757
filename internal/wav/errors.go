package wav

import (
	"errors"
	"fmt"
)

// ShortReadError reports a stream that ended before the full 44-byte header.
// A short read is a truncated-file problem, not an environment one, so it
// gets its own type instead of a wrapped I/O error.
type ShortReadError struct {
	Actual int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("wave header must be %d bytes long, got %d", HeaderSize, e.Actual)
}

// MagicError reports a fixed ASCII tag that does not match its required
// value. Field names the tag the stream must carry ("RIFF", "WAVE", "fmt ").
type MagicError struct {
	Field string
	Want  uint32
	Got   uint32
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("stream must have %q tag, got 0x%08x", e.Field, e.Got)
}

// FormatChunkSizeError reports a "fmt " chunk whose declared size is not the
// 16 bytes of an extension-free PCM format chunk.
type FormatChunkSizeError struct {
	Got uint32
}

func (e *FormatChunkSizeError) Error() string {
	return fmt.Sprintf("'fmt ' chunk size must be %d, got %d", FmtChunkSize, e.Got)
}

// AudioFormatError reports a non-PCM audio format code.
type AudioFormatError struct {
	Got uint16
}

func (e *AudioFormatError) Error() string {
	if name := audioFormatName(e.Got); name != "" {
		return fmt.Sprintf("audio format must be %d (PCM), got %d (%s)", AudioFormatPCM, e.Got, name)
	}
	return fmt.Sprintf("audio format must be %d (PCM), got %d", AudioFormatPCM, e.Got)
}

func audioFormatName(code uint16) string {
	switch code {
	case AudioFormatIEEEFloat:
		return "IEEE float"
	case AudioFormatALaw:
		return "A-law"
	case AudioFormatMuLaw:
		return "mu-law"
	}
	return ""
}

// IsFormatError reports whether err means the input is not a canonical PCM
// WAVE stream, as opposed to an I/O failure while reading it.
func IsFormatError(err error) bool {
	var short *ShortReadError
	var magic *MagicError
	var size *FormatChunkSizeError
	var format *AudioFormatError
	return errors.As(err, &short) ||
		errors.As(err, &magic) ||
		errors.As(err, &size) ||
		errors.As(err, &format)
}
