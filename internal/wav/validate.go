package wav

// Validate checks the PCM invariants in a fixed order and returns the first
// violation. The data chunk fields are decoded for callers but not checked;
// whatever the writer put there is reported as-is by String.
func (h Header) Validate() error {
	if h.ChunkID != MagicRIFF {
		return &MagicError{Field: "RIFF", Want: MagicRIFF, Got: h.ChunkID}
	}
	if h.Format != MagicWAVE {
		return &MagicError{Field: "WAVE", Want: MagicWAVE, Got: h.Format}
	}
	if h.SubChunk1ID != MagicFmt {
		return &MagicError{Field: "fmt ", Want: MagicFmt, Got: h.SubChunk1ID}
	}
	if h.SubChunk1Size != FmtChunkSize {
		return &FormatChunkSizeError{Got: h.SubChunk1Size}
	}
	if h.AudioFormat != AudioFormatPCM {
		return &AudioFormatError{Got: h.AudioFormat}
	}
	return nil
}
