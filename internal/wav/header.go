// Package wav parses and validates the canonical 44-byte PCM WAVE header.
//
// Field layout (all integers little-endian), per
// http://soundfile.sapp.org/doc/WaveFormat/:
//
//	offset size field
//	 0      4   chunk_id        "RIFF"
//	 4      4   chunk_size      size of the rest of the file
//	 8      4   format          "WAVE"
//	12      4   sub_chunk1_id   "fmt "
//	16      4   sub_chunk1_size 16 for PCM
//	20      2   audio_format    1 for PCM
//	22      2   num_channels
//	24      4   sample_rate
//	28      4   byte_rate
//	32      2   block_align
//	34      2   bits_per_sample
//	36      4   sub_chunk2_id   "data"
//	40      4   sub_chunk2_size payload byte length
package wav

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderSize is the length of the canonical PCM WAVE header.
const HeaderSize = 44

// Chunk tags as the little-endian 32-bit value of their ASCII bytes.
const (
	MagicRIFF uint32 = 0x46464952 // "RIFF"
	MagicWAVE uint32 = 0x45564157 // "WAVE"
	MagicFmt  uint32 = 0x20746d66 // "fmt "
	MagicData uint32 = 0x61746164 // "data"
)

// FmtChunkSize is the size of a PCM "fmt " chunk, which carries no extension.
const FmtChunkSize = 16

// Audio format codes. Only PCM is accepted; the others exist so errors can
// name what they saw.
const (
	AudioFormatPCM       = 1
	AudioFormatIEEEFloat = 3
	AudioFormatALaw      = 6
	AudioFormatMuLaw     = 7
)

// Header is the decoded 44-byte canonical PCM WAVE header. It is constructed
// once from a full buffer and never mutated; ByteRate, BlockAlign and the
// data chunk fields are taken as declared and not cross-checked.
type Header struct {
	ChunkID   uint32
	ChunkSize uint32
	Format    uint32

	SubChunk1ID   uint32
	SubChunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	SubChunk2ID   uint32
	SubChunk2Size uint32
}

// DecodeHeader decodes the fixed fields from a full header buffer. It cannot
// fail; validation is a separate step.
func DecodeHeader(buf [HeaderSize]byte) Header {
	le := binary.LittleEndian
	return Header{
		ChunkID:   le.Uint32(buf[0:4]),
		ChunkSize: le.Uint32(buf[4:8]),
		Format:    le.Uint32(buf[8:12]),

		SubChunk1ID:   le.Uint32(buf[12:16]),
		SubChunk1Size: le.Uint32(buf[16:20]),
		AudioFormat:   le.Uint16(buf[20:22]),
		NumChannels:   le.Uint16(buf[22:24]),
		SampleRate:    le.Uint32(buf[24:28]),
		ByteRate:      le.Uint32(buf[28:32]),
		BlockAlign:    le.Uint16(buf[32:34]),
		BitsPerSample: le.Uint16(buf[34:36]),

		SubChunk2ID:   le.Uint32(buf[36:40]),
		SubChunk2Size: le.Uint32(buf[40:44]),
	}
}

// EncodeHeader is the inverse of DecodeHeader.
func EncodeHeader(h Header) [HeaderSize]byte {
	var buf [HeaderSize]byte
	le := binary.LittleEndian
	le.PutUint32(buf[0:4], h.ChunkID)
	le.PutUint32(buf[4:8], h.ChunkSize)
	le.PutUint32(buf[8:12], h.Format)

	le.PutUint32(buf[12:16], h.SubChunk1ID)
	le.PutUint32(buf[16:20], h.SubChunk1Size)
	le.PutUint16(buf[20:22], h.AudioFormat)
	le.PutUint16(buf[22:24], h.NumChannels)
	le.PutUint32(buf[24:28], h.SampleRate)
	le.PutUint32(buf[28:32], h.ByteRate)
	le.PutUint16(buf[32:34], h.BlockAlign)
	le.PutUint16(buf[34:36], h.BitsPerSample)

	le.PutUint32(buf[36:40], h.SubChunk2ID)
	le.PutUint32(buf[40:44], h.SubChunk2Size)
	return buf
}

// NewPCMHeader builds a valid PCM header with the derived rate and alignment
// fields filled in for the given payload size.
func NewPCMHeader(channels, sampleRate, bitsPerSample int, dataSize uint32) Header {
	return Header{
		ChunkID:   MagicRIFF,
		ChunkSize: 36 + dataSize,
		Format:    MagicWAVE,

		SubChunk1ID:   MagicFmt,
		SubChunk1Size: FmtChunkSize,
		AudioFormat:   AudioFormatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * channels * bitsPerSample / 8),
		BlockAlign:    uint16(channels * bitsPerSample / 8),
		BitsPerSample: uint16(bitsPerSample),

		SubChunk2ID:   MagicData,
		SubChunk2Size: dataSize,
	}
}

// String renders every field as a fixed multi-line block for diagnostics.
// Magic tags are shown in hexadecimal, everything else in decimal.
func (h Header) String() string {
	var b strings.Builder
	b.WriteString("WaveHeader {\n")
	fmt.Fprintf(&b, "    chunk_id: 0x%08x\n", h.ChunkID)
	fmt.Fprintf(&b, "    chunk_size: %d\n", h.ChunkSize)
	fmt.Fprintf(&b, "    format: 0x%08x\n", h.Format)
	fmt.Fprintf(&b, "    sub_chunk1_id: 0x%08x\n", h.SubChunk1ID)
	fmt.Fprintf(&b, "    sub_chunk1_size: %d\n", h.SubChunk1Size)
	fmt.Fprintf(&b, "    audio_format: %d\n", h.AudioFormat)
	fmt.Fprintf(&b, "    num_channels: %d\n", h.NumChannels)
	fmt.Fprintf(&b, "    sample_rate: %d\n", h.SampleRate)
	fmt.Fprintf(&b, "    byte_rate: %d\n", h.ByteRate)
	fmt.Fprintf(&b, "    block_align: %d\n", h.BlockAlign)
	fmt.Fprintf(&b, "    bits_per_sample: %d\n", h.BitsPerSample)
	fmt.Fprintf(&b, "    sub_chunk2_id: 0x%08x\n", h.SubChunk2ID)
	fmt.Fprintf(&b, "    sub_chunk2_size: %d\n", h.SubChunk2Size)
	b.WriteString("}")
	return b.String()
}
