package wav

import (
	"errors"
	"fmt"
	"io"
)

// ParseHeader reads exactly HeaderSize bytes from r, decodes them and
// validates the result. It consumes nothing past the header and never seeks.
// A stream that ends early yields a *ShortReadError carrying the byte count;
// any other read failure is returned wrapped. On a validation failure the
// decoded header is discarded and the zero Header is returned with the
// validation error.
func ParseHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, &ShortReadError{Actual: n}
		}
		return Header{}, fmt.Errorf("read wave header: %w", err)
	}

	h := DecodeHeader(buf)
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}
