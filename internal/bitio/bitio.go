// Package bitio frames a run of prefix-free Huffman codes the way the
// container format requires: a literal leading '1' bit (the sentinel),
// the code bits themselves, then zero padding out to a byte boundary. The
// sentinel guarantees that leading zero bits of the first code survive the
// bit buffer being flushed and later re-read as a big-endian bitstream.
//
// Bit accumulation itself is delegated to github.com/icza/bitio, the same
// library the pack's own Huffman coder (Consensys-compress/huffman) and
// LZSS codec (Consensys-compress/lzss/io.go) build their bit-level I/O on.
package bitio

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// SentinelWriter accumulates one block's worth of code bits.
type SentinelWriter struct {
	buf     bytes.Buffer
	bw      *bitio.Writer
	started bool
}

// NewSentinelWriter returns an empty writer ready to accept code bits.
func NewSentinelWriter() *SentinelWriter {
	w := &SentinelWriter{}
	w.bw = bitio.NewWriter(&w.buf)
	return w
}

func (w *SentinelWriter) ensureSentinel() error {
	if w.started {
		return nil
	}
	if err := w.bw.WriteBits(1, 1); err != nil {
		return err
	}
	w.started = true
	return nil
}

// WriteCode appends a code, given as a string of '0'/'1' characters, left
// descent first. The first call also emits the leading sentinel bit.
func (w *SentinelWriter) WriteCode(code string) error {
	if err := w.ensureSentinel(); err != nil {
		return err
	}
	for _, bit := range code {
		var v uint64
		switch bit {
		case '0':
			v = 0
		case '1':
			v = 1
		default:
			return fmt.Errorf("bitio: invalid code bit %q", bit)
		}
		if err := w.bw.WriteBits(v, 1); err != nil {
			return err
		}
	}
	return nil
}

// Bytes flushes the accumulated bits, zero-padding on the right to a byte
// boundary, and returns the framed block. An empty writer (no codes ever
// written) still emits the bare sentinel byte, so a decoder can always
// discard exactly one leading bit.
func (w *SentinelWriter) Bytes() ([]byte, error) {
	if err := w.ensureSentinel(); err != nil {
		return nil, err
	}
	if _, err := w.bw.Align(); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// SentinelReader walks the bits of a framed block left to right.
type SentinelReader struct {
	br *bitio.Reader
}

// NewSentinelReader wraps payload for bit-at-a-time reading.
func NewSentinelReader(payload []byte) *SentinelReader {
	return &SentinelReader{br: bitio.NewReader(bytes.NewReader(payload))}
}

// DiscardSentinel reads and drops the leading sentinel bit.
func (r *SentinelReader) DiscardSentinel() error {
	_, err := r.br.ReadBits(1)
	return err
}

// ReadBit returns the next bit as '0' or '1'.
func (r *SentinelReader) ReadBit() (byte, error) {
	v, err := r.br.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if v == 1 {
		return '1', nil
	}
	return '0', nil
}
