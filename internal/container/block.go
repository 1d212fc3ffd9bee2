package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/huffmind/pycompress/internal/bitio"
	"github.com/huffmind/pycompress/internal/huffman"
)

// EncodeBlock writes one block for chunk: a u32 block_byte_length, a u32
// original_char_length, then the framed payload bytes, following
// process_line_compression in original_source/compressor/core.py (spec
// §4.5).
func EncodeBlock(w io.Writer, chunk []rune, table huffman.Table) error {
	sw := bitio.NewSentinelWriter()
	for _, r := range chunk {
		code, ok := table[r]
		if !ok {
			return fmt.Errorf("%w: %q", huffman.ErrMissingSymbol, r)
		}
		if err := sw.WriteCode(code); err != nil {
			return err
		}
	}
	payload, err := sw.Bytes()
	if err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(payload))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(chunk))); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// DecodeBlock implements the bit-window state machine of spec §4.7:
// discard the leading sentinel bit, then grow a window one bit at a time
// until it matches a key in inverse, emit the symbol, and restart the
// window — until originalCharLength symbols have been emitted. Trailing
// padding bits are left unread.
func DecodeBlock(payload []byte, inverse map[string]rune, originalCharLength int) ([]rune, error) {
	br := bitio.NewSentinelReader(payload)
	if err := br.DiscardSentinel(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
	}

	out := make([]rune, 0, originalCharLength)
	window := make([]byte, 0, 8)
	for len(out) < originalCharLength {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodeStuck, err)
		}
		window = append(window, bit)
		if symbol, ok := inverse[string(window)]; ok {
			out = append(out, symbol)
			window = window[:0]
		}
	}
	return out, nil
}
