package driver

import (
	"bufio"
	"io"

	"github.com/huffmind/pycompress/internal/container"
)

// chunkedReader pulls fixed-size rune chunks from an underlying io.Reader,
// the Go analogue of original_source/compressor/util.py's StreamFile and
// of compress_and_save_content's f.read(BUFF_SIZE) loop in
// original_source/compressor/core.py: the source file is read
// container.BuffSize characters at a time rather than held whole for the
// encode pass.
type chunkedReader struct {
	br *bufio.Reader
}

func newChunkedReader(r io.Reader) *chunkedReader {
	return &chunkedReader{br: bufio.NewReader(r)}
}

// Next returns the next chunk of up to container.BuffSize runes, or
// io.EOF once the underlying reader is exhausted.
func (c *chunkedReader) Next() ([]rune, error) {
	chunk := make([]rune, 0, container.BuffSize)
	for len(chunk) < container.BuffSize {
		r, _, err := c.br.ReadRune()
		if err != nil {
			if err == io.EOF {
				if len(chunk) == 0 {
					return nil, io.EOF
				}
				return chunk, nil
			}
			return nil, err
		}
		chunk = append(chunk, r)
	}
	return chunk, nil
}
