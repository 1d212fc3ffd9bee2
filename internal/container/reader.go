package container

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/huffmind/pycompress/internal/huffman"
)

// Header is the parsed, pre-block portion of a container: the stored
// character checksum and the code table, already inverted for decoding.
type Header struct {
	Checksum uint32
	Table    huffman.Table
	Inverse  map[string]rune
}

// ReadHeader parses the magic, version, checksum and code table from the
// front of r, following retrieve_table/_retrieve_checksum in
// original_source/compressor/core.py (spec §4.7 steps 1-2).
func ReadHeader(r *bufio.Reader) (*Header, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
	}
	if string(magic) != Magic {
		return nil, ErrBadMagic
	}

	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
	}
	if version != Version {
		return nil, ErrUnsupportedVersion
	}

	var checksum uint32
	if err := binary.Read(r, binary.LittleEndian, &checksum); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
	}

	table, err := readTable(r)
	if err != nil {
		return nil, err
	}
	inverse, err := table.Invert()
	if err != nil {
		return nil, err
	}

	return &Header{Checksum: checksum, Table: table, Inverse: inverse}, nil
}

func readTable(r io.Reader) (huffman.Table, error) {
	var k int32
	if err := binary.Read(r, binary.LittleEndian, &k); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: non-positive symbol count %d", huffman.ErrBadTable, k)
	}

	symbols := make([]byte, k)
	if _, err := io.ReadFull(r, symbols); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
	}

	codes := make([]uint32, k)
	for i := range codes {
		if err := binary.Read(r, binary.LittleEndian, &codes[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
		}
	}

	table := make(huffman.Table, k)
	for i, b := range symbols {
		bits := strconv.FormatUint(uint64(codes[i]), 2)
		if len(bits) < 1 {
			return nil, fmt.Errorf("%w: empty code word", huffman.ErrBadTable)
		}
		// Drop the leading sentinel '1' bit (spec §4.6/§4.7).
		table[rune(b)] = bits[1:]
	}
	return table, nil
}

// Decode parses the full container read from r and returns the original
// text, following decode_file_content/_decode_block in
// original_source/compressor/core.py (spec §4.7 step 3 and the
// Scanning/Matched/BlockDone state machine it documents).
func Decode(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	header, err := ReadHeader(br)
	if err != nil {
		return "", err
	}

	out := make([]rune, 0, header.Checksum)
	for uint32(len(out)) < header.Checksum {
		var blockLen, charLen uint32
		if err := binary.Read(br, binary.LittleEndian, &blockLen); err != nil {
			if err == io.EOF {
				break
			}
			return "", fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &charLen); err != nil {
			return "", fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
		}

		payload := make([]byte, blockLen)
		if _, err := io.ReadFull(br, payload); err != nil {
			return "", fmt.Errorf("%w: %v", ErrTruncatedContainer, err)
		}

		decoded, err := DecodeBlock(payload, header.Inverse, int(charLen))
		if err != nil {
			return "", err
		}
		out = append(out, decoded...)
	}

	if uint32(len(out)) != header.Checksum {
		return "", fmt.Errorf("%w: decoded %d want %d", ErrChecksumMismatch, len(out), header.Checksum)
	}
	return string(out), nil
}
