package container

import (
	"bufio"
	"encoding/binary"
	"io"
	"sort"
	"strconv"

	"github.com/huffmind/pycompress/internal/huffman"
)

// WriteContainer emits the full artifact: magic, version, checksum,
// serialized table, then a sequence of blocks pulled one at a time from
// next until it reports io.EOF, following
// save_compressed_file/save_table and compress_and_save_content's
// streamed f.read(BUFF_SIZE) loop in
// original_source/compressor/core.py (spec §4.6). next is expected to
// yield chunks of at most BuffSize runes each, the contract implemented
// by internal/driver's chunkedReader.
func WriteContainer(w io.Writer, next func() ([]rune, error), table huffman.Table, checksum uint32) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Magic); err != nil {
		return err
	}
	if err := bw.WriteByte(Version); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, checksum); err != nil {
		return err
	}
	if err := writeTable(bw, table); err != nil {
		return err
	}

	for {
		chunk, err := next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if err := EncodeBlock(bw, chunk, table); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeTable persists the symbol count, then the symbol bytes and their
// code words as two parallel arrays (spec §4.6). Symbols are written in
// sorted order so that compressing the same input twice yields identical
// bytes (spec §8 property 7, determinism) despite Go's randomized map
// iteration.
func writeTable(w io.Writer, table huffman.Table) error {
	symbols := make([]rune, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	if err := binary.Write(w, binary.LittleEndian, int32(len(symbols))); err != nil {
		return err
	}
	for _, s := range symbols {
		if _, err := w.Write([]byte{byte(s)}); err != nil {
			return err
		}
	}
	for _, s := range symbols {
		// Prefix a sentinel '1' bit so codes with leading zero bits
		// survive the round trip through an unsigned integer (spec §4.6).
		sentinelCode := "1" + table[s]
		v, err := strconv.ParseUint(sentinelCode, 2, 32)
		if err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(v)); err != nil {
			return err
		}
	}
	return nil
}
