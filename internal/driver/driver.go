// Package driver orchestrates a single compress or extract operation
// end-to-end: open the source, run the codec, write the destination, and
// guarantee both file handles are released on every exit path (spec
// §4.8/§5), following original_source/compressor/lib.py
// (compress_file/extract_file) and the defer-based handle-release
// discipline of kelbwah-huffmin/internal/routes/huffman.go.
package driver

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/huffmind/pycompress/internal/container"
	"github.com/huffmind/pycompress/internal/huffman"
)

// Compress reads srcPath once in full to build its Huffman code table,
// following compress_file in original_source/compressor/lib.py
// (process_frequencies(source.read())), then reopens srcPath and streams
// it through a chunkedReader to encode the container, following
// compress_and_save_content's separate f.read(BUFF_SIZE) pass over the
// same file. On failure, a destination file created by this invocation is
// removed (spec §7); a preexisting file at dest that this run never
// created is left untouched.
func Compress(log zerolog.Logger, srcPath string, out OutputPath) (err error) {
	dest := out.Resolve()
	start := time.Now()
	log.Info().Str("src", srcPath).Str("dst", dest).Msg("compress: start")
	var created bool
	defer func() { logOutcome(log, "compress", dest, start, created, err) }()

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	text := string(data)

	leaves, err := huffman.Analyze(text)
	if err != nil {
		return err
	}

	var checksum uint32
	for _, leaf := range leaves {
		checksum += uint32(leaf.Freq)
	}

	tree, err := huffman.BuildTree(leaves)
	if err != nil {
		return err
	}
	table, err := huffman.BuildTable(tree)
	if err != nil {
		return err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	created = true
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cr := newChunkedReader(src)
	return container.WriteContainer(f, cr.Next, table, checksum)
}

// Extract reconstructs the original text from the container at srcPath
// and writes it to the path resolved by out, following extract_file
// (retrieve_compressed_file) in original_source/compressor/core.py.
func Extract(log zerolog.Logger, srcPath string, out OutputPath) (err error) {
	dest := out.Resolve()
	start := time.Now()
	log.Info().Str("src", srcPath).Str("dst", dest).Msg("extract: start")
	var created bool
	defer func() { logOutcome(log, "extract", dest, start, created, err) }()

	f, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()

	text, err := container.Decode(f)
	if err != nil {
		return err
	}

	out2, err := os.Create(dest)
	if err != nil {
		return err
	}
	created = true
	defer func() {
		if cerr := out2.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = out2.WriteString(text)
	return err
}

// logOutcome logs the result of a compress/extract operation. On failure,
// it removes dest only if this invocation actually created it (created is
// true) — a failure before os.Create (a bad source read, an empty-input
// rejection, a malformed container) must never delete a preexisting file
// at dest that this run never touched (spec §7).
func logOutcome(log zerolog.Logger, op, dest string, start time.Time, created bool, err error) {
	if err != nil {
		log.Error().Err(err).Str("dst", dest).Msg(op + ": failed")
		if created {
			_ = os.Remove(dest)
		}
		return
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg(op + ": done")
}
