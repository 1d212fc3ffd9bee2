package huffman

// Version is the codec's reported release, mirroring the
// compressor.constants.VERSION re-export of original_source's
// compressor/__init__.py, sourced into the CLI's -v/--version flag.
const Version = "1.0.0"
