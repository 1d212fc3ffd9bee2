package container

// Magic and Version prefix every container this codec writes. The
// original implementation (original_source/compressor/core.py) has no
// such header — spec §9's Open Question about adding one is decided here
// in favor of adding it, so a reader never has to guess whether a file in
// front of it is actually one of these containers.
const (
	Magic   = "PYC1"
	Version = byte(1)
)

// BuffSize is the number of characters encoded per block
// (original_source/compressor/constants.py BUFF_SIZE) — the single
// source of truth for chunk size: the most runes WriteContainer expects
// from each call of its chunk source, and the chunk size internal/driver's
// chunkedReader yields.
const BuffSize = 1024
