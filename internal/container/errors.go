package container

import "errors"

var (
	// ErrTruncatedContainer is returned when a read hits EOF mid-field.
	ErrTruncatedContainer = errors.New("container: truncated container")

	// ErrDecodeStuck is returned when a block's bit window is exhausted
	// without matching a code in the inverse table.
	ErrDecodeStuck = errors.New("container: decode window exhausted without a match")

	// ErrChecksumMismatch is returned when the decoded character count
	// does not equal the stored checksum once the input is exhausted.
	ErrChecksumMismatch = errors.New("container: decoded length does not match checksum")

	// ErrBadMagic is returned when a file does not start with the
	// expected magic number.
	ErrBadMagic = errors.New("container: bad magic number")

	// ErrUnsupportedVersion is returned for a recognized magic number but
	// an unknown format version.
	ErrUnsupportedVersion = errors.New("container: unsupported container version")
)
