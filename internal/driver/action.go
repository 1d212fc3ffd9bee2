package driver

import "errors"

// Action names the operation a driver invocation performs, the Go
// analogue of original_source/compressor/constants.py::Actions.
type Action int

const (
	ActionCompress Action = iota
	ActionExtract
)

// ErrAmbiguousAction is returned when the caller's compress/extract flags
// do not select exactly one action, mirroring argparse's
// add_mutually_exclusive_group(required=True) in
// original_source/compressor/cli.py.
var ErrAmbiguousAction = errors.New("driver: exactly one of compress or extract must be selected")

// ActionFromFlags resolves the action selected by a pair of mutually
// exclusive boolean flags, following
// original_source/compressor/constants.py::Actions.from_flags.
func ActionFromFlags(compress, extract bool) (Action, error) {
	if compress == extract {
		return 0, ErrAmbiguousAction
	}
	if compress {
		return ActionCompress, nil
	}
	return ActionExtract, nil
}

func (a Action) defaultExtension() string {
	if a == ActionCompress {
		return "comp"
	}
	return "extr"
}

func (a Action) String() string {
	if a == ActionCompress {
		return "compress"
	}
	return "extract"
}
