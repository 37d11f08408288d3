package homophones

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension with no reader.
	ErrUnsupportedFormat = errors.New("unsupported homophone file format")

	// ErrMalformed indicates a source that could not be parsed.
	ErrMalformed = errors.New("malformed homophone source")
)
