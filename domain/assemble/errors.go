package assemble

import "errors"

var (
	// ErrEmptyInput is returned when Assemble receives no samples. No file is written.
	ErrEmptyInput = errors.New("no samples to assemble")
	// ErrEncodeFailed marks a failed encode or write of the output file.
	ErrEncodeFailed = errors.New("encode failed")
)
