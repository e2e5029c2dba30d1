package capture

import "errors"

var (
	// ErrCaptureFailed marks a failed screen grab or cursor query. It aborts the session.
	ErrCaptureFailed = errors.New("capture failed")
	// ErrInvalidParams marks parameters or a region the recorder refuses to run with.
	ErrInvalidParams = errors.New("invalid capture parameters")
)
