package terminal

import "errors"

var (
	// ErrAborted signals the user aborted input (Ctrl+C at the prompt).
	ErrAborted = errors.New("terminal: aborted")
	// ErrUnknownFormat is returned by NewRenderer for an unsupported format.
	ErrUnknownFormat = errors.New("terminal: unknown output format")
)
