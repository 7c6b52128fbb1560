package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrDetached is returned when a session is asked to run a form with no
	// model attached.
	ErrDetached = errors.New("tui: form has no model attached")
)
