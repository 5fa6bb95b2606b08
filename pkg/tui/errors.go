package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrSubmissionFailed signals the submit collaborator rejected the
	// filled-in values; the session's errors map holds the details.
	ErrSubmissionFailed = errors.New("tui: submission failed")
)
