package contexts

import "errors"

var (
	ErrMissingSessionID = errors.New("session ID is required")
	ErrMissingTaskID    = errors.New("task ID is required")
)
