package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials means client ID or client secret was empty.
	ErrMissingCredentials = errors.New("client ID and client secret are required")

	// ErrCallbackTimeout means no callback arrived within the flow window.
	ErrCallbackTimeout = errors.New("OAuth flow timed out, please try again and complete authorization within 5 minutes")
)

// ListenerBindError means the fixed callback port could not be bound,
// usually because another process holds it. The flow is not retried.
type ListenerBindError struct {
	Port int
	Err  error
}

func (e *ListenerBindError) Error() string {
	return fmt.Sprintf("failed to bind OAuth callback server on port %d: %v (is another process using this port?)", e.Port, e.Err)
}

func (e *ListenerBindError) Unwrap() error { return e.Err }

// BrowserLaunchError means the system browser could not be opened. The
// flow keeps waiting in case the user opens the link manually.
type BrowserLaunchError struct {
	Err error
}

func (e *BrowserLaunchError) Error() string {
	return fmt.Sprintf("failed to open browser: %v", e.Err)
}

func (e *BrowserLaunchError) Unwrap() error { return e.Err }

// CallbackError carries the provider-supplied error string from the
// authorization callback.
type CallbackError struct {
	Message string
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("OAuth authorization failed: %s", e.Message)
}

// PersistError means the exchanged token could not be stored. Listener
// and browser side effects are not rolled back.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to store access token: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
