package clickup

import (
	"errors"
	"fmt"
)

// AuthError means the stored token is missing, invalid or expired. When it
// comes from a 401 response the stored token has already been cleared, so
// the next attempt starts from "not authenticated".
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Message)
}

// RateLimitedError means ClickUp returned 429. ResetAt is the Unix-seconds
// timestamp from the x-ratelimit-reset header, nil when the header was
// absent. This layer performs no retries; backing off is the caller's call.
type RateLimitedError struct {
	ResetAt *int64
}

func (e *RateLimitedError) Error() string {
	if e.ResetAt != nil {
		return fmt.Sprintf("rate limited, retry after timestamp %d", *e.ResetAt)
	}
	return "rate limited, please wait before retrying"
}

// RequestError is any other non-2xx response or transport/parse failure.
// Status is 0 when no HTTP response was received.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("clickup API error (HTTP %d): %s", e.Status, e.Body)
	}
	return fmt.Sprintf("clickup request failed: %s", e.Body)
}

// TokenExchangeError means the OAuth code→token exchange was rejected.
type TokenExchangeError struct {
	Status int
	Body   string
}

func (e *TokenExchangeError) Error() string {
	return fmt.Sprintf("clickup token exchange failed (HTTP %d): %s", e.Status, e.Body)
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsRateLimited reports whether err is (or wraps) a RateLimitedError.
func IsRateLimited(err error) bool {
	var rlErr *RateLimitedError
	return errors.As(err, &rlErr)
}
