package clickup

import "time"

const (
	// DefaultBaseURL is the ClickUp REST API endpoint.
	DefaultBaseURL = "https://api.clickup.com/api/v2"

	// AuthorizeURL is the browser page where the user approves access.
	AuthorizeURL = "https://app.clickup.com/api"

	// SecretKey is the secret-store key holding the access token. One
	// fixed key, no multi-account support.
	SecretKey = "clickup-access-token"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// headerRateLimitRemaining / headerRateLimitReset are ClickUp's
	// quota headers.
	headerRateLimitRemaining = "x-ratelimit-remaining"
	headerRateLimitReset     = "x-ratelimit-reset"

	// rateLimitWarnThreshold is the low-water mark for remaining quota
	// below which a warning is logged.
	rateLimitWarnThreshold = 10

	// PageSize is ClickUp's fixed task page size. Pagination is 0-indexed.
	PageSize = 100
)
