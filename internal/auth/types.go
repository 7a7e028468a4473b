package auth

// StartOAuthInput carries the OAuth app credentials.
type StartOAuthInput struct {
	ClientID     string
	ClientSecret string
}

// AuthStatus is the result of an authentication probe.
type AuthStatus struct {
	Authenticated bool
	Error         string
}
