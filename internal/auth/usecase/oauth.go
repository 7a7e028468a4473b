package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clickup-context/internal/auth"
	"clickup-context/pkg/clickup"
)

// StartOAuth runs the full authorization-code flow: bind the callback
// listener, open the browser, wait for the redirect, exchange the code
// and persist the token. It blocks until the flow settles.
func (uc *implUseCase) StartOAuth(ctx context.Context, ip auth.StartOAuthInput) error {
	if ip.ClientID == "" || ip.ClientSecret == "" {
		return auth.ErrMissingCredentials
	}

	srv := newCallbackServer(uc.port)
	if err := srv.Start(); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.StartOAuth.bind: %v", err)
		return &auth.ListenerBindError{Port: uc.port, Err: err}
	}
	defer srv.Stop()

	state := uuid.NewString()
	redirectURI := fmt.Sprintf("http://localhost:%d/callback", uc.port)
	authURL := clickup.AuthCodeURL(ip.ClientID, redirectURI, state)

	if err := uc.openBrowser(authURL); err != nil {
		// The user can still follow the URL by hand, keep waiting.
		uc.l.Warnf(ctx, "auth.usecase.StartOAuth.openBrowser: %v, visit %s manually", err, authURL)
	}

	var res callbackResult
	select {
	case res = <-srv.Result():
	case <-time.After(uc.flowTimeout):
		uc.l.Warnf(ctx, "auth.usecase.StartOAuth: no callback within %s", uc.flowTimeout)
		return auth.ErrCallbackTimeout
	case <-ctx.Done():
		return ctx.Err()
	}

	if res.errParam != "" {
		return &auth.CallbackError{Message: res.errParam}
	}
	if res.state != "" && res.state != state {
		return &auth.CallbackError{Message: "state mismatch"}
	}

	token, err := uc.client.ExchangeCode(ctx, ip.ClientID, ip.ClientSecret, res.code, redirectURI)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.StartOAuth.exchange: %v", err)
		return err
	}

	if err := uc.store.Set(clickup.SecretKey, token); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.StartOAuth.persist: %v", err)
		return &auth.PersistError{Err: err}
	}

	uc.notify()
	return nil
}

// CheckAuth reports whether a stored token exists. It never touches the
// network, store probe failures land in AuthStatus.Error.
func (uc *implUseCase) CheckAuth(ctx context.Context) (auth.AuthStatus, error) {
	_, ok, err := uc.store.Get(clickup.SecretKey)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.CheckAuth: %v", err)
		return auth.AuthStatus{Error: err.Error()}, nil
	}
	return auth.AuthStatus{Authenticated: ok}, nil
}

// Logout deletes the stored token. Deleting an absent token is a no-op.
func (uc *implUseCase) Logout(ctx context.Context) error {
	if err := uc.store.Delete(clickup.SecretKey); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Logout: %v", err)
		return err
	}
	return nil
}

// AuthorizedUser fetches the identity behind the stored token.
func (uc *implUseCase) AuthorizedUser(ctx context.Context) (*clickup.AuthenticatedUser, error) {
	u, err := uc.client.GetAuthorizedUser(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.AuthorizedUser: %v", err)
		return nil, err
	}
	return u, nil
}

// Subscribe registers a callback fired after auth state changes.
func (uc *implUseCase) Subscribe(fn func()) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.observers = append(uc.observers, fn)
}

func (uc *implUseCase) notify() {
	uc.mu.Lock()
	obs := make([]func(), len(uc.observers))
	copy(obs, uc.observers)
	uc.mu.Unlock()

	for _, fn := range obs {
		go fn()
	}
}
