package http

import (
	"errors"

	"clickup-context/internal/auth"
	"clickup-context/pkg/clickup"
	pkgErrors "clickup-context/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var (
		bindErr     *auth.ListenerBindError
		browserErr  *auth.BrowserLaunchError
		callbackErr *auth.CallbackError
		persistErr  *auth.PersistError
		exchangeErr *clickup.TokenExchangeError
	)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, auth.ErrCallbackTimeout):
		return pkgErrors.NewHTTPError(408, err.Error())
	case errors.As(err, &bindErr):
		return pkgErrors.NewHTTPError(409, bindErr.Error())
	case errors.As(err, &browserErr):
		return pkgErrors.NewHTTPError(500, browserErr.Error())
	case errors.As(err, &callbackErr):
		return pkgErrors.NewHTTPError(401, callbackErr.Error())
	case errors.As(err, &exchangeErr):
		return pkgErrors.NewHTTPError(502, exchangeErr.Error())
	case errors.As(err, &persistErr):
		return pkgErrors.NewHTTPError(500, persistErr.Error())
	case clickup.IsAuthError(err):
		return pkgErrors.NewHTTPError(401, err.Error())
	case clickup.IsRateLimited(err):
		return pkgErrors.NewHTTPError(429, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, err.Error())
	}
}
