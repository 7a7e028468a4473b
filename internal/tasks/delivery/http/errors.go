package http

import (
	"errors"

	"clickup-context/pkg/clickup"
	pkgErrors "clickup-context/pkg/errors"
)

// mapError translates API client errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var reqErr *clickup.RequestError
	switch {
	case clickup.IsAuthError(err):
		return pkgErrors.NewHTTPError(401, err.Error())
	case clickup.IsRateLimited(err):
		return pkgErrors.NewHTTPError(429, err.Error())
	case errors.As(err, &reqErr):
		return pkgErrors.NewHTTPError(502, reqErr.Error())
	default:
		return pkgErrors.NewHTTPError(500, err.Error())
	}
}
