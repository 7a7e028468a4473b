package http

import (
	"github.com/gin-gonic/gin"

	"clickup-context/pkg/response"
)

// Login starts the OAuth authorization-code flow. The request blocks
// until the browser hand-off completes, fails or times out.
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.StartOAuth(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.StartOAuth: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Status reports whether a token is currently stored.
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.CheckAuth(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckAuth: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatusResp(st))
}

// Logout deletes the stored token.
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// User returns the authenticated user's profile.
func (h *handler) User(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.uc.AuthorizedUser(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.AuthorizedUser: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}
