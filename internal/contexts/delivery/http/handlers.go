package http

import (
	"github.com/gin-gonic/gin"

	"clickup-context/pkg/response"
)

// Load materializes a task and its subtasks into context files.
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	lc, err := h.uc.LoadTaskContext(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LoadTaskContext: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, lc)
}

// List returns summaries for the session's loaded contexts.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ListLoadedContexts(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLoadedContexts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listResp{Contexts: out})
}

// Remove drops the session's reference to a task context.
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RemoveContext(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.RemoveContext: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
