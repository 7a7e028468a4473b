package http

import (
	"github.com/gin-gonic/gin"

	"clickup-context/pkg/response"
)

// ListWorkspaces returns the workspaces visible to the stored token.
func (h *handler) ListWorkspaces(c *gin.Context) {
	ctx := c.Request.Context()

	ws, err := h.uc.ListWorkspaces(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWorkspaces: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ws)
}

// ListSpaces returns the spaces inside a workspace.
func (h *handler) ListSpaces(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.NotFound(c, "workspace not found")
		return
	}

	sps, err := h.uc.ListSpaces(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSpaces: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sps)
}

// SpaceHierarchy returns a space's folders and folderless lists.
func (h *handler) SpaceHierarchy(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.NotFound(c, "space not found")
		return
	}

	hr, err := h.uc.GetSpaceHierarchy(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSpaceHierarchy: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, hr)
}

// ListTasks returns one page of tasks across a workspace.
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.uc.ListTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskListResp(res))
}

// ListTasksInList returns one page of tasks in a single list.
func (h *handler) ListTasksInList(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksInListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.uc.ListTasksInList(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasksInList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskListResp(res))
}

// Search looks a task up by internal or custom ID. A miss is a 200 with
// found=false, not a 404.
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, found, err := h.uc.SearchTaskByID(ctx, req.Query, req.WorkspaceID)
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchTaskByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, searchResp{Found: found, Task: task})
}

// Detail returns full task detail with comments attached.
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.NotFound(c, "task not found")
		return
	}

	d, err := h.uc.GetTask(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, d)
}
