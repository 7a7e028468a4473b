package http

import (
	"github.com/gin-gonic/gin"
)

// processListTasksReq binds and validates the workspace listing query.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListTasksInListReq binds the per-list query plus URI param.
func (h *handler) processListTasksInListReq(c *gin.Context) (listTasksInListReq, error) {
	var req listTasksInListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.ListID = c.Param("id")
	return req, nil
}

// processSearchReq binds and validates the search query.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
