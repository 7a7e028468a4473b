package http

import (
	"github.com/gin-gonic/gin"
)

// processLoadReq binds and validates the load request body.
func (h *handler) processLoadReq(c *gin.Context) (loadReq, error) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRemoveReq binds the remove query plus URI param.
func (h *handler) processRemoveReq(c *gin.Context) (removeReq, error) {
	var req removeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("task_id")
	return req, nil
}
