package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/workspaces", h.ListWorkspaces)
	rg.GET("/workspaces/:id/spaces", h.ListSpaces)
	rg.GET("/spaces/:id/hierarchy", h.SpaceHierarchy)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.GET("/search", h.Search)
		tasks.GET("/:id", h.Detail)
	}
	rg.GET("/lists/:id/tasks", h.ListTasksInList)
}
