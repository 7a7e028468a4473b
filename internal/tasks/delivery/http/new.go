package http

import (
	"github.com/gin-gonic/gin"

	"clickup-context/internal/tasks"
	"clickup-context/pkg/log"
)

// Handler is the public interface for the tasks HTTP delivery layer.
type Handler interface {
	ListWorkspaces(c *gin.Context)
	ListSpaces(c *gin.Context)
	SpaceHierarchy(c *gin.Context)
	ListTasks(c *gin.Context)
	ListTasksInList(c *gin.Context)
	Search(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc tasks.UseCase
}

// New creates a new HTTP handler for the tasks domain.
func New(l log.Logger, uc tasks.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
