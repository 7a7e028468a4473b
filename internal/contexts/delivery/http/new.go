package http

import (
	"github.com/gin-gonic/gin"

	"clickup-context/internal/contexts"
	"clickup-context/pkg/log"
)

// Handler is the public interface for the contexts HTTP delivery layer.
type Handler interface {
	Load(c *gin.Context)
	List(c *gin.Context)
	Remove(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc contexts.UseCase
}

// New creates a new HTTP handler for the contexts domain.
func New(l log.Logger, uc contexts.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
