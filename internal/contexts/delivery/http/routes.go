package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	ctxs := rg.Group("/contexts")
	{
		ctxs.POST("", h.Load)
		ctxs.GET("", h.List)
		ctxs.DELETE("/:task_id", h.Remove)
	}
}
