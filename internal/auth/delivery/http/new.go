package http

import (
	"github.com/gin-gonic/gin"

	"clickup-context/internal/auth"
	"clickup-context/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Status(c *gin.Context)
	Logout(c *gin.Context)
	User(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
