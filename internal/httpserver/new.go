package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clickup-context/internal/auth"
	"clickup-context/internal/contexts"
	"clickup-context/internal/tasks"
	"clickup-context/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	authUC     auth.UseCase
	tasksUC    tasks.UseCase
	contextsUC contexts.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AuthUC     auth.UseCase
	TasksUC    tasks.UseCase
	ContextsUC contexts.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		authUC:      cfg.AuthUC,
		tasksUC:     cfg.TasksUC,
		contextsUC:  cfg.ContextsUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	if srv.tasksUC == nil {
		return errors.New("tasks usecase is required")
	}
	if srv.contextsUC == nil {
		return errors.New("contexts usecase is required")
	}
	return nil
}
