package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "clickup-context/internal/auth/delivery/http"
	contextsHTTP "clickup-context/internal/contexts/delivery/http"
	tasksHTTP "clickup-context/internal/tasks/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1/clickup.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1/clickup")

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authUC))
	srv.l.Infof(ctx, "Auth domain registered")

	tasksHTTP.RegisterRoutes(api, tasksHTTP.New(srv.l, srv.tasksUC))
	srv.l.Infof(ctx, "Tasks domain registered")

	contextsHTTP.RegisterRoutes(api, contextsHTTP.New(srv.l, srv.contextsUC))
	srv.l.Infof(ctx, "Contexts domain registered")
}
