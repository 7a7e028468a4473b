package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clickup-context/config"
	authUC "clickup-context/internal/auth/usecase"
	contextsUC "clickup-context/internal/contexts/usecase"
	"clickup-context/internal/httpserver"
	tasksUC "clickup-context/internal/tasks/usecase"
	"clickup-context/pkg/clickup"
	"clickup-context/pkg/log"
	"clickup-context/pkg/refs"
	"clickup-context/pkg/secrets"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ClickUp context service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Stores
	secretStore, err := secrets.NewFileStore(cfg.Secrets.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open secret store: %v", err)
	}
	refStore, err := refs.NewFileStore(cfg.Refs.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open refs store: %v", err)
	}

	// 4. ClickUp API client
	client := clickup.NewClient(secretStore, logger, clickup.Config{
		BaseURL:           cfg.ClickUp.BaseURL,
		RequestsPerMinute: cfg.ClickUp.RequestsPerMinute,
	})

	// 5. UseCases
	authUseCase := authUC.New(logger, client, secretStore, cfg.ClickUp.CallbackPort)
	tasksUseCase := tasksUC.New(logger, client, cfg.ClickUp.HierarchyCacheTTL)
	contextsUseCase := contextsUC.New(logger, client, refStore, cfg.Contexts.Dir)

	authUseCase.Subscribe(func() {
		logger.Info(context.Background(), "ClickUp authentication completed")
	})

	// 6. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AuthUC:      authUseCase,
		TasksUC:     tasksUseCase,
		ContextsUC:  contextsUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
