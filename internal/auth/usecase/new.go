package usecase

import (
	"sync"
	"time"

	"clickup-context/internal/auth"
	"clickup-context/pkg/clickup"
	"clickup-context/pkg/log"
	"clickup-context/pkg/secrets"
)

const defaultFlowTimeout = 5 * time.Minute

type implUseCase struct {
	l      log.Logger
	client clickup.IClickUp
	store  secrets.Store

	port        int
	flowTimeout time.Duration

	mu        sync.Mutex
	observers []func()

	// openBrowser is swapped out in tests.
	openBrowser func(url string) error
}

func New(l log.Logger, client clickup.IClickUp, store secrets.Store, port int) auth.UseCase {
	return &implUseCase{
		l:           l,
		client:      client,
		store:       store,
		port:        port,
		flowTimeout: defaultFlowTimeout,
		openBrowser: OpenBrowser,
	}
}
