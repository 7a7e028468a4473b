package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"clickup-context/internal/tasks"
	"clickup-context/pkg/clickup"
	"clickup-context/pkg/log"
)

const hierarchyCacheSize = 128

type implUseCase struct {
	l      log.Logger
	client clickup.IClickUp

	hierarchyCache *expirable.LRU[string, *clickup.SpaceHierarchy]
}

func New(l log.Logger, client clickup.IClickUp, hierarchyTTL time.Duration) tasks.UseCase {
	return &implUseCase{
		l:              l,
		client:         client,
		hierarchyCache: expirable.NewLRU[string, *clickup.SpaceHierarchy](hierarchyCacheSize, nil, hierarchyTTL),
	}
}
