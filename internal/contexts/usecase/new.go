package usecase

import (
	"clickup-context/internal/contexts"
	"clickup-context/pkg/clickup"
	"clickup-context/pkg/log"
	"clickup-context/pkg/refs"
)

type implUseCase struct {
	l      log.Logger
	client clickup.IClickUp
	refs   refs.Store

	// dir is the shared context directory, also written to by other
	// integrations; this package only touches clickup-prefixed files.
	dir string
}

func New(l log.Logger, client clickup.IClickUp, refStore refs.Store, dir string) contexts.UseCase {
	return &implUseCase{
		l:      l,
		client: client,
		refs:   refStore,
		dir:    dir,
	}
}
