package contexts

import "context"

type UseCase interface {
	// LoadTaskContext materializes a task (and its subtasks) into markdown
	// context files and registers references for the session. It returns a
	// summary with live counts.
	LoadTaskContext(ctx context.Context, ip LoadTaskContextInput) (LoadedContext, error)

	// ListLoadedContexts returns summaries for every context file the
	// session (and optionally a legacy worktree) references, reconstructed
	// by parsing the files back. Files that no longer exist are skipped.
	ListLoadedContexts(ctx context.Context, ip ListLoadedContextsInput) ([]LoadedContext, error)

	// RemoveContext drops the session's reference to a task context and,
	// when no other session references it, deletes the file along with any
	// subtask files that point back to it. Removing an absent reference is
	// a no-op.
	RemoveContext(ctx context.Context, ip RemoveContextInput) error
}
