package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"clickup-context/internal/contexts"
	"clickup-context/pkg/clickup"
)

// LoadTaskContext materializes a task into the context directory. The
// parent fetches are joined strictly, subtask fetches are best-effort.
func (uc *implUseCase) LoadTaskContext(ctx context.Context, ip contexts.LoadTaskContextInput) (contexts.LoadedContext, error) {
	if ip.SessionID == "" {
		return contexts.LoadedContext{}, contexts.ErrMissingSessionID
	}
	if ip.TaskID == "" {
		return contexts.LoadedContext{}, contexts.ErrMissingTaskID
	}

	var (
		detail   *clickup.TaskDetail
		comments []clickup.Comment
		listing  *clickup.TaskListResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = uc.client.GetTask(gctx, ip.TaskID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = uc.client.GetTaskComments(gctx, ip.TaskID)
		return err
	})
	g.Go(func() error {
		var err error
		listing, err = uc.client.ListTasks(gctx, ip.WorkspaceID, clickup.ListTasksOptions{
			Subtasks:      true,
			IncludeClosed: true,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "contexts.usecase.LoadTaskContext.fetch: %v", err)
		return contexts.LoadedContext{}, err
	}
	detail.Comments = comments

	var subtasks []clickup.Task
	for _, t := range listing.Tasks {
		if t.Parent == ip.TaskID {
			subtasks = append(subtasks, t)
		}
	}

	materialized := uc.fetchSubtasks(ctx, subtasks)
	detail.Subtasks = subtasks

	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return contexts.LoadedContext{}, fmt.Errorf("failed to create contexts directory: %w", err)
	}

	// Per-subtask write or ref failures are logged and the subtask is
	// dropped from the parent's bullet list, same as a fetch failure.
	kept := materialized[:0]
	for _, st := range materialized {
		content := renderSubtaskMarkdown(st, detail.Name, ip.TaskID)
		path := filepath.Join(uc.dir, subtaskFileName(st.ID))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			uc.l.Warnf(ctx, "contexts.usecase.LoadTaskContext: write subtask %s: %v", st.ID, err)
			continue
		}
		if err := uc.refs.Add(refKey(st.ID), ip.SessionID); err != nil {
			uc.l.Warnf(ctx, "contexts.usecase.LoadTaskContext: ref subtask %s: %v", st.ID, err)
			continue
		}
		kept = append(kept, st)
	}

	content := renderTaskMarkdown(detail, kept)
	path := filepath.Join(uc.dir, taskFileName(ip.TaskID))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		uc.l.Errorf(ctx, "contexts.usecase.LoadTaskContext.write: %v", err)
		return contexts.LoadedContext{}, fmt.Errorf("failed to write task context file: %w", err)
	}
	if err := uc.refs.Add(refKey(ip.TaskID), ip.SessionID); err != nil {
		uc.l.Errorf(ctx, "contexts.usecase.LoadTaskContext.ref: %v", err)
		return contexts.LoadedContext{}, err
	}

	return contexts.LoadedContext{
		TaskID:       detail.ID,
		CustomID:     detail.CustomID,
		Name:         detail.Name,
		CommentCount: len(comments),
		SubtaskCount: len(kept),
		WorkspaceID:  ip.WorkspaceID,
	}, nil
}

// fetchSubtasks fetches detail and comments for each subtask fully
// concurrently. A failing subtask is logged and skipped, it never
// aborts the others.
func (uc *implUseCase) fetchSubtasks(ctx context.Context, subtasks []clickup.Task) []*clickup.TaskDetail {
	results := make([]*clickup.TaskDetail, len(subtasks))

	var wg sync.WaitGroup
	for i, st := range subtasks {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			d, err := uc.fetchSubtask(ctx, id)
			if err != nil {
				uc.l.Warnf(ctx, "contexts.usecase.LoadTaskContext: subtask %s skipped: %v", id, err)
				return
			}
			results[i] = d
		}(i, st.ID)
	}
	wg.Wait()

	kept := make([]*clickup.TaskDetail, 0, len(results))
	for _, d := range results {
		if d != nil {
			kept = append(kept, d)
		}
	}
	return kept
}

func (uc *implUseCase) fetchSubtask(ctx context.Context, taskID string) (*clickup.TaskDetail, error) {
	var (
		detail   *clickup.TaskDetail
		comments []clickup.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = uc.client.GetTask(gctx, taskID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = uc.client.GetTaskComments(gctx, taskID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	detail.Comments = comments
	return detail, nil
}

// ListLoadedContexts reconstructs summaries from the files referenced by
// the session, merged with the legacy worktree owner when given. The
// refs store says what should exist, the filesystem says what does.
func (uc *implUseCase) ListLoadedContexts(ctx context.Context, ip contexts.ListLoadedContextsInput) ([]contexts.LoadedContext, error) {
	if ip.SessionID == "" {
		return nil, contexts.ErrMissingSessionID
	}

	keys, err := uc.refs.ListByOwner(ip.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "contexts.usecase.ListLoadedContexts: %v", err)
		return nil, err
	}
	if ip.WorktreeID != "" {
		legacy, err := uc.refs.ListByOwner(ip.WorktreeID)
		if err != nil {
			uc.l.Errorf(ctx, "contexts.usecase.ListLoadedContexts: %v", err)
			return nil, err
		}
		keys = mergeKeys(keys, legacy)
	}
	sort.Strings(keys)

	out := make([]contexts.LoadedContext, 0, len(keys))
	for _, key := range keys {
		taskID := strings.TrimPrefix(key, refKeyPrefix)
		if taskID == key || taskID == "" {
			continue
		}

		content, err := os.ReadFile(filepath.Join(uc.dir, taskFileName(taskID)))
		if err != nil {
			// Subtask references and deleted files land here.
			if !os.IsNotExist(err) {
				uc.l.Warnf(ctx, "contexts.usecase.ListLoadedContexts: read %s: %v", taskID, err)
			}
			continue
		}
		out = append(out, parseContextMarkdown(taskID, string(content)))
	}
	return out, nil
}

// RemoveContext drops the session's reference. When that orphans the
// task it deletes the parent file and sweeps the directory for subtask
// files pointing back at it, removing their refs and files too.
func (uc *implUseCase) RemoveContext(ctx context.Context, ip contexts.RemoveContextInput) error {
	if ip.SessionID == "" {
		return contexts.ErrMissingSessionID
	}
	if ip.TaskID == "" {
		return contexts.ErrMissingTaskID
	}

	orphaned, err := uc.refs.Remove(refKey(ip.TaskID), ip.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "contexts.usecase.RemoveContext: %v", err)
		return err
	}
	if !orphaned {
		return nil
	}

	parentFile := taskFileName(ip.TaskID)
	if err := os.Remove(filepath.Join(uc.dir, parentFile)); err != nil && !os.IsNotExist(err) {
		uc.l.Errorf(ctx, "contexts.usecase.RemoveContext.remove: %v", err)
		return fmt.Errorf("failed to remove task context file: %w", err)
	}

	entries, err := os.ReadDir(uc.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, subtaskFilePrefix) || !strings.HasSuffix(name, ".md") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(uc.dir, name))
		if err != nil || !strings.Contains(string(content), parentFile) {
			continue
		}

		subtaskID := strings.TrimSuffix(strings.TrimPrefix(name, subtaskFilePrefix), ".md")
		if _, err := uc.refs.Remove(refKey(subtaskID), ip.SessionID); err != nil {
			uc.l.Warnf(ctx, "contexts.usecase.RemoveContext: unref subtask %s: %v", subtaskID, err)
		}
		if err := os.Remove(filepath.Join(uc.dir, name)); err != nil && !os.IsNotExist(err) {
			uc.l.Warnf(ctx, "contexts.usecase.RemoveContext: remove subtask %s: %v", subtaskID, err)
		}
	}
	return nil
}

func mergeKeys(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, k := range append(a, b...) {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
