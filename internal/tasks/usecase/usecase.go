package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"clickup-context/internal/tasks"
	"clickup-context/pkg/clickup"
)

func (uc *implUseCase) ListWorkspaces(ctx context.Context) ([]clickup.Workspace, error) {
	ws, err := uc.client.ListWorkspaces(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "tasks.usecase.ListWorkspaces: %v", err)
		return nil, err
	}
	return ws, nil
}

func (uc *implUseCase) ListSpaces(ctx context.Context, workspaceID string) ([]clickup.Space, error) {
	sps, err := uc.client.ListSpaces(ctx, workspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "tasks.usecase.ListSpaces: %v", err)
		return nil, err
	}
	return sps, nil
}

// GetSpaceHierarchy fetches folders and folderless lists concurrently.
// The merged result is cached per space so expanding the same space
// twice in a row does not refetch.
func (uc *implUseCase) GetSpaceHierarchy(ctx context.Context, spaceID string) (*clickup.SpaceHierarchy, error) {
	if h, ok := uc.hierarchyCache.Get(spaceID); ok {
		return h, nil
	}

	var (
		folders []clickup.Folder
		lists   []clickup.List
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		folders, err = uc.client.ListFolders(gctx, spaceID)
		return err
	})
	g.Go(func() error {
		var err error
		lists, err = uc.client.ListFolderlessLists(gctx, spaceID)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "tasks.usecase.GetSpaceHierarchy: %v", err)
		return nil, err
	}

	h := &clickup.SpaceHierarchy{
		SpaceID:         spaceID,
		Folders:         folders,
		FolderlessLists: lists,
	}
	uc.hierarchyCache.Add(spaceID, h)
	return h, nil
}

func (uc *implUseCase) ListTasks(ctx context.Context, ip tasks.ListTasksInput) (*clickup.TaskListResult, error) {
	res, err := uc.client.ListTasks(ctx, ip.WorkspaceID, clickup.ListTasksOptions{
		SpaceIDs:      ip.SpaceIDs,
		Assignees:     ip.Assignees,
		IncludeClosed: ip.IncludeClosed,
		Subtasks:      ip.Subtasks,
		Page:          ip.Page,
	})
	if err != nil {
		uc.l.Errorf(ctx, "tasks.usecase.ListTasks: %v", err)
		return nil, err
	}
	return res, nil
}

func (uc *implUseCase) ListTasksInList(ctx context.Context, ip tasks.ListTasksInListInput) (*clickup.TaskListResult, error) {
	res, err := uc.client.ListTasksInList(ctx, ip.ListID, clickup.ListTasksInListOptions{
		IncludeClosed: ip.IncludeClosed,
		Subtasks:      ip.Subtasks,
		Page:          ip.Page,
	})
	if err != nil {
		uc.l.Errorf(ctx, "tasks.usecase.ListTasksInList: %v", err)
		return nil, err
	}
	return res, nil
}

func (uc *implUseCase) SearchTaskByID(ctx context.Context, query, workspaceID string) (*clickup.Task, bool, error) {
	t, found, err := uc.client.SearchTaskByID(ctx, query, workspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "tasks.usecase.SearchTaskByID: %v", err)
		return nil, false, err
	}
	return t, found, nil
}

// GetTask joins task detail and comments concurrently and attaches the
// comments to the detail.
func (uc *implUseCase) GetTask(ctx context.Context, taskID string) (*clickup.TaskDetail, error) {
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
		uc.l.Errorf(ctx, "tasks.usecase.GetTask: %v", err)
		return nil, err
	}

	detail.Comments = comments
	return detail, nil
}
