package tasks

import (
	"context"

	"clickup-context/pkg/clickup"
)

type UseCase interface {
	// ListWorkspaces returns the workspaces the token can see.
	ListWorkspaces(ctx context.Context) ([]clickup.Workspace, error)

	// ListSpaces returns the spaces inside a workspace.
	ListSpaces(ctx context.Context, workspaceID string) ([]clickup.Space, error)

	// GetSpaceHierarchy returns a space's folders and folderless lists.
	// Results are cached briefly so repeated tree expansions stay cheap.
	GetSpaceHierarchy(ctx context.Context, spaceID string) (*clickup.SpaceHierarchy, error)

	// ListTasks returns one page of tasks across a workspace.
	ListTasks(ctx context.Context, ip ListTasksInput) (*clickup.TaskListResult, error)

	// ListTasksInList returns one page of tasks in a single list.
	ListTasksInList(ctx context.Context, ip ListTasksInListInput) (*clickup.TaskListResult, error)

	// SearchTaskByID looks a task up by internal or custom ID. A miss is
	// (nil, false, nil), not an error.
	SearchTaskByID(ctx context.Context, query, workspaceID string) (*clickup.Task, bool, error)

	// GetTask returns full task detail with comments attached.
	GetTask(ctx context.Context, taskID string) (*clickup.TaskDetail, error)
}
