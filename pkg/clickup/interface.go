package clickup

import "context"

// IClickUp is the read-only ClickUp API surface used by the rest of the
// service. Implementations are safe for concurrent use.
type IClickUp interface {
	GetAuthorizedUser(ctx context.Context) (*AuthenticatedUser, error)
	ListWorkspaces(ctx context.Context) ([]Workspace, error)
	ListSpaces(ctx context.Context, workspaceID string) ([]Space, error)
	ListFolders(ctx context.Context, spaceID string) ([]Folder, error)
	ListFolderlessLists(ctx context.Context, spaceID string) ([]List, error)
	ListTasks(ctx context.Context, workspaceID string, opts ListTasksOptions) (*TaskListResult, error)
	ListTasksInList(ctx context.Context, listID string, opts ListTasksInListOptions) (*TaskListResult, error)
	SearchTaskByID(ctx context.Context, query, workspaceID string) (*Task, bool, error)
	GetTask(ctx context.Context, taskID string) (*TaskDetail, error)
	GetTaskComments(ctx context.Context, taskID string) ([]Comment, error)
	ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error)
}
