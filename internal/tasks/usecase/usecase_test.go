package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"clickup-context/internal/tasks"
	"clickup-context/pkg/clickup"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...interface{}) {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...interface{}) {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...interface{}) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...interface{}) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...interface{}) {}

type mockClickUp struct {
	foldersFn      func(ctx context.Context, spaceID string) ([]clickup.Folder, error)
	listsFn        func(ctx context.Context, spaceID string) ([]clickup.List, error)
	taskFn         func(ctx context.Context, taskID string) (*clickup.TaskDetail, error)
	commentsFn     func(ctx context.Context, taskID string) ([]clickup.Comment, error)
	searchFn       func(ctx context.Context, query, workspaceID string) (*clickup.Task, bool, error)
	listTasksFn    func(ctx context.Context, workspaceID string, opts clickup.ListTasksOptions) (*clickup.TaskListResult, error)
	foldersCalled  atomic.Int64
	listsCalled    atomic.Int64
}

func (m *mockClickUp) GetAuthorizedUser(ctx context.Context) (*clickup.AuthenticatedUser, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) ListWorkspaces(ctx context.Context) ([]clickup.Workspace, error) {
	return []clickup.Workspace{{ID: "ws1", Name: "Workspace One"}}, nil
}

func (m *mockClickUp) ListSpaces(ctx context.Context, workspaceID string) ([]clickup.Space, error) {
	return []clickup.Space{{ID: "sp1", Name: "Space One"}}, nil
}

func (m *mockClickUp) ListFolders(ctx context.Context, spaceID string) ([]clickup.Folder, error) {
	m.foldersCalled.Add(1)
	if m.foldersFn != nil {
		return m.foldersFn(ctx, spaceID)
	}
	return nil, nil
}

func (m *mockClickUp) ListFolderlessLists(ctx context.Context, spaceID string) ([]clickup.List, error) {
	m.listsCalled.Add(1)
	if m.listsFn != nil {
		return m.listsFn(ctx, spaceID)
	}
	return nil, nil
}

func (m *mockClickUp) ListTasks(ctx context.Context, workspaceID string, opts clickup.ListTasksOptions) (*clickup.TaskListResult, error) {
	if m.listTasksFn != nil {
		return m.listTasksFn(ctx, workspaceID, opts)
	}
	return &clickup.TaskListResult{LastPage: true}, nil
}

func (m *mockClickUp) ListTasksInList(ctx context.Context, listID string, opts clickup.ListTasksInListOptions) (*clickup.TaskListResult, error) {
	return &clickup.TaskListResult{LastPage: true}, nil
}

func (m *mockClickUp) SearchTaskByID(ctx context.Context, query, workspaceID string) (*clickup.Task, bool, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, workspaceID)
	}
	return nil, false, nil
}

func (m *mockClickUp) GetTask(ctx context.Context, taskID string) (*clickup.TaskDetail, error) {
	if m.taskFn != nil {
		return m.taskFn(ctx, taskID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) GetTaskComments(ctx context.Context, taskID string) ([]clickup.Comment, error) {
	if m.commentsFn != nil {
		return m.commentsFn(ctx, taskID)
	}
	return nil, nil
}

func (m *mockClickUp) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error) {
	return "", errors.New("not implemented")
}

func TestGetSpaceHierarchy(t *testing.T) {
	t.Run("MergesFoldersAndLists", func(t *testing.T) {
		client := &mockClickUp{
			foldersFn: func(ctx context.Context, spaceID string) ([]clickup.Folder, error) {
				return []clickup.Folder{{ID: "f1", Name: "Folder"}}, nil
			},
			listsFn: func(ctx context.Context, spaceID string) ([]clickup.List, error) {
				return []clickup.List{{ID: "l1", Name: "Backlog"}}, nil
			},
		}
		uc := New(&mockLogger{}, client, time.Minute)

		h, err := uc.GetSpaceHierarchy(context.Background(), "sp1")
		if err != nil {
			t.Fatalf("GetSpaceHierarchy: %v", err)
		}
		if h.SpaceID != "sp1" || len(h.Folders) != 1 || len(h.FolderlessLists) != 1 {
			t.Errorf("unexpected hierarchy %+v", h)
		}
	})

	t.Run("SecondCallServedFromCache", func(t *testing.T) {
		client := &mockClickUp{}
		uc := New(&mockLogger{}, client, time.Minute)

		for i := 0; i < 3; i++ {
			if _, err := uc.GetSpaceHierarchy(context.Background(), "sp1"); err != nil {
				t.Fatalf("GetSpaceHierarchy: %v", err)
			}
		}
		if got := client.foldersCalled.Load(); got != 1 {
			t.Errorf("expected 1 folder fetch, got %d", got)
		}
		if got := client.listsCalled.Load(); got != 1 {
			t.Errorf("expected 1 list fetch, got %d", got)
		}
	})

	t.Run("FailureIsNotCached", func(t *testing.T) {
		fail := atomic.Bool{}
		fail.Store(true)
		client := &mockClickUp{
			foldersFn: func(ctx context.Context, spaceID string) ([]clickup.Folder, error) {
				if fail.Load() {
					return nil, errors.New("boom")
				}
				return nil, nil
			},
		}
		uc := New(&mockLogger{}, client, time.Minute)

		if _, err := uc.GetSpaceHierarchy(context.Background(), "sp1"); err == nil {
			t.Fatal("expected error")
		}
		fail.Store(false)
		if _, err := uc.GetSpaceHierarchy(context.Background(), "sp1"); err != nil {
			t.Fatalf("expected retry to succeed, got %v", err)
		}
	})
}

func TestGetTask(t *testing.T) {
	t.Run("AttachesComments", func(t *testing.T) {
		client := &mockClickUp{
			taskFn: func(ctx context.Context, taskID string) (*clickup.TaskDetail, error) {
				return &clickup.TaskDetail{ID: taskID, Name: "Fix login"}, nil
			},
			commentsFn: func(ctx context.Context, taskID string) ([]clickup.Comment, error) {
				return []clickup.Comment{{CommentText: "looking into it"}}, nil
			},
		}
		uc := New(&mockLogger{}, client, time.Minute)

		d, err := uc.GetTask(context.Background(), "t1")
		if err != nil {
			t.Fatalf("GetTask: %v", err)
		}
		if d.ID != "t1" || len(d.Comments) != 1 {
			t.Errorf("unexpected detail %+v", d)
		}
	})

	t.Run("CommentFailureAborts", func(t *testing.T) {
		client := &mockClickUp{
			taskFn: func(ctx context.Context, taskID string) (*clickup.TaskDetail, error) {
				return &clickup.TaskDetail{}, nil
			},
			commentsFn: func(ctx context.Context, taskID string) ([]clickup.Comment, error) {
				return nil, errors.New("comments unavailable")
			},
		}
		uc := New(&mockLogger{}, client, time.Minute)

		if _, err := uc.GetTask(context.Background(), "t1"); err == nil {
			t.Fatal("expected error when comments fail")
		}
	})
}

func TestListTasksMapsOptions(t *testing.T) {
	client := &mockClickUp{
		listTasksFn: func(ctx context.Context, workspaceID string, opts clickup.ListTasksOptions) (*clickup.TaskListResult, error) {
			if workspaceID != "ws1" {
				t.Errorf("unexpected workspace %s", workspaceID)
			}
			if !opts.IncludeClosed || !opts.Subtasks || opts.Page != 2 {
				t.Errorf("options not mapped: %+v", opts)
			}
			if len(opts.SpaceIDs) != 1 || opts.SpaceIDs[0] != "sp1" {
				t.Errorf("space filter not mapped: %+v", opts.SpaceIDs)
			}
			return &clickup.TaskListResult{LastPage: true}, nil
		},
	}
	uc := New(&mockLogger{}, client, time.Minute)

	_, err := uc.ListTasks(context.Background(), tasks.ListTasksInput{
		WorkspaceID:   "ws1",
		SpaceIDs:      []string{"sp1"},
		IncludeClosed: true,
		Subtasks:      true,
		Page:          2,
	})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
}

func TestSearchTaskByID(t *testing.T) {
	client := &mockClickUp{
		searchFn: func(ctx context.Context, query, workspaceID string) (*clickup.Task, bool, error) {
			if query == "t1" {
				return &clickup.Task{ID: "t1"}, true, nil
			}
			return nil, false, nil
		},
	}
	uc := New(&mockLogger{}, client, time.Minute)

	task, found, err := uc.SearchTaskByID(context.Background(), "t1", "ws1")
	if err != nil || !found || task.ID != "t1" {
		t.Fatalf("unexpected result task=%+v found=%v err=%v", task, found, err)
	}

	task, found, err = uc.SearchTaskByID(context.Background(), "missing", "ws1")
	if err != nil || found || task != nil {
		t.Fatalf("expected clean miss, got task=%+v found=%v err=%v", task, found, err)
	}
}
