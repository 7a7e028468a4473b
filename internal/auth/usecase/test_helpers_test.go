package usecase

import (
	"context"
	"errors"
	"net"
	"testing"

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
	exchangeFn func(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error)
	userFn     func(ctx context.Context) (*clickup.AuthenticatedUser, error)
}

func (m *mockClickUp) GetAuthorizedUser(ctx context.Context) (*clickup.AuthenticatedUser, error) {
	if m.userFn != nil {
		return m.userFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) ListWorkspaces(ctx context.Context) ([]clickup.Workspace, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) ListSpaces(ctx context.Context, workspaceID string) ([]clickup.Space, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) ListFolders(ctx context.Context, spaceID string) ([]clickup.Folder, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) ListFolderlessLists(ctx context.Context, spaceID string) ([]clickup.List, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) ListTasks(ctx context.Context, workspaceID string, opts clickup.ListTasksOptions) (*clickup.TaskListResult, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) ListTasksInList(ctx context.Context, listID string, opts clickup.ListTasksInListOptions) (*clickup.TaskListResult, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) SearchTaskByID(ctx context.Context, query, workspaceID string) (*clickup.Task, bool, error) {
	return nil, false, errors.New("not implemented")
}

func (m *mockClickUp) GetTask(ctx context.Context, taskID string) (*clickup.TaskDetail, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) GetTaskComments(ctx context.Context, taskID string) ([]clickup.Comment, error) {
	return nil, errors.New("not implemented")
}

func (m *mockClickUp) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error) {
	if m.exchangeFn != nil {
		return m.exchangeFn(ctx, clientID, clientSecret, code, redirectURI)
	}
	return "", errors.New("not implemented")
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}
