package http

import (
	"clickup-context/internal/contexts"
)

// --- Request DTOs ---

type loadReq struct {
	SessionID   string `json:"session_id"   binding:"required"`
	TaskID      string `json:"task_id"      binding:"required"`
	WorkspaceID string `json:"workspace_id" binding:"required"`
}

func (r loadReq) toInput() contexts.LoadTaskContextInput {
	return contexts.LoadTaskContextInput{
		SessionID:   r.SessionID,
		TaskID:      r.TaskID,
		WorkspaceID: r.WorkspaceID,
	}
}

type listReq struct {
	SessionID  string `form:"session_id" binding:"required"`
	WorktreeID string `form:"worktree_id"`
}

func (r listReq) toInput() contexts.ListLoadedContextsInput {
	return contexts.ListLoadedContextsInput{
		SessionID:  r.SessionID,
		WorktreeID: r.WorktreeID,
	}
}

type removeReq struct {
	SessionID string `form:"session_id" binding:"required"`
	TaskID    string `form:"-"`
}

func (r removeReq) toInput() contexts.RemoveContextInput {
	return contexts.RemoveContextInput{
		SessionID: r.SessionID,
		TaskID:    r.TaskID,
	}
}

// --- Response DTOs ---

type listResp struct {
	Contexts []contexts.LoadedContext `json:"contexts"`
}
