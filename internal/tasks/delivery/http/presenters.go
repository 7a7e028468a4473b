package http

import (
	"clickup-context/internal/tasks"
	"clickup-context/pkg/clickup"
)

// --- Request DTOs ---

type listTasksReq struct {
	WorkspaceID   string  `form:"workspace_id" binding:"required"`
	SpaceIDs      []string `form:"space_ids"`
	Assignees     []int64  `form:"assignees"`
	IncludeClosed bool     `form:"include_closed"`
	Subtasks      bool     `form:"subtasks"`
	Page          int      `form:"page"`
}

func (r listTasksReq) toInput() tasks.ListTasksInput {
	page := r.Page
	if page < 0 {
		page = 0
	}
	return tasks.ListTasksInput{
		WorkspaceID:   r.WorkspaceID,
		SpaceIDs:      r.SpaceIDs,
		Assignees:     r.Assignees,
		IncludeClosed: r.IncludeClosed,
		Subtasks:      r.Subtasks,
		Page:          page,
	}
}

type listTasksInListReq struct {
	ListID        string `form:"-"`
	IncludeClosed bool   `form:"include_closed"`
	Subtasks      bool   `form:"subtasks"`
	Page          int    `form:"page"`
}

func (r listTasksInListReq) toInput() tasks.ListTasksInListInput {
	page := r.Page
	if page < 0 {
		page = 0
	}
	return tasks.ListTasksInListInput{
		ListID:        r.ListID,
		IncludeClosed: r.IncludeClosed,
		Subtasks:      r.Subtasks,
		Page:          page,
	}
}

type searchReq struct {
	Query       string `form:"q"            binding:"required"`
	WorkspaceID string `form:"workspace_id" binding:"required"`
}

// --- Response DTOs ---

type taskListResp struct {
	Tasks    []clickup.Task `json:"tasks"`
	LastPage bool           `json:"last_page"`
}

func newTaskListResp(res *clickup.TaskListResult) taskListResp {
	return taskListResp{
		Tasks:    res.Tasks,
		LastPage: res.LastPage,
	}
}

type searchResp struct {
	Found bool          `json:"found"`
	Task  *clickup.Task `json:"task,omitempty"`
}
