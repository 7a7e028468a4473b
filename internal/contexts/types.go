package contexts

// LoadedContext is a denormalized task summary. On load the counts are
// live; on list they are reconstructed from the markdown file, and
// WorkspaceID is empty because the file does not record it.
type LoadedContext struct {
	TaskID       string `json:"task_id"`
	CustomID     string `json:"custom_id,omitempty"`
	Name         string `json:"name"`
	CommentCount int    `json:"comment_count"`
	SubtaskCount int    `json:"subtask_count"`
	WorkspaceID  string `json:"workspace_id,omitempty"`
}

type LoadTaskContextInput struct {
	SessionID   string
	TaskID      string
	WorkspaceID string
}

type ListLoadedContextsInput struct {
	SessionID string
	// WorktreeID is a legacy owner: references were historically recorded
	// under a worktree identifier rather than a session identifier.
	WorktreeID string
}

type RemoveContextInput struct {
	SessionID string
	TaskID    string
}
