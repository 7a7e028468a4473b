package tasks

// ListTasksInput filters a workspace-wide task listing.
type ListTasksInput struct {
	WorkspaceID   string
	SpaceIDs      []string
	Assignees     []int64
	IncludeClosed bool
	Subtasks      bool
	Page          int
}

// ListTasksInListInput filters a single-list task listing.
type ListTasksInListInput struct {
	ListID        string
	IncludeClosed bool
	Subtasks      bool
	Page          int
}
