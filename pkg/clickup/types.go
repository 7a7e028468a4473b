package clickup

import (
	"encoding/json"
	"strconv"
)

// Status is a task status with its board color.
type Status struct {
	Status string `json:"status"`
	Color  string `json:"color"`
	Type   string `json:"type"` // "open" | "closed" | "custom"
}

// User is a ClickUp member as embedded in tasks and comments.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Initials string `json:"initials,omitempty"`
}

// Task is a task as returned by the list endpoints.
type Task struct {
	ID          string `json:"id"`
	CustomID    string `json:"custom_id,omitempty"`
	Name        string `json:"name"`
	Status      Status `json:"status"`
	DateCreated string `json:"date_created"` // Unix ms as string
	URL         string `json:"url"`
	// Parent is the parent task ID. Empty for top-level tasks; only
	// populated when the listing was requested with subtasks=true.
	Parent    string `json:"parent,omitempty"`
	Assignees []User `json:"assignees,omitempty"`
}

// Comment is a task comment. Comments are immutable and only the first
// page returned by the API is used.
type Comment struct {
	CommentText string `json:"comment_text"`
	User        User   `json:"user"`
	Date        string `json:"date"`
}

// TaskDetail is a task with description, comments and subtasks attached.
// When the API supplies a markdown description it replaces Description at
// fetch time and is not retained separately.
type TaskDetail struct {
	ID          string `json:"id"`
	CustomID    string `json:"custom_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`
	DateCreated string `json:"date_created"`
	URL         string `json:"url"`
	// Comments and Subtasks are populated by callers that join the
	// comment and subtask fetches, not by the detail endpoint itself.
	Comments []Comment `json:"comments,omitempty"`
	Subtasks []Task    `json:"subtasks,omitempty"`
}

// Workspace is what the ClickUp API calls a "team".
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Space is a space within a workspace.
type Space struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Count tolerates the API returning task_count as either a string or a
// number depending on the endpoint. It normalizes to a string, empty when
// the field was null or missing.
type Count string

// UnmarshalJSON implements json.Unmarshaler for Count.
func (c *Count) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Count(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Count(n.String())
	return nil
}

// Int returns the count as an int, 0 when empty or unparsable.
func (c Count) Int() int {
	n, err := strconv.Atoi(string(c))
	if err != nil {
		return 0
	}
	return n
}

// List is a task list within a folder or space.
type List struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount Count  `json:"task_count,omitempty"`
	Archived  bool   `json:"archived,omitempty"`
}

// Folder groups lists within a space.
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount Count  `json:"task_count,omitempty"`
	Lists     []List `json:"lists,omitempty"`
}

// SpaceHierarchy is a space's folders plus its folderless lists.
type SpaceHierarchy struct {
	SpaceID         string   `json:"space_id"`
	Folders         []Folder `json:"folders"`
	FolderlessLists []List   `json:"folderless_lists"`
}

// AuthenticatedUser is the profile from GET /user.
type AuthenticatedUser struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Color          string `json:"color,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	Initials       string `json:"initials,omitempty"`
}

// TaskListResult is a page of tasks plus the last-page marker.
type TaskListResult struct {
	Tasks    []Task `json:"tasks"`
	LastPage bool   `json:"last_page"`
}

// ListTasksOptions filters the workspace-wide task listing.
type ListTasksOptions struct {
	SpaceIDs      []string
	IncludeClosed bool
	Page          int
	Assignees     []int64
	Subtasks      bool
}

// ListTasksInListOptions filters the per-list task listing.
type ListTasksInListOptions struct {
	IncludeClosed bool
	Page          int
	Subtasks      bool
}

// taskDetailResponse is the raw detail payload; markdown_description is
// folded into Description before the value leaves this package.
type taskDetailResponse struct {
	TaskDetail
	MarkdownDescription string `json:"markdown_description,omitempty"`
}
