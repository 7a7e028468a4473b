package usecase

import (
	"fmt"
	"strings"

	"clickup-context/internal/contexts"
	"clickup-context/pkg/clickup"
)

const (
	refKeyPrefix      = "clickup-"
	taskFilePrefix    = "clickup-task-"
	subtaskFilePrefix = "clickup-subtask-"

	noDescription = "*No description provided.*"
)

func refKey(taskID string) string {
	return refKeyPrefix + taskID
}

func taskFileName(taskID string) string {
	return taskFilePrefix + taskID + ".md"
}

func subtaskFileName(taskID string) string {
	return subtaskFilePrefix + taskID + ".md"
}

// renderTaskMarkdown produces the parent context file. The format is a
// durable contract: files are parsed back by parseContextMarkdown, so
// the heading line, the "### @" comment sub-headings and the subtask
// file references are all load-bearing.
func renderTaskMarkdown(t *clickup.TaskDetail, subtasks []*clickup.TaskDetail) string {
	var b strings.Builder

	writeHeading(&b, t)
	b.WriteString("---\n\n")
	writeDescription(&b, t.Description)

	if len(subtasks) > 0 {
		b.WriteString("## Subtasks\n\n")
		for _, st := range subtasks {
			fmt.Fprintf(&b, "- %s (%s): see %s\n", st.Name, st.Status.Status, subtaskFileName(st.ID))
		}
		b.WriteString("\n")
	}

	writeComments(&b, t.Comments)

	b.WriteString("---\n\n")
	b.WriteString("*Investigate this task and propose a solution.*\n")
	return b.String()
}

// renderSubtaskMarkdown mirrors the parent format but points back at the
// parent directly under the heading and in the trailing line.
func renderSubtaskMarkdown(t *clickup.TaskDetail, parentName, parentID string) string {
	var b strings.Builder

	writeHeading(&b, t)
	fmt.Fprintf(&b, "**Parent:** %s (%s)\n\n", parentName, taskFileName(parentID))
	b.WriteString("---\n\n")
	writeDescription(&b, t.Description)
	writeComments(&b, t.Comments)

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*This is a subtask of task %s.*\n", parentID)
	return b.String()
}

func writeHeading(b *strings.Builder, t *clickup.TaskDetail) {
	if t.CustomID != "" {
		fmt.Fprintf(b, "# ClickUp Task %s: %s\n\n", t.CustomID, t.Name)
		return
	}
	fmt.Fprintf(b, "# ClickUp Task %s\n\n", t.Name)
}

func writeDescription(b *strings.Builder, desc string) {
	b.WriteString("## Description\n\n")
	if desc == "" {
		b.WriteString(noDescription)
	} else {
		b.WriteString(desc)
	}
	b.WriteString("\n\n")
}

func writeComments(b *strings.Builder, comments []clickup.Comment) {
	if len(comments) == 0 {
		return
	}
	b.WriteString("## Comments\n\n")
	for _, c := range comments {
		fmt.Fprintf(b, "### @%s (%s)\n\n", c.User.Username, c.Date)
		b.WriteString(c.CommentText)
		b.WriteString("\n\n---\n\n")
	}
}

// parseContextMarkdown reconstructs a summary from a context file. The
// custom ID is recognized by splitting the heading on the first ": "
// whose left side is entirely uppercase letters, digits or hyphens.
func parseContextMarkdown(taskID, content string) contexts.LoadedContext {
	lc := contexts.LoadedContext{TaskID: taskID}

	firstLine, _, _ := strings.Cut(content, "\n")
	title := strings.TrimPrefix(firstLine, "# ClickUp Task ")
	if left, right, ok := strings.Cut(title, ": "); ok && isCustomID(left) {
		lc.CustomID = left
		lc.Name = right
	} else {
		lc.Name = title
	}

	lc.CommentCount = strings.Count(content, "### @")
	lc.SubtaskCount = strings.Count(content, subtaskFilePrefix)
	return lc
}

func isCustomID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
