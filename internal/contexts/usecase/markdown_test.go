package usecase

import (
	"strings"
	"testing"

	"clickup-context/pkg/clickup"
)

func TestRenderTaskMarkdown(t *testing.T) {
	t.Run("CustomIDAndEmptyDescription", func(t *testing.T) {
		detail := &clickup.TaskDetail{
			ID:       "t1",
			CustomID: "PROJ-42",
			Name:     "Fix bug",
		}
		out := renderTaskMarkdown(detail, nil)

		if !strings.HasPrefix(out, "# ClickUp Task PROJ-42: Fix bug\n\n") {
			t.Errorf("unexpected heading: %q", strings.SplitN(out, "\n", 2)[0])
		}
		if !strings.Contains(out, "*No description provided.*") {
			t.Error("missing empty-description placeholder")
		}
		if !strings.HasSuffix(out, "*Investigate this task and propose a solution.*\n") {
			t.Error("missing trailing call to action")
		}
	})

	t.Run("OmitsEmptySections", func(t *testing.T) {
		out := renderTaskMarkdown(&clickup.TaskDetail{ID: "t1", Name: "Solo"}, nil)
		if strings.Contains(out, "## Subtasks") {
			t.Error("empty subtask section must be omitted")
		}
		if strings.Contains(out, "## Comments") {
			t.Error("empty comment section must be omitted")
		}
	})

	t.Run("SubtaskBullets", func(t *testing.T) {
		subs := []*clickup.TaskDetail{
			{ID: "s1", Name: "Part one", Status: clickup.Status{Status: "in progress"}},
			{ID: "s2", Name: "Part two", Status: clickup.Status{Status: "open"}},
		}
		out := renderTaskMarkdown(&clickup.TaskDetail{ID: "t1", Name: "Parent"}, subs)

		if !strings.Contains(out, "- Part one (in progress): see clickup-subtask-s1.md\n") {
			t.Errorf("missing subtask bullet in:\n%s", out)
		}
		if got := strings.Count(out, "clickup-subtask-"); got != 2 {
			t.Errorf("expected 2 subtask references, got %d", got)
		}
	})
}

func TestRenderSubtaskMarkdown(t *testing.T) {
	detail := &clickup.TaskDetail{ID: "s1", Name: "Part one"}
	out := renderSubtaskMarkdown(detail, "Parent task", "t1")

	if !strings.Contains(out, "**Parent:** Parent task (clickup-task-t1.md)\n\n") {
		t.Errorf("missing parent line in:\n%s", out)
	}
	if !strings.HasSuffix(out, "*This is a subtask of task t1.*\n") {
		t.Error("missing subtask trailing line")
	}
	if strings.Contains(out, "*Investigate this task") {
		t.Error("subtask must not carry the parent call to action")
	}
}

func TestParseContextMarkdown(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		detail := &clickup.TaskDetail{
			ID:          "t1",
			CustomID:    "OPS-7",
			Name:        "Rotate credentials",
			Description: "All service accounts.",
			Comments: []clickup.Comment{
				{CommentText: "started", User: clickup.User{Username: "ana"}, Date: "1700000000000"},
				{CommentText: "done", User: clickup.User{Username: "bo"}, Date: "1700000100000"},
			},
		}
		subs := []*clickup.TaskDetail{{ID: "s1", Name: "Rotate DB"}}

		lc := parseContextMarkdown("t1", renderTaskMarkdown(detail, subs))
		if lc.CustomID != "OPS-7" {
			t.Errorf("custom ID: got %q", lc.CustomID)
		}
		if lc.Name != "Rotate credentials" {
			t.Errorf("name: got %q", lc.Name)
		}
		if lc.CommentCount != 2 {
			t.Errorf("comment count: got %d", lc.CommentCount)
		}
		if lc.SubtaskCount != 1 {
			t.Errorf("subtask count: got %d", lc.SubtaskCount)
		}
	})

	t.Run("NoCustomID", func(t *testing.T) {
		lc := parseContextMarkdown("t1", renderTaskMarkdown(&clickup.TaskDetail{ID: "t1", Name: "Plain task"}, nil))
		if lc.CustomID != "" || lc.Name != "Plain task" {
			t.Errorf("got custom=%q name=%q", lc.CustomID, lc.Name)
		}
	})

	t.Run("ColonInNameIsNotACustomID", func(t *testing.T) {
		lc := parseContextMarkdown("t1", renderTaskMarkdown(&clickup.TaskDetail{ID: "t1", Name: "deploy: staging first"}, nil))
		if lc.CustomID != "" {
			t.Errorf("lowercase prefix must not parse as custom ID, got %q", lc.CustomID)
		}
		if lc.Name != "deploy: staging first" {
			t.Errorf("name: got %q", lc.Name)
		}
	})
}
