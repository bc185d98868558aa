package assistant

import (
	"strings"
	"testing"
	"time"

	"taskboard/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DeadlineFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildTaskContextCounts(t *testing.T) {
	today := date("2024-06-01")
	tasks := []domain.TaskView{
		{Title: "a", Status: domain.StatusDone, AssigneeName: "Admin User", Deadline: "2024-01-01"},
		{Title: "b", Status: domain.StatusInProgress, AssigneeName: "John Doe", Deadline: "2024-05-31"},
		{Title: "c", Status: domain.StatusTodo, AssigneeName: "Jane Smith", Deadline: "2024-06-01"},
		{Title: "d", Status: domain.StatusTodo, AssigneeName: "Jane Smith", Deadline: "2024-07-01"},
	}

	sum, lines, err := BuildTaskContext(tasks, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.TotalTasks != 4 {
		t.Errorf("total = %d, want 4", sum.TotalTasks)
	}
	if got := sum.CompletedTasks + sum.InProgressTasks + sum.TodoTasks; got != sum.TotalTasks {
		t.Errorf("status counts sum to %d, want %d", got, sum.TotalTasks)
	}
	if sum.CompletedTasks != 1 || sum.InProgressTasks != 1 || sum.TodoTasks != 2 {
		t.Errorf("counts = %+v", sum)
	}
	// "a" is past-deadline but Done, "b" is overdue, "c" is due today
	if sum.OverdueTasks != 1 {
		t.Errorf("overdue = %d, want 1", sum.OverdueTasks)
	}
	if sum.DueToday != 1 {
		t.Errorf("due today = %d, want 1", sum.DueToday)
	}
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
}

func TestBuildTaskContextMarkers(t *testing.T) {
	today := date("2024-06-01")

	cases := []struct {
		name     string
		task     domain.TaskView
		suffix   string
		excluded []string
	}{
		{
			name:   "overdue todo",
			task:   domain.TaskView{Title: "x", Status: domain.StatusTodo, AssigneeName: "a", Deadline: "2024-01-01"},
			suffix: "- OVERDUE)",
		},
		{
			name:     "done past deadline is not overdue",
			task:     domain.TaskView{Title: "x", Status: domain.StatusDone, AssigneeName: "a", Deadline: "2024-01-01"},
			excluded: []string{"OVERDUE", "DUE TODAY"},
		},
		{
			name:   "due today regardless of status",
			task:   domain.TaskView{Title: "x", Status: domain.StatusDone, AssigneeName: "a", Deadline: "2024-06-01"},
			suffix: "- DUE TODAY)",
		},
		{
			name:     "future task has no marker",
			task:     domain.TaskView{Title: "x", Status: domain.StatusTodo, AssigneeName: "a", Deadline: "2024-12-01"},
			excluded: []string{"OVERDUE", "DUE TODAY"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, lines, err := BuildTaskContext([]domain.TaskView{tc.task}, today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			line := lines[0]
			if tc.suffix != "" && !strings.HasSuffix(line, tc.suffix) {
				t.Errorf("line %q does not end with %q", line, tc.suffix)
			}
			for _, ex := range tc.excluded {
				if strings.Contains(line, ex) {
					t.Errorf("line %q contains %q", line, ex)
				}
			}
		})
	}
}

func TestBuildTaskContextLineFormat(t *testing.T) {
	_, lines, err := BuildTaskContext([]domain.TaskView{
		{Title: "Ship release", Status: domain.StatusInProgress, AssigneeName: "John Doe", Deadline: "2024-06-05"},
	}, date("2024-06-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "- Ship release (Status: In Progress, Assignee: John Doe, Deadline: 2024-06-05)"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestBuildTaskContextEmpty(t *testing.T) {
	sum, lines, err := BuildTaskContext(nil, date("2024-06-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("summary = %+v, want all zeros", sum)
	}
	if got := TaskListing(lines); got != NoTasksText {
		t.Errorf("listing = %q, want %q", got, NoTasksText)
	}
}

func TestBuildTaskContextBadDeadline(t *testing.T) {
	_, _, err := BuildTaskContext([]domain.TaskView{
		{Title: "ok", Status: domain.StatusTodo, AssigneeName: "a", Deadline: "2024-06-05"},
		{Title: "broken", Status: domain.StatusTodo, AssigneeName: "a", Deadline: "05/06/2024"},
	}, date("2024-06-01"))
	if err == nil {
		t.Fatal("expected error for unparseable deadline, got nil")
	}
}
