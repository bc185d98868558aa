// Package assistant holds the conversational assistant subsystem: task
// context aggregation, prompt assembly, the in-memory conversation store and
// response sanitizing.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"taskboard/internal/domain"
)

// Summary holds aggregate task counts computed fresh per chat request.
type Summary struct {
	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	TodoTasks       int `json:"todo_tasks"`
	OverdueTasks    int `json:"overdue_tasks"`
	DueToday        int `json:"due_today"`
}

// NoTasksText is used in the prompt when the task list is empty.
const NoTasksText = "No tasks available"

// BuildTaskContext computes a Summary and one formatted line per task,
// annotated with OVERDUE or DUE TODAY markers relative to today. A deadline
// that does not parse as YYYY-MM-DD fails the whole build: the chat request
// must not proceed with a partial picture of the task list.
func BuildTaskContext(tasks []domain.TaskView, today time.Time) (Summary, []string, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var sum Summary
	sum.TotalTasks = len(tasks)

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		deadline, err := time.Parse(domain.DeadlineFormat, t.Deadline)
		if err != nil {
			return Summary{}, nil, fmt.Errorf("task %q: invalid deadline %q: %w", t.Title, t.Deadline, err)
		}

		switch t.Status {
		case domain.StatusDone:
			sum.CompletedTasks++
		case domain.StatusInProgress:
			sum.InProgressTasks++
		case domain.StatusTodo:
			sum.TodoTasks++
		}

		overdue := deadline.Before(day) && t.Status != domain.StatusDone
		dueToday := deadline.Equal(day)
		if overdue {
			sum.OverdueTasks++
		}
		if dueToday {
			sum.DueToday++
		}

		line := fmt.Sprintf("- %s (Status: %s, Assignee: %s, Deadline: %s", t.Title, t.Status, t.AssigneeName, t.Deadline)
		if overdue {
			line += " - OVERDUE"
		} else if dueToday {
			line += " - DUE TODAY"
		}
		line += ")"
		lines = append(lines, line)
	}

	return sum, lines, nil
}

// TaskListing joins formatted task lines for prompt interpolation, falling
// back to the no-tasks sentinel for an empty list.
func TaskListing(lines []string) string {
	if len(lines) == 0 {
		return NoTasksText
	}
	return strings.Join(lines, "\n")
}
