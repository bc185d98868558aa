package domain

import "time"

// Task statuses. Persisted as-is, so the strings match what clients send.
const (
	StatusTodo       = "Todo"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// ValidStatus reports whether s is one of the three task statuses.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

// DeadlineFormat is the calendar-date layout used on the wire and in the DB.
const DeadlineFormat = "2006-01-02"

type Task struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Status       string    `db:"status"`
	Deadline     time.Time `db:"deadline"`
	AssigneeID   int64     `db:"assignee_id"`
	AssigneeName string    `db:"assignee_name"`
	CreatedBy    int64     `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// TaskView is the JSON shape returned to clients and accepted back in the
// chat endpoint's optional tasks payload.
type TaskView struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	Deadline     string `json:"deadline"`
	AssigneeID   int64  `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
	CreatedBy    int64  `json:"created_by"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (t *Task) View() TaskView {
	return TaskView{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Deadline:     t.Deadline.Format(DeadlineFormat),
		AssigneeID:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// TaskStats are aggregate counts over the whole task table.
type TaskStats struct {
	TotalTasks      int64 `json:"total_tasks"`
	CompletedTasks  int64 `json:"completed_tasks"`
	InProgressTasks int64 `json:"in_progress_tasks"`
	TodoTasks       int64 `json:"todo_tasks"`
	OverdueTasks    int64 `json:"overdue_tasks"`
}
