package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `t.id, t.title, t.description, t.status, t.deadline,
	t.assignee_id, COALESCE(u.name, ''), t.created_by, t.created_at, t.updated_at`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Deadline,
		&t.AssigneeID, &t.AssigneeName, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t
		 LEFT JOIN users u ON u.id = t.assignee_id
		 ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return scanTask(r.db.QueryRow(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t
		 LEFT JOIN users u ON u.id = t.assignee_id
		 WHERE t.id = $1`, id))
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, status, deadline, assignee_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		t.Title, t.Description, t.Status, t.Deadline, t.AssigneeID, t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update persists all mutable fields. Callers load the task first and apply
// partial changes, so missing request fields keep their stored values.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, status = $3, deadline = $4, assignee_id = $5, updated_at = now()
		 WHERE id = $6
		 RETURNING updated_at`,
		t.Title, t.Description, t.Status, t.Deadline, t.AssigneeID, t.ID,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats computes aggregate task counts in a single query. Overdue means the
// deadline has passed and the task is not Done.
func (r *TaskRepository) Stats(ctx context.Context) (domain.TaskStats, error) {
	var s domain.TaskStats
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'Done'),
		        COUNT(*) FILTER (WHERE status = 'In Progress'),
		        COUNT(*) FILTER (WHERE status = 'Todo'),
		        COUNT(*) FILTER (WHERE deadline < CURRENT_DATE AND status <> 'Done')
		 FROM tasks`,
	).Scan(&s.TotalTasks, &s.CompletedTasks, &s.InProgressTasks, &s.TodoTasks, &s.OverdueTasks)
	return s, err
}
