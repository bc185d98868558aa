package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/apperr"
	"taskboard/internal/domain"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Tasks.List(c.Request.Context())
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to fetch tasks", err))
		return
	}

	views := make([]domain.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, t.View())
	}
	c.JSON(http.StatusOK, views)
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
	AssigneeID  int64  `json:"assignee_id"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.fail(c, apperr.New(apperr.Unauthorized, "user not found"))
		return
	}

	var req CreateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "bad request", err))
		return
	}
	if req.Title == "" || req.Description == "" || req.Deadline == "" || req.AssigneeID == 0 {
		h.fail(c, apperr.New(apperr.Validation, "missing required fields"))
		return
	}

	status := req.Status
	if status == "" {
		status = domain.StatusTodo
	}
	if !domain.ValidStatus(status) {
		h.fail(c, apperr.New(apperr.Validation, "invalid status"))
		return
	}

	deadline, err := time.Parse(domain.DeadlineFormat, req.Deadline)
	if err != nil {
		h.fail(c, apperr.New(apperr.Validation, "invalid date format, use YYYY-MM-DD"))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Users.GetByID(ctx, req.AssigneeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, apperr.New(apperr.NotFound, "assignee not found"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to create task", err))
		return
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Deadline:    deadline,
		AssigneeID:  req.AssigneeID,
		CreatedBy:   userID,
	}
	if err := h.Tasks.Create(ctx, task); err != nil {
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to create task", err))
		return
	}

	// re-read for the assignee name join
	created, err := h.Tasks.GetByID(ctx, task.ID)
	if err != nil {
		c.JSON(http.StatusCreated, task.View())
		return
	}
	c.JSON(http.StatusCreated, created.View())
}

func (h *Handler) GetTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, apperr.New(apperr.Validation, "invalid task id"))
		return
	}

	task, err := h.Tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, apperr.New(apperr.NotFound, "task not found"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to fetch task", err))
		return
	}

	c.JSON(http.StatusOK, task.View())
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Deadline    *string `json:"deadline"`
	AssigneeID  *int64  `json:"assignee_id"`
}

// UpdateTask applies a partial update: absent fields keep their stored values.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, apperr.New(apperr.Validation, "invalid task id"))
		return
	}

	var req UpdateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "bad request", err))
		return
	}

	ctx := c.Request.Context()
	task, err := h.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, apperr.New(apperr.NotFound, "task not found"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to update task", err))
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !domain.ValidStatus(*req.Status) {
			h.fail(c, apperr.New(apperr.Validation, "invalid status"))
			return
		}
		task.Status = *req.Status
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(domain.DeadlineFormat, *req.Deadline)
		if err != nil {
			h.fail(c, apperr.New(apperr.Validation, "invalid date format, use YYYY-MM-DD"))
			return
		}
		task.Deadline = deadline
	}
	if req.AssigneeID != nil {
		assignee, err := h.Users.GetByID(ctx, *req.AssigneeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				h.fail(c, apperr.New(apperr.NotFound, "assignee not found"))
				return
			}
			h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to update task", err))
			return
		}
		task.AssigneeID = assignee.ID
		task.AssigneeName = assignee.Name
	}

	if err := h.Tasks.Update(ctx, task); err != nil {
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to update task", err))
		return
	}

	c.JSON(http.StatusOK, task.View())
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, apperr.New(apperr.Validation, "invalid task id"))
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, apperr.New(apperr.NotFound, "task not found"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to delete task", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

func (h *Handler) TaskStats(c *gin.Context) {
	stats, err := h.Tasks.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to get task stats", err))
		return
	}
	c.JSON(http.StatusOK, stats)
}
