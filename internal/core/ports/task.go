package ports

import (
	"context"

	"besttodo/internal/core/domain"
)

type TaskRepository interface {
	// CreateTask inserts task unless a row with the same key exists (domain.ErrDuplicateID).
	CreateTask(ctx context.Context, task domain.Task) error
	GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	ListTasks(ctx context.Context, ownerID string, filter domain.ListTasksFilter) (domain.TaskPage, error)
	// UpdateTask applies patch to an existing row and returns the stored result.
	UpdateTask(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}

type TaskService interface {
	CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	ListTasks(ctx context.Context, ownerID string, filter domain.ListTasksFilter) (domain.TaskPage, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}
