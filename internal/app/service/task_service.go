package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"besttodo/internal/core/domain"
	"besttodo/internal/core/ports"
)

type TaskService struct {
	taskRepository   ports.TaskRepository
	folderRepository ports.FolderRepository
	opts             options
}

func NewTaskService(taskRepository ports.TaskRepository, folderRepository ports.FolderRepository, opts ...Option) *TaskService {
	return &TaskService{
		taskRepository:   taskRepository,
		folderRepository: folderRepository,
		opts:             buildOptions(opts),
	}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	if ownerID == "" {
		return domain.Task{}, domain.ErrUnauthenticated
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrTitleRequired
	}

	status := input.Status
	if !status.Valid() {
		status = domain.TaskStatusTodo
	}

	folderID := normalizeFolderRef(input.FolderID)
	if err := s.assertFolderExists(ctx, ownerID, folderID); err != nil {
		return domain.Task{}, err
	}

	now := s.opts.timestamp()
	position := s.opts.defaultPosition(now)
	if input.Position != nil {
		position = *input.Position
	}

	task := domain.Task{
		OwnerID:     ownerID,
		ID:          s.opts.newID(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		DueDate:     input.DueDate,
		ReminderAt:  input.ReminderAt,
		Priority:    input.Priority,
		FolderID:    folderID,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepository.CreateTask(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	if ownerID == "" {
		return domain.Task{}, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(taskID) == "" {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return s.taskRepository.GetTask(ctx, ownerID, taskID)
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string, filter domain.ListTasksFilter) (domain.TaskPage, error) {
	if ownerID == "" {
		return domain.TaskPage{}, domain.ErrUnauthenticated
	}

	filter.Limit = domain.PageSize(filter.Limit)
	if filter.Status != nil && !filter.Status.Valid() {
		// Nothing can match an unknown status.
		return domain.TaskPage{Items: []domain.Task{}}, nil
	}
	if filter.FolderSet {
		filter.FolderID = normalizeFolderRef(filter.FolderID)
	}

	return s.taskRepository.ListTasks(ctx, ownerID, filter)
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	if ownerID == "" {
		return domain.Task{}, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(taskID) == "" {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domain.Task{}, domain.ErrTitleRequired
		}
		patch.Title = &title
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}
	if patch.Status != nil && !patch.Status.Valid() {
		patch.Status = nil
	}
	if patch.IsEmpty() {
		return domain.Task{}, domain.ErrNoUpdateFields
	}

	if patch.FolderIDSet {
		patch.FolderID = normalizeFolderRef(patch.FolderID)
		if err := s.assertFolderExists(ctx, ownerID, patch.FolderID); err != nil {
			return domain.Task{}, err
		}
	}

	patch.UpdatedAt = s.opts.timestamp()
	return s.taskRepository.UpdateTask(ctx, ownerID, taskID, patch)
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	if ownerID == "" {
		return domain.ErrUnauthenticated
	}
	if strings.TrimSpace(taskID) == "" {
		return domain.ErrTaskNotFound
	}
	return s.taskRepository.DeleteTask(ctx, ownerID, taskID)
}

// assertFolderExists accepts the inbox (nil) unconditionally.
func (s *TaskService) assertFolderExists(ctx context.Context, ownerID string, folderID *string) error {
	if folderID == nil {
		return nil
	}
	if _, err := s.folderRepository.GetFolder(ctx, ownerID, *folderID); err != nil {
		if errors.Is(err, domain.ErrFolderNotFound) {
			return domain.ErrFolderNotFound
		}
		return fmt.Errorf("check folder %q: %w", *folderID, err)
	}
	return nil
}

func normalizeFolderRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	return domain.FolderRef(*ref)
}

var _ ports.TaskService = (*TaskService)(nil)
