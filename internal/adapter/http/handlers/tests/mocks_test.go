package tests

import (
	"context"

	"besttodo/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, ownerID string, filter domain.ListTasksFilter) (domain.TaskPage, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(domain.TaskPage), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

type folderServiceMock struct {
	mock.Mock
}

func (m *folderServiceMock) CreateFolder(ctx context.Context, ownerID string, input domain.CreateFolderInput) (domain.Folder, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Folder), args.Error(1)
}

func (m *folderServiceMock) GetFolder(ctx context.Context, ownerID, folderID string) (domain.Folder, error) {
	args := m.Called(ctx, ownerID, folderID)
	return args.Get(0).(domain.Folder), args.Error(1)
}

func (m *folderServiceMock) ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error) {
	args := m.Called(ctx, ownerID)

	var folders []domain.Folder
	if value := args.Get(0); value != nil {
		folders = value.([]domain.Folder)
	}
	return folders, args.Error(1)
}

func (m *folderServiceMock) UpdateFolder(ctx context.Context, ownerID, folderID string, patch domain.FolderPatch) (domain.Folder, error) {
	args := m.Called(ctx, ownerID, folderID, patch)
	return args.Get(0).(domain.Folder), args.Error(1)
}

func (m *folderServiceMock) DeleteFolder(ctx context.Context, ownerID, folderID string) error {
	args := m.Called(ctx, ownerID, folderID)
	return args.Error(0)
}
