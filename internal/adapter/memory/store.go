package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"besttodo/internal/core/domain"
	"besttodo/internal/core/ports"
)

type key struct {
	ownerID string
	id      string
}

// Store keeps tasks and folders in process memory. It honours the same
// conditional-write contract as the SQL store.
type Store struct {
	mu      sync.RWMutex
	tasks   map[key]domain.Task
	folders map[key]domain.Folder
}

func NewStore() *Store {
	return &Store{
		tasks:   make(map[key]domain.Task),
		folders: make(map[key]domain.Folder),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) CreateTask(ctx context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{task.OwnerID, task.ID}
	if _, exists := s.tasks[k]; exists {
		return domain.ErrDuplicateID
	}
	s.tasks[k] = cloneTask(task)
	return nil
}

func (s *Store) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[key{ownerID, taskID}]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (s *Store) ListTasks(ctx context.Context, ownerID string, filter domain.ListTasksFilter) (domain.TaskPage, error) {
	s.mu.RLock()
	matched := make([]domain.Task, 0)
	for k, task := range s.tasks {
		if k.ownerID != ownerID || !matchesFilter(task, filter) {
			continue
		}
		matched = append(matched, cloneTask(task))
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return newerThan(matched[i], matched[j].CreatedAt, matched[j].ID)
	})

	limit := domain.PageSize(filter.Limit)
	page := domain.TaskPage{Items: matched}
	if len(matched) > limit {
		page.Items = matched[:limit]
		last := page.Items[limit-1]
		page.Next = &domain.TaskCursor{CreatedAt: last.CreatedAt, TaskID: last.ID}
	}
	return page, nil
}

func (s *Store) UpdateTask(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{ownerID, taskID}
	task, ok := s.tasks[k]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	task = patch.Apply(task)
	s.tasks[k] = cloneTask(task)
	return cloneTask(task), nil
}

func (s *Store) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{ownerID, taskID}
	if _, ok := s.tasks[k]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(s.tasks, k)
	return nil
}

func (s *Store) CreateFolder(ctx context.Context, folder domain.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{folder.OwnerID, folder.ID}
	if _, exists := s.folders[k]; exists {
		return domain.ErrDuplicateID
	}
	s.folders[k] = folder
	return nil
}

func (s *Store) GetFolder(ctx context.Context, ownerID, folderID string) (domain.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folder, ok := s.folders[key{ownerID, folderID}]
	if !ok {
		return domain.Folder{}, domain.ErrFolderNotFound
	}
	return folder, nil
}

func (s *Store) ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folders := make([]domain.Folder, 0)
	for k, folder := range s.folders {
		if k.ownerID == ownerID {
			folders = append(folders, folder)
		}
	}
	return folders, nil
}

func (s *Store) UpdateFolder(ctx context.Context, ownerID, folderID string, patch domain.FolderPatch) (domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{ownerID, folderID}
	folder, ok := s.folders[k]
	if !ok {
		return domain.Folder{}, domain.ErrFolderNotFound
	}
	folder = patch.Apply(folder)
	s.folders[k] = folder
	return folder, nil
}

func (s *Store) DeleteFolder(ctx context.Context, ownerID, folderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{ownerID, folderID}
	if _, ok := s.folders[k]; !ok {
		return domain.ErrFolderNotFound
	}
	delete(s.folders, k)
	return nil
}

func matchesFilter(task domain.Task, filter domain.ListTasksFilter) bool {
	if filter.Status != nil && task.Status != *filter.Status {
		return false
	}
	if filter.FolderSet {
		if filter.FolderID == nil {
			if task.FolderID != nil && *task.FolderID != domain.InboxFolderID {
				return false
			}
		} else if task.FolderID == nil || *task.FolderID != *filter.FolderID {
			return false
		}
	}
	if filter.Cursor != nil && !afterCursor(task, *filter.Cursor) {
		return false
	}
	return true
}

// newerThan reports whether task sorts before (createdAt, id) in newest-first order.
func newerThan(task domain.Task, createdAt time.Time, id string) bool {
	if !task.CreatedAt.Equal(createdAt) {
		return task.CreatedAt.After(createdAt)
	}
	return task.ID > id
}

// afterCursor reports whether task comes strictly after cursor in newest-first order.
func afterCursor(task domain.Task, cursor domain.TaskCursor) bool {
	if !task.CreatedAt.Equal(cursor.CreatedAt) {
		return task.CreatedAt.Before(cursor.CreatedAt)
	}
	return task.ID < cursor.TaskID
}

func cloneTask(task domain.Task) domain.Task {
	if task.DueDate != nil {
		value := *task.DueDate
		task.DueDate = &value
	}
	if task.ReminderAt != nil {
		value := *task.ReminderAt
		task.ReminderAt = &value
	}
	if task.Priority != nil {
		value := *task.Priority
		task.Priority = &value
	}
	if task.FolderID != nil {
		value := *task.FolderID
		task.FolderID = &value
	}
	return task
}

var (
	_ ports.TaskRepository   = (*Store)(nil)
	_ ports.FolderRepository = (*Store)(nil)
	_ ports.HealthChecker    = (*Store)(nil)
)
