package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	OwnerID     string
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	ReminderAt  *time.Time
	Priority    *float64
	// FolderID is nil for tasks that live in the inbox.
	FolderID  *string
	Position  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	ReminderAt  *time.Time
	Priority    *float64
	FolderID    *string
	Position    *float64
}

// TaskPatch carries only the fields present in an update request.
// The *Set flags distinguish "clear the field" from "leave it alone".
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *TaskStatus
	DueDate       *time.Time
	DueDateSet    bool
	ReminderAt    *time.Time
	ReminderAtSet bool
	Priority      *float64
	Position      *float64
	FolderID      *string
	FolderIDSet   bool
	UpdatedAt     time.Time
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Status == nil &&
		!p.DueDateSet &&
		!p.ReminderAtSet &&
		p.Priority == nil &&
		p.Position == nil &&
		!p.FolderIDSet
}

// Apply returns a copy of task with the patch applied.
func (p TaskPatch) Apply(task Task) Task {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.DueDateSet {
		task.DueDate = cloneTime(p.DueDate)
	}
	if p.ReminderAtSet {
		task.ReminderAt = cloneTime(p.ReminderAt)
	}
	if p.Priority != nil {
		value := *p.Priority
		task.Priority = &value
	}
	if p.Position != nil {
		task.Position = *p.Position
	}
	if p.FolderIDSet {
		task.FolderID = cloneString(p.FolderID)
	}
	task.UpdatedAt = p.UpdatedAt
	return task
}

type ListTasksFilter struct {
	Status *TaskStatus
	// FolderSet enables the folder filter; a nil FolderID then selects the inbox.
	FolderSet bool
	FolderID  *string
	Limit     int
	Cursor    *TaskCursor
}

// TaskCursor is the keyset position of the last task of a page.
type TaskCursor struct {
	CreatedAt time.Time `json:"createdAt"`
	TaskID    string    `json:"taskId"`
}

type TaskPage struct {
	Items []Task
	Next  *TaskCursor
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	value := *s
	return &value
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// PageSize clamps a requested page size to (0, MaxPageSize].
func PageSize(requested int) int {
	if requested <= 0 {
		return DefaultPageSize
	}
	if requested > MaxPageSize {
		return MaxPageSize
	}
	return requested
}
