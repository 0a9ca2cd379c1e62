package mapper

import (
	"time"

	"besttodo/internal/adapter/http/dto"
	"besttodo/internal/adapter/http/pagination"
	"besttodo/internal/core/domain"
)

// TimestampLayout matches JavaScript's Date.toISOString output.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskList(page domain.TaskPage) dto.TaskList {
	return dto.TaskList{
		Items:         ToTaskItems(page.Items),
		NextPageToken: pagination.EncodeToken(page.Next),
	}
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		OwnerID:     task.OwnerID,
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		FolderID:    domain.FolderWireID(task.FolderID),
		Position:    task.Position,
		CreatedAt:   FormatTime(task.CreatedAt),
		UpdatedAt:   FormatTime(task.UpdatedAt),
	}

	if task.DueDate != nil {
		value := FormatTime(*task.DueDate)
		item.DueDate = &value
	}

	if task.ReminderAt != nil {
		value := FormatTime(*task.ReminderAt)
		item.ReminderAt = &value
	}

	if task.Priority != nil {
		value := *task.Priority
		item.Priority = &value
	}

	return item
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
