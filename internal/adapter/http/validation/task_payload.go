package validation

import (
	"strings"

	"besttodo/internal/core/domain"
)

func BuildCreateTaskInput(body []byte) (domain.CreateTaskInput, error) {
	raw, err := decodePayload(taskPayloadSchema, body)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	title, _ := stringField(raw, "title")
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.CreateTaskInput{}, domain.ErrTitleRequired
	}

	description, _ := stringField(raw, "description")

	status := domain.TaskStatusTodo
	if value, ok := stringField(raw, "status"); ok && domain.TaskStatus(value).Valid() {
		status = domain.TaskStatus(value)
	}

	dueDate, _, err := dateField(raw, "dueDate", domain.ErrInvalidDueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}
	reminderAt, _, err := dateField(raw, "reminderAt", domain.ErrInvalidReminder)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	var folderID *string
	if value, ok := stringField(raw, "folderId"); ok {
		folderID = domain.FolderRef(value)
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      status,
		DueDate:     dueDate,
		ReminderAt:  reminderAt,
		Priority:    numberField(raw, "priority"),
		FolderID:    folderID,
		Position:    numberField(raw, "position"),
	}, nil
}

// BuildUpdateTaskInput keeps only recognised, valid fields. Numeric fields
// and status values that do not parse are dropped; a bad date fails the
// whole request.
func BuildUpdateTaskInput(body []byte) (domain.TaskPatch, error) {
	raw, err := decodePayload(taskPayloadSchema, body)
	if err != nil {
		return domain.TaskPatch{}, err
	}

	var patch domain.TaskPatch

	if value, ok := stringField(raw, "title"); ok {
		title := strings.TrimSpace(value)
		if title == "" {
			return domain.TaskPatch{}, domain.ErrTitleRequired
		}
		patch.Title = &title
	}

	if value, ok := stringField(raw, "description"); ok {
		description := strings.TrimSpace(value)
		patch.Description = &description
	}

	if value, ok := stringField(raw, "status"); ok && domain.TaskStatus(value).Valid() {
		status := domain.TaskStatus(value)
		patch.Status = &status
	}

	patch.DueDate, patch.DueDateSet, err = dateField(raw, "dueDate", domain.ErrInvalidDueDate)
	if err != nil {
		return domain.TaskPatch{}, err
	}
	patch.ReminderAt, patch.ReminderAtSet, err = dateField(raw, "reminderAt", domain.ErrInvalidReminder)
	if err != nil {
		return domain.TaskPatch{}, err
	}

	patch.Priority = numberField(raw, "priority")
	patch.Position = numberField(raw, "position")

	if hasJSONField(raw, "folderId") {
		// null and blank both move the task back to the inbox.
		value, _ := stringField(raw, "folderId")
		patch.FolderID = domain.FolderRef(value)
		patch.FolderIDSet = true
	}

	if patch.IsEmpty() {
		return domain.TaskPatch{}, domain.ErrNoUpdateFields
	}

	return patch, nil
}
