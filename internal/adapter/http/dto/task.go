package dto

type TaskItem struct {
	OwnerID     string   `json:"ownerId"`
	TaskID      string   `json:"taskId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	DueDate     *string  `json:"dueDate"`
	ReminderAt  *string  `json:"reminderAt"`
	Priority    *float64 `json:"priority"`
	FolderID    string   `json:"folderId"`
	Position    float64  `json:"position"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type TaskList struct {
	Items         []TaskItem `json:"items"`
	NextPageToken *string    `json:"nextPageToken"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
