package dto

type FolderItem struct {
	OwnerID     string  `json:"ownerId"`
	ListID      string  `json:"listId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Position    float64 `json:"position"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type FolderList struct {
	Items []FolderItem `json:"items"`
}
