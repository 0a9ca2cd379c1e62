package mapper

import (
	"besttodo/internal/adapter/http/dto"
	"besttodo/internal/core/domain"
)

func ToFolderItems(folders []domain.Folder) []dto.FolderItem {
	items := make([]dto.FolderItem, 0, len(folders))
	for _, folder := range folders {
		items = append(items, ToFolderItem(folder))
	}
	return items
}

func ToFolderItem(folder domain.Folder) dto.FolderItem {
	return dto.FolderItem{
		OwnerID:     folder.OwnerID,
		ListID:      folder.ID,
		Name:        folder.Name,
		Description: folder.Description,
		Position:    folder.Position,
		CreatedAt:   FormatTime(folder.CreatedAt),
		UpdatedAt:   FormatTime(folder.UpdatedAt),
	}
}
