package ports

import (
	"context"

	"besttodo/internal/core/domain"
)

type FolderRepository interface {
	CreateFolder(ctx context.Context, folder domain.Folder) error
	GetFolder(ctx context.Context, ownerID, folderID string) (domain.Folder, error)
	ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error)
	UpdateFolder(ctx context.Context, ownerID, folderID string, patch domain.FolderPatch) (domain.Folder, error)
	DeleteFolder(ctx context.Context, ownerID, folderID string) error
}

type FolderService interface {
	CreateFolder(ctx context.Context, ownerID string, input domain.CreateFolderInput) (domain.Folder, error)
	GetFolder(ctx context.Context, ownerID, folderID string) (domain.Folder, error)
	ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error)
	UpdateFolder(ctx context.Context, ownerID, folderID string, patch domain.FolderPatch) (domain.Folder, error)
	DeleteFolder(ctx context.Context, ownerID, folderID string) error
}
