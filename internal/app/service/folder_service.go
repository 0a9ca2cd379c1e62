package service

import (
	"context"
	"fmt"
	"strings"

	"besttodo/internal/core/domain"
	"besttodo/internal/core/ports"
)

type FolderService struct {
	folderRepository ports.FolderRepository
	opts             options
}

func NewFolderService(folderRepository ports.FolderRepository, opts ...Option) *FolderService {
	return &FolderService{folderRepository: folderRepository, opts: buildOptions(opts)}
}

func (s *FolderService) CreateFolder(ctx context.Context, ownerID string, input domain.CreateFolderInput) (domain.Folder, error) {
	if ownerID == "" {
		return domain.Folder{}, domain.ErrUnauthenticated
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Folder{}, domain.ErrNameRequired
	}

	now := s.opts.timestamp()
	position := s.opts.defaultPosition(now)
	if input.Position != nil {
		position = *input.Position
	}

	folder := domain.Folder{
		OwnerID:     ownerID,
		ID:          s.opts.newID(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.folderRepository.CreateFolder(ctx, folder); err != nil {
		return domain.Folder{}, fmt.Errorf("create folder: %w", err)
	}

	return folder, nil
}

func (s *FolderService) GetFolder(ctx context.Context, ownerID, folderID string) (domain.Folder, error) {
	if ownerID == "" {
		return domain.Folder{}, domain.ErrUnauthenticated
	}
	if isVirtualFolder(folderID) {
		return domain.Folder{}, domain.ErrFolderNotFound
	}
	return s.folderRepository.GetFolder(ctx, ownerID, folderID)
}

func (s *FolderService) ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	folders, err := s.folderRepository.ListFolders(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	domain.SortFolders(folders)
	return folders, nil
}

func (s *FolderService) UpdateFolder(ctx context.Context, ownerID, folderID string, patch domain.FolderPatch) (domain.Folder, error) {
	if ownerID == "" {
		return domain.Folder{}, domain.ErrUnauthenticated
	}
	if isVirtualFolder(folderID) {
		return domain.Folder{}, domain.ErrFolderNotFound
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return domain.Folder{}, domain.ErrNameRequired
		}
		patch.Name = &name
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}
	if patch.IsEmpty() {
		return domain.Folder{}, domain.ErrNoUpdateFields
	}

	patch.UpdatedAt = s.opts.timestamp()
	return s.folderRepository.UpdateFolder(ctx, ownerID, folderID, patch)
}

// DeleteFolder removes the folder row only. Tasks that still reference it are
// left in place; callers move them before deleting.
func (s *FolderService) DeleteFolder(ctx context.Context, ownerID, folderID string) error {
	if ownerID == "" {
		return domain.ErrUnauthenticated
	}
	if isVirtualFolder(folderID) {
		return domain.ErrFolderNotFound
	}
	return s.folderRepository.DeleteFolder(ctx, ownerID, folderID)
}

func isVirtualFolder(folderID string) bool {
	return domain.FolderRef(folderID) == nil
}

var _ ports.FolderService = (*FolderService)(nil)
