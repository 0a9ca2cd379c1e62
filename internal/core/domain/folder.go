package domain

import (
	"strings"
	"time"
)

// InboxFolderID is the wire name of the virtual default folder.
const InboxFolderID = "inbox"

type Folder struct {
	OwnerID     string
	ID          string
	Name        string
	Description string
	Position    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateFolderInput struct {
	Name        string
	Description string
	Position    *float64
}

type FolderPatch struct {
	Name        *string
	Description *string
	Position    *float64
	UpdatedAt   time.Time
}

func (p FolderPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Position == nil
}

func (p FolderPatch) Apply(folder Folder) Folder {
	if p.Name != nil {
		folder.Name = *p.Name
	}
	if p.Description != nil {
		folder.Description = *p.Description
	}
	if p.Position != nil {
		folder.Position = *p.Position
	}
	folder.UpdatedAt = p.UpdatedAt
	return folder
}

// FolderRef turns a wire folder identifier into the internal optional reference.
// Blank values and the inbox sentinel both map to nil.
func FolderRef(raw string) *string {
	value := strings.TrimSpace(raw)
	if value == "" || value == InboxFolderID {
		return nil
	}
	return &value
}

// FolderWireID is the inverse of FolderRef.
func FolderWireID(ref *string) string {
	if ref == nil || strings.TrimSpace(*ref) == "" {
		return InboxFolderID
	}
	return *ref
}
