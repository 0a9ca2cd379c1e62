package validation

import (
	"strings"

	"besttodo/internal/core/domain"
)

func BuildCreateFolderInput(body []byte) (domain.CreateFolderInput, error) {
	raw, err := decodePayload(folderPayloadSchema, body)
	if err != nil {
		return domain.CreateFolderInput{}, err
	}

	name, _ := stringField(raw, "name")
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.CreateFolderInput{}, domain.ErrNameRequired
	}

	description, _ := stringField(raw, "description")

	return domain.CreateFolderInput{
		Name:        name,
		Description: strings.TrimSpace(description),
		Position:    numberField(raw, "position"),
	}, nil
}

func BuildUpdateFolderInput(body []byte) (domain.FolderPatch, error) {
	raw, err := decodePayload(folderPayloadSchema, body)
	if err != nil {
		return domain.FolderPatch{}, err
	}

	var patch domain.FolderPatch

	if value, ok := stringField(raw, "name"); ok {
		name := strings.TrimSpace(value)
		if name == "" {
			return domain.FolderPatch{}, domain.ErrNameRequired
		}
		patch.Name = &name
	}

	if value, ok := stringField(raw, "description"); ok {
		description := strings.TrimSpace(value)
		patch.Description = &description
	}

	patch.Position = numberField(raw, "position")

	if patch.IsEmpty() {
		return domain.FolderPatch{}, domain.ErrNoUpdateFields
	}

	return patch, nil
}
