// Package pagination converts store cursors to the opaque tokens clients pass back.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"besttodo/internal/core/domain"
)

func EncodeToken(cursor *domain.TaskCursor) *string {
	if cursor == nil {
		return nil
	}
	raw, err := json.Marshal(cursor)
	if err != nil {
		return nil
	}
	token := base64.RawURLEncoding.EncodeToString(raw)
	return &token
}

// DecodeToken returns nil for an empty token.
func DecodeToken(token string) (*domain.TaskCursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, domain.ErrInvalidPageToken
	}

	var cursor domain.TaskCursor
	if err := json.Unmarshal(raw, &cursor); err != nil {
		return nil, domain.ErrInvalidPageToken
	}
	if cursor.TaskID == "" || cursor.CreatedAt.IsZero() {
		return nil, domain.ErrInvalidPageToken
	}
	return &cursor, nil
}
