package validation

import (
	"strconv"
	"strings"

	"besttodo/internal/adapter/http/pagination"
	"besttodo/internal/core/domain"
)

// BuildListTasksFilter reads the list query parameters. Only a malformed
// page token is an error; a bad limit falls back to the default page size.
func BuildListTasksFilter(status, folderID, limit, pageToken string) (domain.ListTasksFilter, error) {
	var filter domain.ListTasksFilter

	if value := strings.TrimSpace(status); value != "" {
		s := domain.TaskStatus(value)
		filter.Status = &s
	}

	if value := strings.TrimSpace(folderID); value != "" {
		filter.FolderSet = true
		filter.FolderID = domain.FolderRef(value)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil {
		filter.Limit = n
	}
	filter.Limit = domain.PageSize(filter.Limit)

	cursor, err := pagination.DecodeToken(pageToken)
	if err != nil {
		return domain.ListTasksFilter{}, err
	}
	filter.Cursor = cursor

	return filter, nil
}
