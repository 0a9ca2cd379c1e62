package taskclient

import (
	"context"
	"sort"
	"time"
)

// InboxFolderID is the service's name for the default folder.
const InboxFolderID = "inbox"

// maxPageSize is the largest page the service returns.
const maxPageSize = 50

// SortBoard orders one folder's tasks for display: by position, newest first
// on ties.
func SortBoard(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Position != tasks[j].Position {
			return tasks[i].Position < tasks[j].Position
		}
		return createdAfter(tasks[i], tasks[j])
	})
}

// ListBoard returns every task of folderID in board order.
func (c *Client) ListBoard(ctx context.Context, folderID string) ([]Task, error) {
	tasks, err := c.ListAllTasks(ctx, ListParams{FolderID: folderID, Limit: maxPageSize})
	if err != nil {
		return nil, err
	}
	SortBoard(tasks)
	return tasks, nil
}

func createdAfter(a, b Task) bool {
	ta, errA := time.Parse(time.RFC3339Nano, a.CreatedAt)
	tb, errB := time.Parse(time.RFC3339Nano, b.CreatedAt)
	if errA != nil || errB != nil {
		return a.CreatedAt > b.CreatedAt
	}
	return ta.After(tb)
}

// densePositions assigns 1..N to ids in the given order.
func densePositions(ids []string) map[string]float64 {
	positions := make(map[string]float64, len(ids))
	for i, id := range ids {
		positions[id] = float64(i + 1)
	}
	return positions
}
