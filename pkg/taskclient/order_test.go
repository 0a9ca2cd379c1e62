package taskclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortBoard(t *testing.T) {
	tasks := []Task{
		{TaskID: "old", Position: 1, CreatedAt: "2026-01-01T00:00:00.000Z"},
		{TaskID: "last", Position: 5, CreatedAt: "2026-01-01T00:00:00.000Z"},
		{TaskID: "new", Position: 1, CreatedAt: "2026-01-01T00:01:00.000Z"},
	}

	SortBoard(tasks)

	require.Equal(t, []string{"new", "old", "last"}, []string{tasks[0].TaskID, tasks[1].TaskID, tasks[2].TaskID})
}

func TestDensePositions(t *testing.T) {
	require.Equal(t, map[string]float64{"c": 1, "a": 2, "b": 3}, densePositions([]string{"c", "a", "b"}))
	require.Empty(t, densePositions(nil))
}

func TestClient_ListBoard(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL, WithSubject(subjectHeader, "alice"))
	ctx := context.Background()

	folder, err := c.CreateFolder(ctx, Fields{"name": "Work"})
	require.NoError(t, err)

	var ids []string
	for _, position := range []float64{3, 1, 2} {
		task, err := c.CreateTask(ctx, Fields{"title": "t", "folderId": folder.ListID, "position": position})
		require.NoError(t, err)
		ids = append(ids, task.TaskID)
	}
	_, err = c.CreateTask(ctx, Fields{"title": "elsewhere", "position": 0})
	require.NoError(t, err)

	board, err := c.ListBoard(ctx, folder.ListID)
	require.NoError(t, err)
	require.Len(t, board, 3)
	require.Equal(t, []string{ids[1], ids[2], ids[0]}, []string{board[0].TaskID, board[1].TaskID, board[2].TaskID})
}
