package taskclient

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ReorderTasks gives the tasks dense positions 1..N in the given order, one
// update per task. Updates are independent: on error some may already have
// been applied, and callers should re-fetch the folder.
func (c *Client) ReorderTasks(ctx context.Context, orderedTaskIDs []string) error {
	positions := densePositions(orderedTaskIDs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for _, taskID := range orderedTaskIDs {
		taskID := taskID
		position := positions[taskID]
		g.Go(func() error {
			if _, err := c.UpdateTask(gctx, taskID, Fields{"position": position}); err != nil {
				return fmt.Errorf("reorder task %s: %w", taskID, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// DeleteFolderToInbox moves every task of folderID to the end of the inbox
// and then deletes the folder. The folder is kept if any move fails.
func (c *Client) DeleteFolderToInbox(ctx context.Context, folderID string) error {
	members, err := c.ListAllTasks(ctx, ListParams{FolderID: folderID, Limit: maxPageSize})
	if err != nil {
		return fmt.Errorf("list folder tasks: %w", err)
	}

	if len(members) > 0 {
		inbox, err := c.ListAllTasks(ctx, ListParams{FolderID: InboxFolderID, Limit: maxPageSize})
		if err != nil {
			return fmt.Errorf("list inbox tasks: %w", err)
		}

		next := len(inbox) + 1
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.concurrency)
		for i, task := range members {
			taskID := task.TaskID
			position := float64(next + i)
			g.Go(func() error {
				_, err := c.UpdateTask(gctx, taskID, Fields{
					"folderId": InboxFolderID,
					"position": position,
				})
				if err != nil {
					return fmt.Errorf("move task %s to inbox: %w", taskID, err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return c.DeleteFolder(ctx, folderID)
}
