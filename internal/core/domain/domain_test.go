package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{ErrTitleRequired, KindValidation},
		{fmt.Errorf("wrapped: %w", ErrInvalidPageToken), KindValidation},
		{ErrTaskNotFound, KindNotFound},
		{fmt.Errorf("check folder: %w", ErrFolderNotFound), KindNotFound},
		{ErrUnauthenticated, KindUnauthenticated},
		{ErrDuplicateID, KindInternal},
		{fmt.Errorf("boom"), KindInternal},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, KindOf(tc.err), tc.err.Error())
	}
	require.Equal(t, "not_found", KindNotFound.String())
}

func TestPageSize(t *testing.T) {
	require.Equal(t, DefaultPageSize, PageSize(0))
	require.Equal(t, DefaultPageSize, PageSize(-3))
	require.Equal(t, 7, PageSize(7))
	require.Equal(t, MaxPageSize, PageSize(51))
}

func TestFolderRef(t *testing.T) {
	require.Nil(t, FolderRef(""))
	require.Nil(t, FolderRef("  "))
	require.Nil(t, FolderRef(InboxFolderID))
	require.Equal(t, "f-1", *FolderRef(" f-1 "))

	require.Equal(t, InboxFolderID, FolderWireID(nil))
	id := "f-1"
	require.Equal(t, "f-1", FolderWireID(&id))
}

func TestTaskPatch_Apply(t *testing.T) {
	due := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	folder := "f-1"
	task := Task{ID: "t", Title: "old", DueDate: &due, FolderID: &folder, Position: 4}

	title := "new"
	updatedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	patch := TaskPatch{Title: &title, DueDateSet: true, FolderIDSet: true, UpdatedAt: updatedAt}
	require.False(t, patch.IsEmpty())

	got := patch.Apply(task)
	require.Equal(t, "new", got.Title)
	require.Nil(t, got.DueDate)
	require.Nil(t, got.FolderID)
	require.Equal(t, 4.0, got.Position)
	require.Equal(t, updatedAt, got.UpdatedAt)

	// The original is untouched.
	require.Equal(t, "old", task.Title)
	require.NotNil(t, task.DueDate)
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	require.True(t, TaskPatch{UpdatedAt: time.Now()}.IsEmpty())
	require.False(t, TaskPatch{ReminderAtSet: true}.IsEmpty())
	require.True(t, FolderPatch{}.IsEmpty())
}

func TestSortFolders(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	folders := []Folder{
		{ID: "late", Position: 1, CreatedAt: base.Add(time.Hour)},
		{ID: "second", Position: 2, CreatedAt: base},
		{ID: "early", Position: 1, CreatedAt: base},
	}

	SortFolders(folders)

	require.Equal(t, []string{"early", "late", "second"}, []string{folders[0].ID, folders[1].ID, folders[2].ID})
}
