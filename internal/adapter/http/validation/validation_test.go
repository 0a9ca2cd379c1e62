package validation

import (
	"testing"
	"time"

	"besttodo/internal/adapter/http/pagination"
	"besttodo/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestBuildCreateTaskInput(t *testing.T) {
	in, err := BuildCreateTaskInput([]byte(`{
		"title": " Plan ",
		"status": "in_progress",
		"dueDate": "2026-03-01T10:00:00+02:00",
		"reminderAt": "2026-02-28T09:15",
		"priority": " 3 ",
		"position": "NaN",
		"folderId": " inbox "
	}`))
	require.NoError(t, err)

	require.Equal(t, "Plan", in.Title)
	require.Equal(t, domain.TaskStatusInProgress, in.Status)
	require.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), *in.DueDate)
	require.Equal(t, time.Date(2026, 2, 28, 9, 15, 0, 0, time.UTC), *in.ReminderAt)
	require.Equal(t, 3.0, *in.Priority)
	require.Nil(t, in.Position)
	require.Nil(t, in.FolderID)
}

func TestBuildCreateTaskInput_Errors(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"empty body":       {``, domain.ErrTitleRequired},
		"null title":       {`{"title":null}`, domain.ErrTitleRequired},
		"no json":          {`title=x`, domain.ErrInvalidPayload},
		"array":            {`[1,2]`, domain.ErrInvalidPayload},
		"numeric title":    {`{"title":5}`, domain.ErrInvalidPayload},
		"bad due date":     {`{"title":"x","dueDate":"31/12/2026"}`, domain.ErrInvalidDueDate},
		"bad reminder":     {`{"title":"x","reminderAt":"soon"}`, domain.ErrInvalidReminder},
		"numeric due date": {`{"title":"x","dueDate":20260101}`, domain.ErrInvalidPayload},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BuildCreateTaskInput([]byte(tc.body))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildCreateTaskInput_DefaultsStatus(t *testing.T) {
	in, err := BuildCreateTaskInput([]byte(`{"title":"x","status":"archived","priority":true}`))
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusTodo, in.Status)
	require.Nil(t, in.Priority)
}

func TestBuildUpdateTaskInput_PresenceSemantics(t *testing.T) {
	patch, err := BuildUpdateTaskInput([]byte(`{"dueDate":null,"reminderAt":"","title":null,"priority":null}`))
	require.NoError(t, err)

	require.True(t, patch.DueDateSet)
	require.Nil(t, patch.DueDate)
	require.True(t, patch.ReminderAtSet)
	require.Nil(t, patch.ReminderAt)
	require.Nil(t, patch.Title)
	require.Nil(t, patch.Priority)
	require.False(t, patch.FolderIDSet)
}

func TestBuildUpdateTaskInput_FolderMoves(t *testing.T) {
	for _, body := range []string{`{"folderId":null}`, `{"folderId":""}`, `{"folderId":"inbox"}`} {
		patch, err := BuildUpdateTaskInput([]byte(body))
		require.NoError(t, err, body)
		require.True(t, patch.FolderIDSet, body)
		require.Nil(t, patch.FolderID, body)
	}

	patch, err := BuildUpdateTaskInput([]byte(`{"folderId":"f-1","position":"7"}`))
	require.NoError(t, err)
	require.Equal(t, "f-1", *patch.FolderID)
	require.Equal(t, 7.0, *patch.Position)
}

func TestBuildUpdateTaskInput_Errors(t *testing.T) {
	_, err := BuildUpdateTaskInput([]byte(`{"priority":"high","status":"nope","other":1}`))
	require.ErrorIs(t, err, domain.ErrNoUpdateFields)

	_, err = BuildUpdateTaskInput([]byte(`{"title":"  "}`))
	require.ErrorIs(t, err, domain.ErrTitleRequired)

	_, err = BuildUpdateTaskInput([]byte(`{"title":"ok","dueDate":"not a date"}`))
	require.ErrorIs(t, err, domain.ErrInvalidDueDate)
}

func TestBuildFolderInputs(t *testing.T) {
	in, err := BuildCreateFolderInput([]byte(`{"name":" Work ","description":" d ","position":"4"}`))
	require.NoError(t, err)
	require.Equal(t, "Work", in.Name)
	require.Equal(t, "d", in.Description)
	require.Equal(t, 4.0, *in.Position)

	_, err = BuildCreateFolderInput([]byte(`{}`))
	require.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = BuildUpdateFolderInput([]byte(`{"position":"x","name":null}`))
	require.ErrorIs(t, err, domain.ErrNoUpdateFields)

	_, err = BuildUpdateFolderInput([]byte(`{"name":""}`))
	require.ErrorIs(t, err, domain.ErrNameRequired)

	patch, err := BuildUpdateFolderInput([]byte(`{"description":""}`))
	require.NoError(t, err)
	require.Equal(t, "", *patch.Description)
}

func TestBuildListTasksFilter(t *testing.T) {
	filter, err := BuildListTasksFilter("", "", "", "")
	require.NoError(t, err)
	require.Nil(t, filter.Status)
	require.False(t, filter.FolderSet)
	require.Equal(t, domain.DefaultPageSize, filter.Limit)
	require.Nil(t, filter.Cursor)

	filter, err = BuildListTasksFilter("done", "f-1", "abc", "")
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusDone, *filter.Status)
	require.True(t, filter.FolderSet)
	require.Equal(t, "f-1", *filter.FolderID)
	require.Equal(t, domain.DefaultPageSize, filter.Limit)

	filter, err = BuildListTasksFilter("", "inbox", "99", "")
	require.NoError(t, err)
	require.True(t, filter.FolderSet)
	require.Nil(t, filter.FolderID)
	require.Equal(t, domain.MaxPageSize, filter.Limit)

	cursor := &domain.TaskCursor{CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), TaskID: "t-1"}
	filter, err = BuildListTasksFilter("", "", "5", *pagination.EncodeToken(cursor))
	require.NoError(t, err)
	require.Equal(t, 5, filter.Limit)
	require.Equal(t, "t-1", filter.Cursor.TaskID)
	require.True(t, cursor.CreatedAt.Equal(filter.Cursor.CreatedAt))

	_, err = BuildListTasksFilter("", "", "", "not-a-token!")
	require.ErrorIs(t, err, domain.ErrInvalidPageToken)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-01T10:00:00.123456Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 123000000, time.UTC), got)

	got, err = ParseDate("2026-03-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("March 1st")
	require.Error(t, err)
}
