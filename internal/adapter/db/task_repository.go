package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"besttodo/internal/core/domain"
	"besttodo/internal/core/ports"
)

const taskColumns = `owner_id, task_id, title, description, status, due_date, reminder_at, priority, folder_id, item_position, created_at, updated_at`

type TaskRepository struct {
	db    *sqlx.DB
	table string
}

type taskRow struct {
	OwnerID     string          `db:"owner_id"`
	TaskID      string          `db:"task_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Status      string          `db:"status"`
	DueDate     sql.NullTime    `db:"due_date"`
	ReminderAt  sql.NullTime    `db:"reminder_at"`
	Priority    sql.NullFloat64 `db:"priority"`
	FolderID    sql.NullString  `db:"folder_id"`
	Position    float64         `db:"item_position"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB, tables Tables) *TaskRepository {
	return &TaskRepository{db: db, table: tables.Tasks}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	query := r.db.Rebind(fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.table, taskColumns,
	))

	row := mapDomainTaskToTaskRow(task)
	_, err := r.db.ExecContext(ctx, query,
		row.OwnerID, row.TaskID, row.Title, row.Description, row.Status,
		row.DueDate, row.ReminderAt, row.Priority, row.FolderID, row.Position,
		row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	return r.getTask(ctx, r.db, ownerID, taskID)
}

func (r *TaskRepository) getTask(ctx context.Context, q sqlx.QueryerContext, ownerID, taskID string) (domain.Task, error) {
	query := r.db.Rebind(fmt.Sprintf(
		`SELECT %s FROM %s WHERE owner_id = ? AND task_id = ?`,
		taskColumns, r.table,
	))

	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, query, ownerID, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return mapTaskRowToDomainTask(row), nil
}

// ListTasks walks the owner's tasks newest first. A status filter uses the
// (owner, status, created_at) index, otherwise the (owner, created_at) index.
func (r *TaskRepository) ListTasks(ctx context.Context, ownerID string, filter domain.ListTasksFilter) (domain.TaskPage, error) {
	var (
		sb   strings.Builder
		args []any
	)

	fmt.Fprintf(&sb, `SELECT %s FROM %s WHERE owner_id = ?`, taskColumns, r.table)
	args = append(args, ownerID)

	if filter.Status != nil {
		sb.WriteString(` AND status = ?`)
		args = append(args, string(*filter.Status))
	}

	if filter.FolderSet {
		if filter.FolderID == nil {
			sb.WriteString(` AND (folder_id IS NULL OR folder_id = ?)`)
			args = append(args, domain.InboxFolderID)
		} else {
			sb.WriteString(` AND folder_id = ?`)
			args = append(args, *filter.FolderID)
		}
	}

	if filter.Cursor != nil {
		sb.WriteString(` AND (created_at < ? OR (created_at = ? AND task_id < ?))`)
		createdAt := filter.Cursor.CreatedAt.UTC()
		args = append(args, createdAt, createdAt, filter.Cursor.TaskID)
	}

	limit := domain.PageSize(filter.Limit)
	sb.WriteString(` ORDER BY created_at DESC, task_id DESC LIMIT ?`)
	// One extra row tells whether another page exists.
	args = append(args, limit+1)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(sb.String()), args...); err != nil {
		return domain.TaskPage{}, fmt.Errorf("list tasks: %w", err)
	}

	page := domain.TaskPage{Items: make([]domain.Task, 0, len(rows))}
	for i, row := range rows {
		if i == limit {
			last := page.Items[limit-1]
			page.Next = &domain.TaskCursor{CreatedAt: last.CreatedAt, TaskID: last.ID}
			break
		}
		page.Items = append(page.Items, mapTaskRowToDomainTask(row))
	}

	return page, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	sets, args := taskPatchAssignments(patch)
	query := r.db.Rebind(fmt.Sprintf(
		`UPDATE %s SET %s WHERE owner_id = ? AND task_id = ?`,
		r.table, strings.Join(sets, ", "),
	))
	args = append(args, ownerID, taskID)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, fmt.Errorf("begin update task: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task rows: %w", err)
	}
	if affected == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	task, err := r.getTask(ctx, tx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Task{}, fmt.Errorf("commit update task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	query := r.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE owner_id = ? AND task_id = ?`, r.table))

	res, err := r.db.ExecContext(ctx, query, ownerID, taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func taskPatchAssignments(patch domain.TaskPatch) ([]string, []any) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.DueDateSet {
		set("due_date", nullTime(patch.DueDate))
	}
	if patch.ReminderAtSet {
		set("reminder_at", nullTime(patch.ReminderAt))
	}
	if patch.Priority != nil {
		set("priority", *patch.Priority)
	}
	if patch.Position != nil {
		set("item_position", *patch.Position)
	}
	if patch.FolderIDSet {
		set("folder_id", nullString(patch.FolderID))
	}
	set("updated_at", patch.UpdatedAt.UTC())

	return sets, args
}

func mapDomainTaskToTaskRow(task domain.Task) taskRow {
	row := taskRow{
		OwnerID:     task.OwnerID,
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     nullTime(task.DueDate),
		ReminderAt:  nullTime(task.ReminderAt),
		FolderID:    nullString(task.FolderID),
		Position:    task.Position,
		CreatedAt:   task.CreatedAt.UTC(),
		UpdatedAt:   task.UpdatedAt.UTC(),
	}
	if task.Priority != nil {
		row.Priority = sql.NullFloat64{Float64: *task.Priority, Valid: true}
	}
	return row
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		OwnerID:     row.OwnerID,
		ID:          row.TaskID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Position:    row.Position,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time.UTC()
		task.DueDate = &value
	}

	if row.ReminderAt.Valid {
		value := row.ReminderAt.Time.UTC()
		task.ReminderAt = &value
	}

	if row.Priority.Valid {
		value := row.Priority.Float64
		task.Priority = &value
	}

	if row.FolderID.Valid {
		task.FolderID = domain.FolderRef(row.FolderID.String)
	}

	return task
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
