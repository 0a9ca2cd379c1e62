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

const folderColumns = `owner_id, list_id, name, description, item_position, created_at, updated_at`

type FolderRepository struct {
	db    *sqlx.DB
	table string
}

type folderRow struct {
	OwnerID     string    `db:"owner_id"`
	ListID      string    `db:"list_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Position    float64   `db:"item_position"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.FolderRepository = (*FolderRepository)(nil)

func NewFolderRepository(db *sqlx.DB, tables Tables) *FolderRepository {
	return &FolderRepository{db: db, table: tables.Folders}
}

func (r *FolderRepository) CreateFolder(ctx context.Context, folder domain.Folder) error {
	query := r.db.Rebind(fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.table, folderColumns,
	))

	_, err := r.db.ExecContext(ctx, query,
		folder.OwnerID, folder.ID, folder.Name, folder.Description, folder.Position,
		folder.CreatedAt.UTC(), folder.UpdatedAt.UTC(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("insert folder: %w", err)
	}
	return nil
}

func (r *FolderRepository) GetFolder(ctx context.Context, ownerID, folderID string) (domain.Folder, error) {
	return r.getFolder(ctx, r.db, ownerID, folderID)
}

func (r *FolderRepository) getFolder(ctx context.Context, q sqlx.QueryerContext, ownerID, folderID string) (domain.Folder, error) {
	query := r.db.Rebind(fmt.Sprintf(
		`SELECT %s FROM %s WHERE owner_id = ? AND list_id = ?`,
		folderColumns, r.table,
	))

	var row folderRow
	if err := sqlx.GetContext(ctx, q, &row, query, ownerID, folderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Folder{}, domain.ErrFolderNotFound
		}
		return domain.Folder{}, fmt.Errorf("get folder: %w", err)
	}
	return mapFolderRowToDomainFolder(row), nil
}

// ListFolders returns rows in store order; ordering is applied by the service.
func (r *FolderRepository) ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE owner_id = ?`, folderColumns, r.table))

	var rows []folderRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	folders := make([]domain.Folder, 0, len(rows))
	for _, row := range rows {
		folders = append(folders, mapFolderRowToDomainFolder(row))
	}
	return folders, nil
}

func (r *FolderRepository) UpdateFolder(ctx context.Context, ownerID, folderID string, patch domain.FolderPatch) (domain.Folder, error) {
	var (
		sets []string
		args []any
	)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Position != nil {
		sets = append(sets, "item_position = ?")
		args = append(args, *patch.Position)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, patch.UpdatedAt.UTC(), ownerID, folderID)

	query := r.db.Rebind(fmt.Sprintf(
		`UPDATE %s SET %s WHERE owner_id = ? AND list_id = ?`,
		r.table, strings.Join(sets, ", "),
	))

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("begin update folder: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("update folder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Folder{}, fmt.Errorf("update folder rows: %w", err)
	}
	if affected == 0 {
		return domain.Folder{}, domain.ErrFolderNotFound
	}

	folder, err := r.getFolder(ctx, tx, ownerID, folderID)
	if err != nil {
		return domain.Folder{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Folder{}, fmt.Errorf("commit update folder: %w", err)
	}
	return folder, nil
}

func (r *FolderRepository) DeleteFolder(ctx context.Context, ownerID, folderID string) error {
	query := r.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE owner_id = ? AND list_id = ?`, r.table))

	res, err := r.db.ExecContext(ctx, query, ownerID, folderID)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete folder rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrFolderNotFound
	}
	return nil
}

func mapFolderRowToDomainFolder(row folderRow) domain.Folder {
	return domain.Folder{
		OwnerID:     row.OwnerID,
		ID:          row.ListID,
		Name:        row.Name,
		Description: row.Description,
		Position:    row.Position,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
