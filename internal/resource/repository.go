package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"nyumbani/internal/common"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository executes the single-row statements for one entity.
// Every statement filters on user_id; there is no code path that can
// read or write another user's row.
type Repository[T any, P any] struct {
	db  DB
	def *Definition[T, P]
}

func NewRepository[T any, P any](db DB, def *Definition[T, P]) *Repository[T, P] {
	return &Repository[T, P]{db: db, def: def}
}

func (r *Repository[T, P]) columns() string {
	return "id, user_id, " + strings.Join(r.def.Columns, ", ") + ", created_at, updated_at"
}

func (r *Repository[T, P]) List(ctx context.Context, userID string) ([]*T, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.columns(), r.def.Table)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.def.Singular, err)
	}
	defer rows.Close()

	var items []*T
	for rows.Next() {
		item, err := r.def.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", r.def.Singular, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *Repository[T, P]) GetByID(ctx context.Context, userID, id string) (*T, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_id = $1 AND id = $2
	`, r.columns(), r.def.Table)

	item, err := r.def.Scan(r.db.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", r.def.Singular, err)
	}
	return item, nil
}

func (r *Repository[T, P]) Create(ctx context.Context, userID, id string, payload *P) (*T, error) {
	placeholders := make([]string, 0, len(r.def.Columns)+2)
	for i := 0; i < len(r.def.Columns)+2; i++ {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, %s, created_at, updated_at)
		VALUES (%s, NOW(), NOW())
		RETURNING %s
	`, r.def.Table, strings.Join(r.def.Columns, ", "), strings.Join(placeholders, ", "), r.columns())

	args := append([]any{id, userID}, r.def.InsertArgs(payload)...)
	item, err := r.def.Scan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", r.def.Singular, err)
	}
	return item, nil
}

func (r *Repository[T, P]) Patch(ctx context.Context, userID, id string, payload *P) (*T, error) {
	cols, args := r.def.PatchArgs(payload)
	if len(cols) == 0 {
		// Nothing to change; an empty patch just reads the row back.
		return r.GetByID(ctx, userID, id)
	}

	assignments := make([]string, 0, len(cols))
	for i, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, updated_at = NOW()
		WHERE user_id = $%d AND id = $%d
		RETURNING %s
	`, r.def.Table, strings.Join(assignments, ", "), len(cols)+1, len(cols)+2, r.columns())

	args = append(args, userID, id)
	item, err := r.def.Scan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", r.def.Singular, err)
	}
	return item, nil
}

func (r *Repository[T, P]) Delete(ctx context.Context, userID, id string) (string, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND id = $2 RETURNING id`, r.def.Table)

	var deletedID string
	if err := r.db.QueryRow(ctx, query, userID, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("delete %s: %w", r.def.Singular, err)
	}
	return deletedID, nil
}

// BulkDelete removes every listed row owned by the caller and
// reports the ids actually deleted. Unowned or missing ids are
// skipped silently.
func (r *Repository[T, P]) BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND id = ANY($2) RETURNING id`, r.def.Table)

	rows, err := r.db.Query(ctx, query, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("bulk delete %s: %w", r.def.Singular, err)
	}
	defer rows.Close()

	deleted := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		deleted = append(deleted, id)
	}
	return deleted, rows.Err()
}
