package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"talentboard/internal/database"

	"github.com/google/uuid"
)

func findDocuments[T any](ctx context.Context, db database.DB, table string, withID func(T, string) T) ([]T, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}

	rows, err := db.Query(ctx, `SELECT id, doc FROM `+table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var (
			id  uuid.UUID
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode %s document %s: %w", table, id, err)
		}
		out = append(out, withID(item, id.String()))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// insertDocuments writes items in a single transaction so a batch is stored
// whole or not at all.
func insertDocuments[T any](ctx context.Context, db database.DB, table string, items []T, withID func(T, string) T) ([]T, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	out := make([]T, 0, len(items))
	for _, it := range items {
		doc, err := json.Marshal(it)
		if err != nil {
			return nil, err
		}
		id := uuid.New()
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO `+table+` (id, doc) VALUES ($1, $2::jsonb - '_id')`,
			id,
			doc,
		); err != nil {
			return nil, err
		}
		out = append(out, withID(it, id.String()))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}
