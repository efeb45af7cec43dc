package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/item"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetType(ctx context.Context, id uuid.UUID) (*item.Type, error) {
	query := `SELECT id, name, category, unit, created_at, deleted_at FROM item_types WHERE id = $1`

	var t item.Type

	err := s.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Category, &t.Unit, &t.CreatedAt, &t.DeletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, item.ErrNotFound
		}

		return nil, fmt.Errorf("getting item type: %w", err)
	}

	return &t, nil
}

func (s *Store) ListTypes(ctx context.Context) ([]*item.Type, error) {
	query := `SELECT id, name, category, unit, created_at, deleted_at FROM item_types WHERE deleted_at IS NULL ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing item types: %w", err)
	}
	defer rows.Close()

	var types []*item.Type

	for rows.Next() {
		var t item.Type
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Unit, &t.CreatedAt, &t.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning item type: %w", err)
		}

		types = append(types, &t)
	}

	return types, rows.Err()
}
