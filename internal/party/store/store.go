package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stocktrail-app/stocktrail/internal/party"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// tableFor maps a party kind to its directory table. Both tables share
// the (id, name, created_at, deleted_at) shape this store reads.
func tableFor(kind party.Kind) (string, error) {
	switch kind {
	case party.KindWarehouse:
		return "warehouses", nil
	case party.KindEquipment:
		return "equipment", nil
	default:
		return "", fmt.Errorf("unknown party kind %q", kind)
	}
}

func (s *Store) GetParty(ctx context.Context, p party.Party) (*party.Info, error) {
	table, err := tableFor(p.Kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, name, created_at, deleted_at FROM %s WHERE id = $1`, table)

	info := &party.Info{Party: p}

	err = s.db.QueryRowContext(ctx, query, p.ID).Scan(&info.Party.ID, &info.Name, &info.CreatedAt, &info.DeletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, party.ErrNotFound
		}

		return nil, fmt.Errorf("getting party: %w", err)
	}

	return info, nil
}

func (s *Store) ListParties(ctx context.Context, kind party.Kind) ([]*party.Info, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, name, created_at, deleted_at FROM %s WHERE deleted_at IS NULL ORDER BY name`, table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing parties: %w", err)
	}
	defer rows.Close()

	var infos []*party.Info

	for rows.Next() {
		info := &party.Info{Party: party.Party{Kind: kind}}
		if err := rows.Scan(&info.Party.ID, &info.Name, &info.CreatedAt, &info.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning party: %w", err)
		}

		infos = append(infos, info)
	}

	return infos, rows.Err()
}
