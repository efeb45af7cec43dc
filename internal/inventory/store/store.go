package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DBTX is satisfied by both *sql.DB and *sql.Tx. The mutation helpers
// below take it so the transfer store can run them inside its own
// acceptance transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectRecordColumns = `
	r.id, r.location_kind, r.location_id, r.item_type_id, r.quantity, r.status,
	r.resolved, r.source_item_id, r.notes, r.resolved_by, r.resolved_at, r.created_at
`

func scanRecord(s scanner) (*inventory.Record, error) {
	var (
		rec  inventory.Record
		kind string
	)

	if err := s.Scan(
		&rec.ID, &kind, &rec.Location.ID, &rec.ItemTypeID, &rec.Quantity, &rec.Status,
		&rec.Resolved, &rec.SourceItemID, &rec.Notes, &rec.ResolvedBy, &rec.ResolvedAt, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}

	rec.Location.Kind = party.Kind(kind)

	return &rec, nil
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*inventory.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM inventory_records r WHERE r.id = $1`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, inventory.ErrRecordNotFound
		}

		return nil, fmt.Errorf("getting inventory record: %w", err)
	}

	return rec, nil
}

func (s *Store) ListRecords(ctx context.Context, filter inventory.RecordFilter) ([]*inventory.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM inventory_records r WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Location != nil {
		query += fmt.Sprintf(" AND r.location_kind = $%d AND r.location_id = $%d", argIdx, argIdx+1)

		args = append(args, filter.Location.Kind, filter.Location.ID)
		argIdx += 2
	}

	if filter.ItemTypeID != nil {
		query += fmt.Sprintf(" AND r.item_type_id = $%d", argIdx)

		args = append(args, *filter.ItemTypeID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND r.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Unresolved {
		query += " AND NOT r.resolved AND r.status IN ('missing', 'over_received')"
	}

	query += " ORDER BY r.created_at, r.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing inventory records: %w", err)
	}
	defer rows.Close()

	var recs []*inventory.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inventory record: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

const selectEntryColumns = `
	e.id, e.transfer_id, e.item_id, e.item_type_id, e.quantity,
	e.source_kind, e.source_id, e.destination_kind, e.destination_id,
	e.kind, e.status, e.moved_at, e.recorded_by, e.resolved_by, e.resolved_at, e.created_at
`

func scanEntry(s scanner) (*inventory.LedgerEntry, error) {
	var (
		e        inventory.LedgerEntry
		srcKind  *string
		srcID    *uuid.UUID
		dstKind  *string
		dstID    *uuid.UUID
	)

	if err := s.Scan(
		&e.ID, &e.TransferID, &e.ItemID, &e.ItemTypeID, &e.Quantity,
		&srcKind, &srcID, &dstKind, &dstID,
		&e.Kind, &e.Status, &e.MovedAt, &e.RecordedBy, &e.ResolvedBy, &e.ResolvedAt, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	if srcKind != nil && srcID != nil {
		e.Source = &party.Party{Kind: party.Kind(*srcKind), ID: *srcID}
	}

	if dstKind != nil && dstID != nil {
		e.Destination = &party.Party{Kind: party.Kind(*dstKind), ID: *dstID}
	}

	return &e, nil
}

func (s *Store) ListEntries(ctx context.Context, filter inventory.EntryFilter) ([]*inventory.LedgerEntry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM movement_ledger e WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Location != nil {
		query += fmt.Sprintf(
			" AND ((e.source_kind = $%d AND e.source_id = $%d) OR (e.destination_kind = $%d AND e.destination_id = $%d))",
			argIdx, argIdx+1, argIdx, argIdx+1,
		)

		args = append(args, filter.Location.Kind, filter.Location.ID)
		argIdx += 2
	}

	if filter.ItemTypeID != nil {
		query += fmt.Sprintf(" AND e.item_type_id = $%d", argIdx)

		args = append(args, *filter.ItemTypeID)
		argIdx++
	}

	if filter.TransferID != nil {
		query += fmt.Sprintf(" AND e.transfer_id = $%d", argIdx)

		args = append(args, *filter.TransferID)
		argIdx++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND e.moved_at >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND e.moved_at <= $%d", argIdx)

		args = append(args, *filter.To)
		argIdx++
	}

	query += " ORDER BY e.moved_at, e.created_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*inventory.LedgerEntry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// LedgerQuantity computes stock as the signed sum over accepted entries:
// +quantity where the location is the destination, -quantity where it is
// the source.
func (s *Store) LedgerQuantity(ctx context.Context, loc party.Party, itemTypeID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN e.destination_kind = $1 AND e.destination_id = $2 THEN e.quantity ELSE 0 END
			- CASE WHEN e.source_kind = $1 AND e.source_id = $2 THEN e.quantity ELSE 0 END
		), 0)
		FROM movement_ledger e
		WHERE e.item_type_id = $3 AND e.status = 'accepted'
	`

	var qty int64

	if err := s.db.QueryRowContext(ctx, query, loc.Kind, loc.ID, itemTypeID).Scan(&qty); err != nil {
		return 0, fmt.Errorf("summing ledger: %w", err)
	}

	return qty, nil
}

// RecordedQuantity sums the live NORMAL records at a location.
func (s *Store) RecordedQuantity(ctx context.Context, loc party.Party, itemTypeID uuid.UUID) (int64, error) {
	return AvailableQuantity(ctx, s.db, loc, itemTypeID)
}

func (s *Store) DiscrepancyQuantity(ctx context.Context, loc party.Party, itemTypeID uuid.UUID, status inventory.RecordStatus) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0) FROM inventory_records
		WHERE location_kind = $1 AND location_id = $2 AND item_type_id = $3
		  AND status = $4 AND NOT resolved
	`

	var qty int64

	if err := s.db.QueryRowContext(ctx, query, loc.Kind, loc.ID, itemTypeID, status).Scan(&qty); err != nil {
		return 0, fmt.Errorf("summing discrepancies: %w", err)
	}

	return qty, nil
}

// ResolveDiscrepancy flips the resolved flag exactly once and annotates
// the linked ledger entry. Quantities are never touched.
func (s *Store) ResolveDiscrepancy(ctx context.Context, id uuid.UUID, resolvedBy, notes string) (*inventory.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	rec, err := scanRecord(tx.QueryRowContext(ctx,
		`SELECT `+selectRecordColumns+` FROM inventory_records r WHERE r.id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, inventory.ErrRecordNotFound
		}

		return nil, fmt.Errorf("locking inventory record: %w", err)
	}

	if !rec.Status.IsDiscrepancy() {
		return nil, inventory.ErrNotDiscrepancy
	}

	if rec.Resolved {
		return nil, inventory.ErrAlreadyResolved
	}

	now := time.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`UPDATE inventory_records SET resolved = TRUE, resolved_by = $1, resolved_at = $2, notes = $3 WHERE id = $4`,
		resolvedBy, now, notes, id,
	)
	if err != nil {
		return nil, fmt.Errorf("resolving discrepancy: %w", err)
	}

	// The shortage/surplus entry carries the same source item linkage.
	if rec.SourceItemID != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE movement_ledger SET resolved_by = $1, resolved_at = $2
			 WHERE item_id = $3 AND kind IN ('shortage', 'surplus')`,
			resolvedBy, now, *rec.SourceItemID,
		)
		if err != nil {
			return nil, fmt.Errorf("annotating ledger entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing resolution: %w", err)
	}

	rec.Resolved = true
	rec.ResolvedBy = &resolvedBy
	rec.ResolvedAt = &now
	rec.Notes = notes

	return rec, nil
}

// ConsumeStock deducts live stock and books the usage, atomically.
func (s *Store) ConsumeStock(ctx context.Context, params inventory.ConsumeParams) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := Deduct(ctx, tx, params.Location, params.ItemTypeID, params.Quantity); err != nil {
		return err
	}

	now := time.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inventory_records (id, location_kind, location_id, item_type_id, quantity, status, resolved, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, 'consumed', TRUE, $6, $7)`,
		uuid.New(), params.Location.Kind, params.Location.ID, params.ItemTypeID, params.Quantity, params.Notes, now,
	)
	if err != nil {
		return fmt.Errorf("recording consumption: %w", err)
	}

	entry := &inventory.LedgerEntry{
		ID:         uuid.New(),
		ItemTypeID: params.ItemTypeID,
		Quantity:   params.Quantity,
		Source:     &params.Location,
		Kind:       inventory.KindConsumption,
		Status:     inventory.EntryAccepted,
		MovedAt:    now,
		RecordedBy: params.ActingUser,
	}

	if err := InsertEntry(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing consumption: %w", err)
	}

	return nil
}

// AddOpeningStock seeds NORMAL records plus OPENING ledger entries for
// the whole batch in one transaction.
func (s *Store) AddOpeningStock(ctx context.Context, params []inventory.OpeningStockParams) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	for _, p := range params {
		if _, err := Credit(ctx, tx, p.Location, p.ItemTypeID, p.Quantity, nil); err != nil {
			return err
		}

		entry := &inventory.LedgerEntry{
			ID:          uuid.New(),
			ItemTypeID:  p.ItemTypeID,
			Quantity:    p.Quantity,
			Destination: &p.Location,
			Kind:        inventory.KindOpening,
			Status:      inventory.EntryAccepted,
			MovedAt:     now,
			RecordedBy:  p.ActingUser,
		}

		if err := InsertEntry(ctx, tx, entry); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing opening stock: %w", err)
	}

	return nil
}

// AvailableQuantity sums the live NORMAL records at a location. Run it
// against the acceptance transaction to re-check availability under the
// same lock as the deduction.
func AvailableQuantity(ctx context.Context, q DBTX, loc party.Party, itemTypeID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0) FROM inventory_records
		WHERE location_kind = $1 AND location_id = $2 AND item_type_id = $3 AND status = 'normal'
	`

	var qty int64

	if err := q.QueryRowContext(ctx, query, loc.Kind, loc.ID, itemTypeID).Scan(&qty); err != nil {
		return 0, fmt.Errorf("summing available stock: %w", err)
	}

	return qty, nil
}

// Deduct removes qty units from a location's NORMAL records, oldest
// first. Exhausted records are deleted; a partially-consumed record is
// reduced in place. Availability is checked against the rows locked
// here, not against any earlier read.
func Deduct(ctx context.Context, q DBTX, loc party.Party, itemTypeID uuid.UUID, qty int64) error {
	if qty == 0 {
		return nil
	}

	rows, err := q.QueryContext(ctx,
		`SELECT id, quantity FROM inventory_records
		 WHERE location_kind = $1 AND location_id = $2 AND item_type_id = $3 AND status = 'normal'
		 ORDER BY created_at, id
		 FOR UPDATE`,
		loc.Kind, loc.ID, itemTypeID,
	)
	if err != nil {
		return fmt.Errorf("locking stock records: %w", err)
	}
	defer rows.Close()

	type stockRow struct {
		id  uuid.UUID
		qty int64
	}

	var (
		stock     []stockRow
		available int64
	)

	for rows.Next() {
		var r stockRow
		if err := rows.Scan(&r.id, &r.qty); err != nil {
			return fmt.Errorf("scanning stock record: %w", err)
		}

		stock = append(stock, r)
		available += r.qty
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading stock records: %w", err)
	}

	if available < qty {
		return fmt.Errorf("have %d, need %d at %s: %w", available, qty, loc, inventory.ErrInsufficientStock)
	}

	remaining := qty

	for _, r := range stock {
		if remaining == 0 {
			break
		}

		if r.qty <= remaining {
			if _, err := q.ExecContext(ctx, `DELETE FROM inventory_records WHERE id = $1`, r.id); err != nil {
				return fmt.Errorf("deleting exhausted record: %w", err)
			}

			remaining -= r.qty

			continue
		}

		if _, err := q.ExecContext(ctx,
			`UPDATE inventory_records SET quantity = quantity - $1 WHERE id = $2`, remaining, r.id,
		); err != nil {
			return fmt.Errorf("reducing stock record: %w", err)
		}

		remaining = 0
	}

	return nil
}

// Credit books qty units of NORMAL stock at a location as a fresh
// record. A zero quantity books nothing and returns uuid.Nil.
func Credit(ctx context.Context, q DBTX, loc party.Party, itemTypeID uuid.UUID, qty int64, sourceItemID *uuid.UUID) (uuid.UUID, error) {
	if qty == 0 {
		return uuid.Nil, nil
	}

	id := uuid.New()

	_, err := q.ExecContext(ctx,
		`INSERT INTO inventory_records (id, location_kind, location_id, item_type_id, quantity, status, resolved, source_item_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, 'normal', FALSE, $6, $7)`,
		id, loc.Kind, loc.ID, itemTypeID, qty, sourceItemID, time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("crediting stock: %w", err)
	}

	return id, nil
}

// InsertDiscrepancy books an unresolved MISSING or OVER_RECEIVED record.
func InsertDiscrepancy(ctx context.Context, q DBTX, loc party.Party, itemTypeID uuid.UUID, qty int64, status inventory.RecordStatus, sourceItemID uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()

	_, err := q.ExecContext(ctx,
		`INSERT INTO inventory_records (id, location_kind, location_id, item_type_id, quantity, status, resolved, source_item_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8)`,
		id, loc.Kind, loc.ID, itemTypeID, qty, status, sourceItemID, time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("recording discrepancy: %w", err)
	}

	return id, nil
}

// InsertEntry appends one immutable row to the movement ledger.
func InsertEntry(ctx context.Context, q DBTX, e *inventory.LedgerEntry) error {
	var (
		srcKind, dstKind *party.Kind
		srcID, dstID     *uuid.UUID
	)

	if e.Source != nil {
		srcKind, srcID = &e.Source.Kind, &e.Source.ID
	}

	if e.Destination != nil {
		dstKind, dstID = &e.Destination.Kind, &e.Destination.ID
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO movement_ledger (id, transfer_id, item_id, item_type_id, quantity,
		   source_kind, source_id, destination_kind, destination_id,
		   kind, status, moved_at, recorded_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		e.ID, e.TransferID, e.ItemID, e.ItemTypeID, e.Quantity,
		srcKind, srcID, dstKind, dstID,
		e.Kind, e.Status, e.MovedAt, e.RecordedBy, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("appending ledger entry: %w", err)
	}

	return nil
}
