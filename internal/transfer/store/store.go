package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	invstore "github.com/stocktrail-app/stocktrail/internal/inventory/store"
	"github.com/stocktrail-app/stocktrail/internal/party"
	"github.com/stocktrail-app/stocktrail/internal/transfer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransferColumns = `
	t.id, t.batch_number, t.sender_kind, t.sender_id, t.receiver_kind, t.receiver_id,
	t.initiator_id, t.purpose, t.status, t.transfer_date, t.rejection_reason,
	t.acceptance_comment, t.added_by, t.approved_by, t.created_at, t.completed_at
`

func scanTransfer(s scanner) (*transfer.Transfer, error) {
	var (
		t                        transfer.Transfer
		senderKind, receiverKind string
		rejection, comment       sql.NullString
	)

	if err := s.Scan(
		&t.ID, &t.BatchNumber, &senderKind, &t.Sender.ID, &receiverKind, &t.Receiver.ID,
		&t.InitiatorID, &t.Purpose, &t.Status, &t.TransferDate, &rejection,
		&comment, &t.AddedBy, &t.ApprovedBy, &t.CreatedAt, &t.CompletedAt,
	); err != nil {
		return nil, err
	}

	t.Sender.Kind = party.Kind(senderKind)
	t.Receiver.Kind = party.Kind(receiverKind)
	t.RejectionReason = rejection.String
	t.AcceptanceNote = comment.String

	return &t, nil
}

// isUniqueViolation reports a postgres duplicate-key error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) CreateTransfer(ctx context.Context, t *transfer.Transfer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	t.CreatedAt = now

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transfers (id, batch_number, sender_kind, sender_id, receiver_kind, receiver_id,
		   initiator_id, purpose, status, transfer_date, added_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		t.ID, t.BatchNumber, t.Sender.Kind, t.Sender.ID, t.Receiver.Kind, t.Receiver.ID,
		t.InitiatorID, t.Purpose, t.Status, t.TransferDate, t.AddedBy, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("batch %d: %w", t.BatchNumber, transfer.ErrDuplicateBatch)
		}

		return fmt.Errorf("creating transfer: %w", err)
	}

	for i, it := range t.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO transfer_items (id, transfer_id, item_type_id, quantity, status, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, t.ID, it.ItemTypeID, it.Quantity, it.Status, i,
		)
		if err != nil {
			return fmt.Errorf("creating transfer item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("batch %d: %w", t.BatchNumber, transfer.ErrDuplicateBatch)
		}

		return fmt.Errorf("committing transfer: %w", err)
	}

	return nil
}

func (s *Store) GetTransfer(ctx context.Context, id uuid.UUID) (*transfer.Transfer, error) {
	query := `SELECT ` + selectTransferColumns + ` FROM transfers t WHERE t.id = $1`

	t, err := scanTransfer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transfer.ErrNotFound
		}

		return nil, fmt.Errorf("getting transfer: %w", err)
	}

	if t.Items, err = loadItems(ctx, s.db, id); err != nil {
		return nil, err
	}

	return t, nil
}

func loadItems(ctx context.Context, q invstore.DBTX, transferID uuid.UUID) ([]transfer.Item, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT i.id, i.transfer_id, i.item_type_id, i.quantity, i.received_quantity,
		        i.status, i.rejection_reason, COALESCE(it.name, '')
		 FROM transfer_items i
		 LEFT JOIN item_types it ON it.id = i.item_type_id
		 WHERE i.transfer_id = $1
		 ORDER BY i.position`,
		transferID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading transfer items: %w", err)
	}
	defer rows.Close()

	var items []transfer.Item

	for rows.Next() {
		var (
			it        transfer.Item
			rejection sql.NullString
		)

		if err := rows.Scan(
			&it.ID, &it.TransferID, &it.ItemTypeID, &it.Quantity, &it.ReceivedQuantity,
			&it.Status, &rejection, &it.ItemTypeName,
		); err != nil {
			return nil, fmt.Errorf("scanning transfer item: %w", err)
		}

		it.RejectionReason = rejection.String
		items = append(items, it)
	}

	return items, rows.Err()
}

func (s *Store) ListTransfers(ctx context.Context, filter transfer.ListFilter) ([]*transfer.Transfer, error) {
	query := `SELECT ` + selectTransferColumns + ` FROM transfers t WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND t.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Party != nil {
		query += fmt.Sprintf(
			" AND ((t.sender_kind = $%d AND t.sender_id = $%d) OR (t.receiver_kind = $%d AND t.receiver_id = $%d))",
			argIdx, argIdx+1, argIdx, argIdx+1,
		)

		args = append(args, filter.Party.Kind, filter.Party.ID)
		argIdx += 2
	}

	query += " ORDER BY t.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*transfer.Transfer

	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}

		transfers = append(transfers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range transfers {
		if t.Items, err = loadItems(ctx, s.db, t.ID); err != nil {
			return nil, err
		}
	}

	return transfers, nil
}

func (s *Store) AvailableStock(ctx context.Context, loc party.Party, itemTypeID uuid.UUID) (int64, error) {
	return invstore.AvailableQuantity(ctx, s.db, loc, itemTypeID)
}

func (s *Store) BeginAccept(ctx context.Context, id uuid.UUID) (transfer.AcceptTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &acceptTx{tx: tx, transferID: id}, nil
}

// acceptTx scopes every acceptance write to one database transaction.
// The transfer row is locked on first read, so a concurrent acceptance
// of the same transfer blocks here and then observes the non-pending
// status the winner committed.
type acceptTx struct {
	tx         *sql.Tx
	transferID uuid.UUID
}

func (a *acceptTx) Transfer(ctx context.Context) (*transfer.Transfer, error) {
	query := `SELECT ` + selectTransferColumns + ` FROM transfers t WHERE t.id = $1 FOR UPDATE`

	t, err := scanTransfer(a.tx.QueryRowContext(ctx, query, a.transferID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transfer.ErrNotFound
		}

		return nil, fmt.Errorf("locking transfer: %w", err)
	}

	if t.Items, err = loadItems(ctx, a.tx, a.transferID); err != nil {
		return nil, err
	}

	return t, nil
}

func (a *acceptTx) Deduct(ctx context.Context, loc party.Party, itemTypeID uuid.UUID, qty int64) error {
	return invstore.Deduct(ctx, a.tx, loc, itemTypeID, qty)
}

func (a *acceptTx) Credit(ctx context.Context, loc party.Party, itemTypeID uuid.UUID, qty int64, sourceItemID uuid.UUID) error {
	_, err := invstore.Credit(ctx, a.tx, loc, itemTypeID, qty, &sourceItemID)

	return err
}

func (a *acceptTx) RecordDiscrepancy(ctx context.Context, loc party.Party, itemTypeID uuid.UUID, qty int64, status inventory.RecordStatus, sourceItemID uuid.UUID) error {
	_, err := invstore.InsertDiscrepancy(ctx, a.tx, loc, itemTypeID, qty, status, sourceItemID)

	return err
}

func (a *acceptTx) AppendMovement(ctx context.Context, e *inventory.LedgerEntry) error {
	return invstore.InsertEntry(ctx, a.tx, e)
}

func (a *acceptTx) SaveItem(ctx context.Context, it transfer.Item) error {
	_, err := a.tx.ExecContext(ctx,
		`UPDATE transfer_items SET received_quantity = $1, status = $2, rejection_reason = $3 WHERE id = $4`,
		it.ReceivedQuantity, it.Status, nullString(it.RejectionReason), it.ID,
	)
	if err != nil {
		return fmt.Errorf("saving transfer item: %w", err)
	}

	return nil
}

func (a *acceptTx) Complete(ctx context.Context, t *transfer.Transfer) error {
	_, err := a.tx.ExecContext(ctx,
		`UPDATE transfers SET status = $1, rejection_reason = $2, acceptance_comment = $3,
		   approved_by = $4, completed_at = $5
		 WHERE id = $6`,
		t.Status, nullString(t.RejectionReason), nullString(t.AcceptanceNote),
		t.ApprovedBy, t.CompletedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("completing transfer: %w", err)
	}

	return nil
}

func (a *acceptTx) Commit() error   { return a.tx.Commit() }
func (a *acceptTx) Rollback() error { return a.tx.Rollback() }

// RejectTransfer transitions pending -> rejected with a status-guarded
// update. Losing the race to another accept or reject surfaces as
// ErrInvalidState, and this path never touches inventory or the ledger.
func (s *Store) RejectTransfer(ctx context.Context, id uuid.UUID, reason, actingUser string) (*transfer.Transfer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	res, err := tx.ExecContext(ctx,
		`UPDATE transfers SET status = $1, rejection_reason = $2, approved_by = $3, completed_at = $4
		 WHERE id = $5 AND status = $6`,
		transfer.StatusRejected, reason, actingUser, now, id, transfer.StatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("rejecting transfer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rejecting transfer: %w", err)
	}

	if affected == 0 {
		var status transfer.Status

		err := tx.QueryRowContext(ctx, `SELECT status FROM transfers WHERE id = $1`, id).Scan(&status)
		if err == sql.ErrNoRows {
			return nil, transfer.ErrNotFound
		}

		if err != nil {
			return nil, fmt.Errorf("checking transfer status: %w", err)
		}

		return nil, fmt.Errorf("transfer is %s: %w", status, transfer.ErrInvalidState)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE transfer_items SET status = $1, rejection_reason = $2 WHERE transfer_id = $3`,
		transfer.StatusRejected, reason, id,
	)
	if err != nil {
		return nil, fmt.Errorf("rejecting transfer items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing rejection: %w", err)
	}

	return s.GetTransfer(ctx, id)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
