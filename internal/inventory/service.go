package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/party"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]*LedgerEntry, error)

	// LedgerQuantity is the signed sum over accepted entries at a location.
	LedgerQuantity(ctx context.Context, loc party.Party, itemTypeID uuid.UUID) (int64, error)
	// RecordedQuantity is the sum of live NORMAL record quantities.
	RecordedQuantity(ctx context.Context, loc party.Party, itemTypeID uuid.UUID) (int64, error)
	// DiscrepancyQuantity sums unresolved discrepancy records of one status.
	DiscrepancyQuantity(ctx context.Context, loc party.Party, itemTypeID uuid.UUID, status RecordStatus) (int64, error)

	ResolveDiscrepancy(ctx context.Context, id uuid.UUID, resolvedBy, notes string) (*Record, error)
	ConsumeStock(ctx context.Context, params ConsumeParams) error
	AddOpeningStock(ctx context.Context, params []OpeningStockParams) error
}

type RecordFilter struct {
	Location   *party.Party
	ItemTypeID *uuid.UUID
	Status     *RecordStatus
	// Unresolved restricts to open MISSING and OVER_RECEIVED records.
	Unresolved bool
}

type EntryFilter struct {
	Location   *party.Party
	ItemTypeID *uuid.UUID
	TransferID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

type ConsumeParams struct {
	Location   party.Party
	ItemTypeID uuid.UUID
	Quantity   int64
	ActingUser string
	Notes      string
}

type OpeningStockParams struct {
	Location   party.Party
	ItemTypeID uuid.UUID
	Quantity   int64
	ActingUser string
}

// HistoryReport compares the ledger-derived stock with the live record
// quantities for one (location, item type) pair.
type HistoryReport struct {
	Location               party.Party
	ItemTypeID             uuid.UUID
	LedgerQuantity         int64
	RecordedQuantity       int64
	UnresolvedMissing      int64
	UnresolvedOverReceived int64
	Consistent             bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetRecord(ctx, id)
}

func (s *Service) Records(ctx context.Context, filter RecordFilter) ([]*Record, error) {
	return s.repo.ListRecords(ctx, filter)
}

func (s *Service) Ledger(ctx context.Context, filter EntryFilter) ([]*LedgerEntry, error) {
	return s.repo.ListEntries(ctx, filter)
}

// CurrentStock derives the stock level from the movement ledger. The
// ledger, not any record, is the source of truth for this number.
func (s *Service) CurrentStock(ctx context.Context, loc party.Party, itemTypeID uuid.UUID) (int64, error) {
	return s.repo.LedgerQuantity(ctx, loc, itemTypeID)
}

// ValidateHistory recomputes stock from the ledger and compares it with
// the live NORMAL record quantities. A mismatch is returned alongside
// the report as ErrHistoryMismatch; it is never corrected here, since a
// silent fix would hide a real bug or a real physical loss.
func (s *Service) ValidateHistory(ctx context.Context, loc party.Party, itemTypeID uuid.UUID) (*HistoryReport, error) {
	ledgerQty, err := s.repo.LedgerQuantity(ctx, loc, itemTypeID)
	if err != nil {
		return nil, fmt.Errorf("computing ledger quantity: %w", err)
	}

	recordedQty, err := s.repo.RecordedQuantity(ctx, loc, itemTypeID)
	if err != nil {
		return nil, fmt.Errorf("computing recorded quantity: %w", err)
	}

	missing, err := s.repo.DiscrepancyQuantity(ctx, loc, itemTypeID, StatusMissing)
	if err != nil {
		return nil, fmt.Errorf("computing missing quantity: %w", err)
	}

	over, err := s.repo.DiscrepancyQuantity(ctx, loc, itemTypeID, StatusOverReceived)
	if err != nil {
		return nil, fmt.Errorf("computing over-received quantity: %w", err)
	}

	report := &HistoryReport{
		Location:               loc,
		ItemTypeID:             itemTypeID,
		LedgerQuantity:         ledgerQty,
		RecordedQuantity:       recordedQty,
		UnresolvedMissing:      missing,
		UnresolvedOverReceived: over,
		Consistent:             ledgerQty == recordedQty,
	}

	if !report.Consistent {
		return report, fmt.Errorf("ledger says %d, records say %d at %s: %w",
			ledgerQty, recordedQty, loc, ErrHistoryMismatch)
	}

	return report, nil
}

// ResolveDiscrepancy marks a missing or over-received record as
// investigated. It annotates, never mutates quantities or the ledger:
// whatever was lost stays lost on the books.
func (s *Service) ResolveDiscrepancy(ctx context.Context, id uuid.UUID, actingUser, notes string) (*Record, error) {
	if actingUser == "" {
		return nil, fmt.Errorf("acting user is required")
	}

	return s.repo.ResolveDiscrepancy(ctx, id, actingUser, notes)
}

// Consume books consumable usage at a location: live stock is deducted,
// a consumption entry is appended to the ledger, and a CONSUMED audit
// record is kept.
func (s *Service) Consume(ctx context.Context, params ConsumeParams) error {
	if params.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	if !params.Location.Valid() {
		return fmt.Errorf("unknown party kind %q", params.Location.Kind)
	}

	return s.repo.ConsumeStock(ctx, params)
}

// AddOpeningStock seeds initial NORMAL records and matching OPENING
// ledger entries, atomically for the whole batch.
func (s *Service) AddOpeningStock(ctx context.Context, params []OpeningStockParams) error {
	if len(params) == 0 {
		return nil
	}

	for i, p := range params {
		if p.Quantity <= 0 {
			return fmt.Errorf("line %d: quantity must be positive", i+1)
		}

		if !p.Location.Valid() {
			return fmt.Errorf("line %d: unknown party kind %q", i+1, p.Location.Kind)
		}
	}

	return s.repo.AddOpeningStock(ctx, params)
}
