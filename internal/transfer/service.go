package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transfer
type Repository interface {
	// CreateTransfer persists the transfer and its items atomically. A
	// batch number already bound to an active transfer fails with
	// ErrDuplicateBatch, detected by the store's uniqueness constraint at
	// insert time.
	CreateTransfer(ctx context.Context, t *Transfer) error
	GetTransfer(ctx context.Context, id uuid.UUID) (*Transfer, error)
	ListTransfers(ctx context.Context, filter ListFilter) ([]*Transfer, error)

	// AvailableStock is the read-only availability check used at creation
	// time. It takes no locks.
	AvailableStock(ctx context.Context, loc party.Party, itemTypeID uuid.UUID) (int64, error)

	// BeginAccept opens the acceptance transaction and locks the transfer
	// row. Everything the acceptance does happens inside it or not at all.
	BeginAccept(ctx context.Context, id uuid.UUID) (AcceptTx, error)

	// RejectTransfer is a status-guarded transition: it only succeeds if
	// the transfer is still pending, and performs no inventory or ledger
	// mutation of any kind.
	RejectTransfer(ctx context.Context, id uuid.UUID, reason, actingUser string) (*Transfer, error)
}

// AcceptTx is the unit of work for one acceptance. Partial application
// is not a failure mode this system has: either every deduction, credit,
// ledger entry, and status change commits, or none do.
type AcceptTx interface {
	// Transfer returns the locked transfer with its items.
	Transfer(ctx context.Context) (*Transfer, error)

	// Deduct removes stock at a location, re-checking availability under
	// the same lock. Fails with inventory.ErrInsufficientStock.
	Deduct(ctx context.Context, loc party.Party, itemTypeID uuid.UUID, qty int64) error

	// Credit books stock at a location, linked to the transfer item.
	Credit(ctx context.Context, loc party.Party, itemTypeID uuid.UUID, qty int64, sourceItemID uuid.UUID) error

	// RecordDiscrepancy books an unresolved shortage or surplus record.
	RecordDiscrepancy(ctx context.Context, loc party.Party, itemTypeID uuid.UUID, qty int64, status inventory.RecordStatus, sourceItemID uuid.UUID) error

	// AppendMovement writes one ledger entry.
	AppendMovement(ctx context.Context, e *inventory.LedgerEntry) error

	// SaveItem persists an item's acceptance outcome.
	SaveItem(ctx context.Context, it Item) error

	// Complete persists the transfer's terminal state.
	Complete(ctx context.Context, t *Transfer) error

	Commit() error
	Rollback() error
}

// PartyDirectory is the narrow slice of the party service the engine
// needs: existence checks only.
type PartyDirectory interface {
	Exists(ctx context.Context, p party.Party) (bool, error)
}

type Service struct {
	repo    Repository
	parties PartyDirectory
}

func NewService(repo Repository, parties PartyDirectory) *Service {
	return &Service{repo: repo, parties: parties}
}

type CreateItem struct {
	ItemTypeID uuid.UUID
	Quantity   int64
}

type CreateParams struct {
	Sender       party.Party
	Receiver     party.Party
	InitiatorID  uuid.UUID
	BatchNumber  int64
	Purpose      Purpose
	TransferDate time.Time
	Items        []CreateItem
	ActingUser   string
}

type ListFilter struct {
	Status *Status
	Party  *party.Party
}

type AcceptParams struct {
	// Quantities maps item id to the counterparty's reported quantity.
	Quantities map[uuid.UUID]int64
	// NotReceived marks items the counterparty reports as never received,
	// overriding any quantity to zero.
	NotReceived map[uuid.UUID]bool
	ActingUser  string
	Comment     string
}

// Create records transfer intent. It validates both parties, enforces
// batch uniqueness, and, when the sender itself initiated, checks that
// the sender can plausibly cover every line. No inventory or ledger
// mutation happens here: creation records what the initiator claims,
// nothing more.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transfer, error) {
	if err := s.validateCreate(ctx, params); err != nil {
		return nil, err
	}

	t := &Transfer{
		ID:           uuid.New(),
		BatchNumber:  params.BatchNumber,
		Sender:       params.Sender,
		Receiver:     params.Receiver,
		InitiatorID:  params.InitiatorID,
		Purpose:      params.Purpose,
		Status:       StatusPending,
		TransferDate: params.TransferDate,
		AddedBy:      params.ActingUser,
	}

	for _, it := range params.Items {
		t.Items = append(t.Items, Item{
			ID:         uuid.New(),
			TransferID: t.ID,
			ItemTypeID: it.ItemTypeID,
			Quantity:   it.Quantity,
			Status:     StatusPending,
		})
	}

	if err := s.repo.CreateTransfer(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) validateCreate(ctx context.Context, params CreateParams) error {
	if !params.Sender.Valid() || !params.Receiver.Valid() {
		return fmt.Errorf("sender and receiver must be warehouse or equipment parties")
	}

	if params.Sender.Equal(params.Receiver) {
		return fmt.Errorf("cannot transfer to the same party")
	}

	if params.InitiatorID != params.Sender.ID && params.InitiatorID != params.Receiver.ID {
		return fmt.Errorf("initiator %s is neither sender nor receiver", params.InitiatorID)
	}

	if len(params.Items) == 0 {
		return fmt.Errorf("transfer needs at least one item")
	}

	for i, it := range params.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i+1)
		}
	}

	if params.ActingUser == "" {
		return fmt.Errorf("acting user is required")
	}

	switch params.Purpose {
	case PurposeGeneral, PurposeConsumable, PurposeMaintenance:
	default:
		return fmt.Errorf("unknown purpose %q", params.Purpose)
	}

	for _, p := range []party.Party{params.Sender, params.Receiver} {
		ok, err := s.parties.Exists(ctx, p)
		if err != nil {
			return fmt.Errorf("checking party %s: %w", p, err)
		}

		if !ok {
			return fmt.Errorf("%s: %w", p, ErrUnknownParty)
		}
	}

	// Only the sender's own claim is checkable at creation time. When the
	// receiver initiated, the sender has confirmed nothing yet, so there
	// is nothing to check against.
	if params.InitiatorID == params.Sender.ID {
		needed := make(map[uuid.UUID]int64)
		for _, it := range params.Items {
			needed[it.ItemTypeID] += it.Quantity
		}

		for itemTypeID, qty := range needed {
			available, err := s.repo.AvailableStock(ctx, params.Sender, itemTypeID)
			if err != nil {
				return fmt.Errorf("checking availability: %w", err)
			}

			if available < qty {
				return fmt.Errorf("item type %s: have %d, need %d: %w",
					itemTypeID, available, qty, inventory.ErrInsufficientStock)
			}
		}
	}

	return nil
}

// Accept reconciles the counterparty's report against the initiator's
// original claims and commits the resulting inventory state in one
// atomic unit. Inventory always ends up reflecting what both parties
// reported, whether or not the reports agree; disagreement rejects the
// item and books a discrepancy, it does not suppress the movement.
func (s *Service) Accept(ctx context.Context, id uuid.UUID, params AcceptParams) (*Transfer, error) {
	if params.ActingUser == "" {
		return nil, fmt.Errorf("acting user is required")
	}

	atx, err := s.repo.BeginAccept(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("begin accept: %w", err)
	}
	defer atx.Rollback()

	t, err := atx.Transfer(ctx)
	if err != nil {
		return nil, err
	}

	if t.Status != StatusPending {
		return nil, fmt.Errorf("transfer is %s: %w", t.Status, ErrInvalidState)
	}

	now := time.Now().UTC()
	mismatched := 0

	for i := range t.Items {
		it := &t.Items[i]

		reported, ok := params.Quantities[it.ID]
		notReceived := params.NotReceived[it.ID]

		if !ok && !notReceived {
			return nil, fmt.Errorf("item %s: %w", it.ID, ErrMissingReport)
		}

		if !notReceived && reported < 0 {
			return nil, fmt.Errorf("item %s: reported quantity must not be negative", it.ID)
		}

		outcome := Reconcile(t, *it, reported, notReceived)

		if err := s.applyItem(ctx, atx, t, it, outcome, notReceived, now, params.ActingUser); err != nil {
			return nil, err
		}

		if !outcome.Matched {
			mismatched++
		}
	}

	if mismatched == 0 {
		t.Status = StatusAccepted
	} else {
		t.Status = StatusRejected
		t.RejectionReason = fmt.Sprintf("%d of %d items failed reconciliation", mismatched, len(t.Items))
	}

	t.CompletedAt = &now
	t.ApprovedBy = &params.ActingUser
	t.AcceptanceNote = params.Comment

	if err := atx.Complete(ctx, t); err != nil {
		return nil, fmt.Errorf("completing transfer: %w", err)
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("committing acceptance: %w", err)
	}

	return t, nil
}

// applyItem mutates inventory for one reconciled item: debit the
// sender's claim, credit the receiver's claim, ledger both, and book
// whatever discrepancy the claims left behind.
func (s *Service) applyItem(ctx context.Context, atx AcceptTx, t *Transfer, it *Item, outcome Outcome, notReceived bool, now time.Time, actingUser string) error {
	if err := atx.Deduct(ctx, t.Sender, it.ItemTypeID, outcome.Claims.Sender); err != nil {
		return err
	}

	if err := atx.Credit(ctx, t.Receiver, it.ItemTypeID, outcome.Claims.Receiver, it.ID); err != nil {
		return err
	}

	if outcome.Claims.Sender > 0 {
		entry := &inventory.LedgerEntry{
			ID:         uuid.New(),
			TransferID: &t.ID,
			ItemID:     &it.ID,
			ItemTypeID: it.ItemTypeID,
			Quantity:   outcome.Claims.Sender,
			Source:     &t.Sender,
			Kind:       inventory.KindDispatch,
			Status:     inventory.EntryAccepted,
			MovedAt:    now,
			RecordedBy: actingUser,
		}
		if err := atx.AppendMovement(ctx, entry); err != nil {
			return err
		}
	}

	if outcome.Claims.Receiver > 0 {
		entry := &inventory.LedgerEntry{
			ID:          uuid.New(),
			TransferID:  &t.ID,
			ItemID:      &it.ID,
			ItemTypeID:  it.ItemTypeID,
			Quantity:    outcome.Claims.Receiver,
			Destination: &t.Receiver,
			Kind:        inventory.KindReceipt,
			Status:      inventory.EntryAccepted,
			MovedAt:     now,
			RecordedBy:  actingUser,
		}
		if err := atx.AppendMovement(ctx, entry); err != nil {
			return err
		}
	}

	counterparty := outcome.Claims.Receiver
	if !t.SenderInitiated() {
		counterparty = outcome.Claims.Sender
	}

	it.ReceivedQuantity = &counterparty

	if outcome.Matched {
		it.Status = StatusAccepted
	} else {
		it.Status = StatusRejected
		it.RejectionReason = "quantity mismatch"

		if notReceived {
			it.RejectionReason = "not received"
		}

		d := outcome.Discrepancy

		if err := atx.RecordDiscrepancy(ctx, d.Location, it.ItemTypeID, d.Quantity, d.Status, it.ID); err != nil {
			return err
		}

		kind := inventory.KindShortage
		status := inventory.EntryMissing

		if d.Status == inventory.StatusOverReceived {
			kind = inventory.KindSurplus
			status = inventory.EntryOverReceived
		}

		entry := &inventory.LedgerEntry{
			ID:          uuid.New(),
			TransferID:  &t.ID,
			ItemID:      &it.ID,
			ItemTypeID:  it.ItemTypeID,
			Quantity:    d.Quantity,
			Destination: &d.Location,
			Kind:        kind,
			Status:      status,
			MovedAt:     now,
			RecordedBy:  actingUser,
		}
		if err := atx.AppendMovement(ctx, entry); err != nil {
			return err
		}
	}

	return atx.SaveItem(ctx, *it)
}

// Reject declines a pending transfer outright. Nothing was confirmed by
// anyone, so this path is guaranteed side-effect-free: no inventory
// record or ledger entry will ever reference the transfer.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason, actingUser string) (*Transfer, error) {
	if actingUser == "" {
		return nil, fmt.Errorf("acting user is required")
	}

	if reason == "" {
		return nil, fmt.Errorf("rejection reason is required")
	}

	return s.repo.RejectTransfer(ctx, id, reason, actingUser)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transfer, error) {
	return s.repo.GetTransfer(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transfer, error) {
	return s.repo.ListTransfers(ctx, filter)
}
