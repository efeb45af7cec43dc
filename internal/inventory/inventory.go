package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/party"
)

var (
	// ErrRecordNotFound is returned when an inventory record does not exist.
	ErrRecordNotFound = errors.New("inventory record not found")

	// ErrInsufficientStock is returned when a deduction exceeds the live
	// stock at a location.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrAlreadyResolved is returned when resolving a discrepancy twice.
	ErrAlreadyResolved = errors.New("discrepancy already resolved")

	// ErrNotDiscrepancy is returned when resolving a record that is not a
	// missing or over-received discrepancy.
	ErrNotDiscrepancy = errors.New("record is not a discrepancy")

	// ErrHistoryMismatch is returned when the ledger-derived stock and the
	// live record quantities diverge. It is reported, never auto-corrected.
	ErrHistoryMismatch = errors.New("movement history does not match inventory records")
)

// RecordStatus classifies an inventory record.
type RecordStatus string

const (
	// StatusNormal marks usable stock.
	StatusNormal RecordStatus = "normal"
	// StatusMissing marks quantity the sender claims to have shipped but
	// the receiver never acknowledged.
	StatusMissing RecordStatus = "missing"
	// StatusOverReceived marks quantity booked in excess of what was
	// originally claimed.
	StatusOverReceived RecordStatus = "over_received"
	// StatusConsumed is the audit trail of consumable usage.
	StatusConsumed RecordStatus = "consumed"
)

// IsDiscrepancy reports whether the status represents a shortage or
// surplus awaiting investigation.
func (s RecordStatus) IsDiscrepancy() bool {
	return s == StatusMissing || s == StatusOverReceived
}

// Record is one quantity of one item type held at one location. NORMAL
// records are the stock deductions run against; they are deleted when
// their quantity reaches zero. Discrepancy and consumption records stay
// for audit.
type Record struct {
	ID           uuid.UUID
	Location     party.Party
	ItemTypeID   uuid.UUID
	Quantity     int64
	Status       RecordStatus
	Resolved     bool
	SourceItemID *uuid.UUID // transfer item that produced this record
	Notes        string
	ResolvedBy   *string
	ResolvedAt   *time.Time
	CreatedAt    time.Time

	// Joined for display, not always populated.
	ItemTypeName string
	LocationName string
}

// EntryStatus classifies a movement ledger entry. Only accepted entries
// count toward stock; discrepancy entries annotate the history.
type EntryStatus string

const (
	EntryAccepted     EntryStatus = "accepted"
	EntryMissing      EntryStatus = "missing"
	EntryOverReceived EntryStatus = "over_received"
)

// MovementKind says why a quantity moved.
type MovementKind string

const (
	// KindDispatch is stock leaving the sender, sized by the sender's claim.
	KindDispatch MovementKind = "dispatch"
	// KindReceipt is stock booked at the receiver, sized by the receiver's claim.
	KindReceipt MovementKind = "receipt"
	// KindShortage annotates a missing discrepancy at the sender.
	KindShortage MovementKind = "shortage"
	// KindSurplus annotates an over-received discrepancy at the receiver.
	KindSurplus MovementKind = "surplus"
	// KindConsumption is consumable usage at a location.
	KindConsumption MovementKind = "consumption"
	// KindOpening is imported opening stock.
	KindOpening MovementKind = "opening"
)

// LedgerEntry is one immutable movement record. Current stock for a
// (location, item type) pair is the signed sum over accepted entries:
// +quantity where the location is the destination, -quantity where it
// is the source. Entries are never updated except for the resolution
// annotation on discrepancy entries.
type LedgerEntry struct {
	ID          uuid.UUID
	TransferID  *uuid.UUID
	ItemID      *uuid.UUID
	ItemTypeID  uuid.UUID
	Quantity    int64
	Source      *party.Party
	Destination *party.Party
	Kind        MovementKind
	Status      EntryStatus
	MovedAt     time.Time
	RecordedBy  string
	ResolvedBy  *string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
}

// Delta is the signed effect of the entry on stock at loc.
func (e *LedgerEntry) Delta(loc party.Party) int64 {
	if e.Status != EntryAccepted {
		return 0
	}

	var d int64

	if e.Destination != nil && e.Destination.Equal(loc) {
		d += e.Quantity
	}

	if e.Source != nil && e.Source.Equal(loc) {
		d -= e.Quantity
	}

	return d
}
