package transfer

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/party"
)

var (
	// ErrNotFound is returned when a transfer does not exist.
	ErrNotFound = errors.New("transfer not found")

	// ErrUnknownParty is returned when the sender or receiver is not in
	// its directory.
	ErrUnknownParty = errors.New("unknown party")

	// ErrDuplicateBatch is returned when the batch number is already bound
	// to an active transfer. Uniqueness is enforced at insert time by the
	// store, never by a prior read.
	ErrDuplicateBatch = errors.New("duplicate batch number")

	// ErrInvalidState is returned when accepting or rejecting a transfer
	// that already left the pending state.
	ErrInvalidState = errors.New("transfer is not pending")

	// ErrMissingReport is returned when acceptance data omits an item.
	ErrMissingReport = errors.New("missing reported quantity for item")
)

// Status is the lifecycle state of a transfer. A transfer is immutable
// once its status leaves pending, except for discrepancy linkage.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Purpose classifies why the transfer happened. Classification only; no
// behavior branches on it.
type Purpose string

const (
	PurposeGeneral     Purpose = "general"
	PurposeConsumable  Purpose = "consumable"
	PurposeMaintenance Purpose = "maintenance"
)

// Transfer is one transfer intent between two inventory holders. The
// initiator is whichever of the two parties originally stated the item
// quantities; the counterparty's view arrives at acceptance time.
type Transfer struct {
	ID              uuid.UUID
	BatchNumber     int64
	Sender          party.Party
	Receiver        party.Party
	InitiatorID     uuid.UUID // equals Sender.ID or Receiver.ID
	Purpose         Purpose
	Status          Status
	Items           []Item // creation order
	TransferDate    time.Time
	RejectionReason string
	AcceptanceNote  string
	AddedBy         string
	ApprovedBy      *string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// Initiator returns the initiating party.
func (t *Transfer) Initiator() party.Party {
	if t.InitiatorID == t.Receiver.ID {
		return t.Receiver
	}

	return t.Sender
}

// SenderInitiated reports whether the sender stated the original claim.
func (t *Transfer) SenderInitiated() bool {
	return t.InitiatorID == t.Sender.ID
}

// Item is one line of a transfer. Quantity is the amount set at creation
// time and is always read as the initiator's claim; ReceivedQuantity is
// set at acceptance time and is always the counterparty's claim.
type Item struct {
	ID               uuid.UUID
	TransferID       uuid.UUID
	ItemTypeID       uuid.UUID
	Quantity         int64
	ReceivedQuantity *int64
	Status           Status
	RejectionReason  string

	// Joined for display, not always populated.
	ItemTypeName string
}
