package transfer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

func makeTransfer(senderInitiated bool) *Transfer {
	sender := party.Warehouse(uuid.New())
	receiver := party.Equipment(uuid.New())

	initiator := sender.ID
	if !senderInitiated {
		initiator = receiver.ID
	}

	return &Transfer{
		ID:          uuid.New(),
		Sender:      sender,
		Receiver:    receiver,
		InitiatorID: initiator,
		Status:      StatusPending,
	}
}

func makeItem(qty int64) Item {
	return Item{ID: uuid.New(), ItemTypeID: uuid.New(), Quantity: qty, Status: StatusPending}
}

func TestReconcileClaimsOrientation(t *testing.T) {
	tests := []struct {
		name            string
		senderInitiated bool
		quantity        int64
		reported        int64
		notReceived     bool
		wantSender      int64
		wantReceiver    int64
	}{
		{
			name:            "sender initiated",
			senderInitiated: true,
			quantity:        20,
			reported:        15,
			wantSender:      20,
			wantReceiver:    15,
		},
		{
			name:            "receiver initiated",
			senderInitiated: false,
			quantity:        10,
			reported:        12,
			wantSender:      12,
			wantReceiver:    10,
		},
		{
			name:            "not received zeroes counterparty report",
			senderInitiated: true,
			quantity:        5,
			reported:        5,
			notReceived:     true,
			wantSender:      5,
			wantReceiver:    0,
		},
		{
			name:            "not received receiver initiated",
			senderInitiated: false,
			quantity:        5,
			reported:        5,
			notReceived:     true,
			wantSender:      0,
			wantReceiver:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := makeTransfer(tt.senderInitiated)
			it := makeItem(tt.quantity)

			claims := ReconcileClaims(tr, it, tt.reported, tt.notReceived)

			assert.Equal(t, tt.wantSender, claims.Sender)
			assert.Equal(t, tt.wantReceiver, claims.Receiver)
		})
	}
}

func TestReconcileCleanMatch(t *testing.T) {
	tr := makeTransfer(true)
	it := makeItem(10)

	outcome := Reconcile(tr, it, 10, false)

	assert.True(t, outcome.Matched)
	assert.Nil(t, outcome.Discrepancy)
	assert.Equal(t, int64(10), outcome.Claims.Sender)
	assert.Equal(t, int64(10), outcome.Claims.Receiver)
}

func TestReconcileShortage(t *testing.T) {
	// Sender claims 20 shipped, receiver acknowledges 15. The sender
	// loses 20 from live stock and 5 of it is booked missing there.
	tr := makeTransfer(true)
	it := makeItem(20)

	outcome := Reconcile(tr, it, 15, false)

	assert.False(t, outcome.Matched)
	assert.Equal(t, int64(20), outcome.Claims.Sender)
	assert.Equal(t, int64(15), outcome.Claims.Receiver)

	require.NotNil(t, outcome.Discrepancy)
	assert.Equal(t, inventory.StatusMissing, outcome.Discrepancy.Status)
	assert.Equal(t, tr.Sender, outcome.Discrepancy.Location)
	assert.Equal(t, int64(5), outcome.Discrepancy.Quantity)
}

func TestReconcileSurplus(t *testing.T) {
	// Receiver requested 10, sender confirms 12 shipped. The sender is
	// debited 12, the receiver credited its requested 10, and the extra
	// 2 turn up as over-received at the receiver.
	tr := makeTransfer(false)
	it := makeItem(10)

	outcome := Reconcile(tr, it, 12, false)

	assert.False(t, outcome.Matched)
	assert.Equal(t, int64(12), outcome.Claims.Sender)
	assert.Equal(t, int64(10), outcome.Claims.Receiver)

	require.NotNil(t, outcome.Discrepancy)
	assert.Equal(t, inventory.StatusOverReceived, outcome.Discrepancy.Status)
	assert.Equal(t, tr.Receiver, outcome.Discrepancy.Location)
	assert.Equal(t, int64(2), outcome.Discrepancy.Quantity)
}

func TestReconcileNotReceived(t *testing.T) {
	tr := makeTransfer(true)
	it := makeItem(8)

	outcome := Reconcile(tr, it, 8, true)

	assert.False(t, outcome.Matched)
	assert.Equal(t, int64(8), outcome.Claims.Sender)
	assert.Equal(t, int64(0), outcome.Claims.Receiver)

	require.NotNil(t, outcome.Discrepancy)
	assert.Equal(t, inventory.StatusMissing, outcome.Discrepancy.Status)
	assert.Equal(t, tr.Sender, outcome.Discrepancy.Location)
	assert.Equal(t, int64(8), outcome.Discrepancy.Quantity)
}

// Mirrored initiators with the same two numbers always disagree by the
// same magnitude; the classification follows who stated the original
// claim. A counterparty reporting more than requested is over-received
// at the receiver, a counterparty acknowledging less than claimed
// shipped is missing at the sender.
func TestReconcileSymmetry(t *testing.T) {
	t.Run("surplus either way", func(t *testing.T) {
		receiverInit := Reconcile(makeTransfer(false), makeItem(10), 12, false)

		require.NotNil(t, receiverInit.Discrepancy)
		assert.Equal(t, inventory.StatusOverReceived, receiverInit.Discrepancy.Status)
		assert.Equal(t, int64(2), receiverInit.Discrepancy.Quantity)

		senderInit := Reconcile(makeTransfer(true), makeItem(12), 10, false)

		require.NotNil(t, senderInit.Discrepancy)
		assert.Equal(t, inventory.StatusMissing, senderInit.Discrepancy.Status)
		assert.Equal(t, int64(2), senderInit.Discrepancy.Quantity)
	})

	t.Run("claims independent of initiator", func(t *testing.T) {
		a := ReconcileClaims(makeTransfer(true), makeItem(20), 15, false)
		b := ReconcileClaims(makeTransfer(false), makeItem(15), 20, false)

		assert.Equal(t, a, b)
	})
}
