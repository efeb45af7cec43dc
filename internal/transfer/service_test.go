package transfer_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
	"github.com/stocktrail-app/stocktrail/internal/transfer"
)

type fixture struct {
	sender   party.Party
	receiver party.Party
	repo     *transfer.MockRepository
	parties  *transfer.MockPartyDirectory
	svc      *transfer.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		sender:   party.Warehouse(uuid.New()),
		receiver: party.Equipment(uuid.New()),
		repo:     transfer.NewMockRepository(ctrl),
		parties:  transfer.NewMockPartyDirectory(ctrl),
	}

	f.svc = transfer.NewService(f.repo, f.parties)

	return f
}

func (f *fixture) createParams(initiator uuid.UUID, items ...transfer.CreateItem) transfer.CreateParams {
	return transfer.CreateParams{
		Sender:       f.sender,
		Receiver:     f.receiver,
		InitiatorID:  initiator,
		BatchNumber:  42,
		Purpose:      transfer.PurposeGeneral,
		TransferDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Items:        items,
		ActingUser:   "alice",
	}
}

func (f *fixture) expectPartiesExist() {
	f.parties.EXPECT().Exists(gomock.Any(), f.sender).Return(true, nil)
	f.parties.EXPECT().Exists(gomock.Any(), f.receiver).Return(true, nil)
}

func TestService_Create(t *testing.T) {
	t.Run("receiver initiated records intent without stock check", func(t *testing.T) {
		f := newFixture(t)
		f.expectPartiesExist()

		var created *transfer.Transfer

		f.repo.EXPECT().
			CreateTransfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *transfer.Transfer) error {
				created = tr
				return nil
			})

		params := f.createParams(f.receiver.ID, transfer.CreateItem{ItemTypeID: uuid.New(), Quantity: 10})

		got, err := f.svc.Create(context.Background(), params)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Same(t, got, created)

		assert.Equal(t, transfer.StatusPending, got.Status)
		assert.Equal(t, "alice", got.AddedBy)
		require.Len(t, got.Items, 1)
		assert.Equal(t, transfer.StatusPending, got.Items[0].Status)
		assert.Equal(t, int64(10), got.Items[0].Quantity)
		assert.Nil(t, got.Items[0].ReceivedQuantity)
	})

	t.Run("sender initiated checks availability per item type", func(t *testing.T) {
		f := newFixture(t)
		f.expectPartiesExist()

		itemType := uuid.New()

		// Two lines of the same type must be covered together.
		f.repo.EXPECT().
			AvailableStock(gomock.Any(), f.sender, itemType).
			Return(int64(10), nil)

		params := f.createParams(f.sender.ID,
			transfer.CreateItem{ItemTypeID: itemType, Quantity: 6},
			transfer.CreateItem{ItemTypeID: itemType, Quantity: 6},
		)

		_, err := f.svc.Create(context.Background(), params)
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
	})

	t.Run("sender initiated with cover succeeds", func(t *testing.T) {
		f := newFixture(t)
		f.expectPartiesExist()

		itemType := uuid.New()

		f.repo.EXPECT().
			AvailableStock(gomock.Any(), f.sender, itemType).
			Return(int64(12), nil)
		f.repo.EXPECT().
			CreateTransfer(gomock.Any(), gomock.Any()).
			Return(nil)

		params := f.createParams(f.sender.ID, transfer.CreateItem{ItemTypeID: itemType, Quantity: 12})

		_, err := f.svc.Create(context.Background(), params)
		assert.NoError(t, err)
	})

	t.Run("unknown party", func(t *testing.T) {
		f := newFixture(t)
		f.parties.EXPECT().Exists(gomock.Any(), f.sender).Return(false, nil)

		params := f.createParams(f.receiver.ID, transfer.CreateItem{ItemTypeID: uuid.New(), Quantity: 1})

		_, err := f.svc.Create(context.Background(), params)
		assert.ErrorIs(t, err, transfer.ErrUnknownParty)
	})

	t.Run("duplicate batch surfaces from the store", func(t *testing.T) {
		f := newFixture(t)
		f.expectPartiesExist()

		f.repo.EXPECT().
			CreateTransfer(gomock.Any(), gomock.Any()).
			Return(transfer.ErrDuplicateBatch)

		params := f.createParams(f.receiver.ID, transfer.CreateItem{ItemTypeID: uuid.New(), Quantity: 1})

		_, err := f.svc.Create(context.Background(), params)
		assert.ErrorIs(t, err, transfer.ErrDuplicateBatch)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)

		item := transfer.CreateItem{ItemTypeID: uuid.New(), Quantity: 5}

		tests := []struct {
			name   string
			mutate func(p *transfer.CreateParams)
		}{
			{"same party", func(p *transfer.CreateParams) { p.Receiver = p.Sender }},
			{"initiator neither party", func(p *transfer.CreateParams) { p.InitiatorID = uuid.New() }},
			{"no items", func(p *transfer.CreateParams) { p.Items = nil }},
			{"zero quantity", func(p *transfer.CreateParams) { p.Items = []transfer.CreateItem{{ItemTypeID: uuid.New()}} }},
			{"negative quantity", func(p *transfer.CreateParams) {
				p.Items = []transfer.CreateItem{{ItemTypeID: uuid.New(), Quantity: -4}}
			}},
			{"missing user", func(p *transfer.CreateParams) { p.ActingUser = "" }},
			{"bad purpose", func(p *transfer.CreateParams) { p.Purpose = "smuggling" }},
			{"bad party kind", func(p *transfer.CreateParams) { p.Sender.Kind = "truck" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				params := f.createParams(f.receiver.ID, item)
				tt.mutate(&params)

				_, err := f.svc.Create(context.Background(), params)
				assert.Error(t, err)
			})
		}
	})
}

// acceptFixture wires a locked transfer behind a mock acceptance
// transaction.
type acceptFixture struct {
	*fixture
	atx *transfer.MockAcceptTx
	tr  *transfer.Transfer
}

func newAcceptFixture(t *testing.T, senderInitiated bool, quantities ...int64) *acceptFixture {
	f := newFixture(t)
	ctrl := gomock.NewController(t)

	initiator := f.sender.ID
	if !senderInitiated {
		initiator = f.receiver.ID
	}

	tr := &transfer.Transfer{
		ID:           uuid.New(),
		BatchNumber:  7,
		Sender:       f.sender,
		Receiver:     f.receiver,
		InitiatorID:  initiator,
		Purpose:      transfer.PurposeGeneral,
		Status:       transfer.StatusPending,
		TransferDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		AddedBy:      "alice",
	}

	for _, qty := range quantities {
		tr.Items = append(tr.Items, transfer.Item{
			ID:         uuid.New(),
			TransferID: tr.ID,
			ItemTypeID: uuid.New(),
			Quantity:   qty,
			Status:     transfer.StatusPending,
		})
	}

	af := &acceptFixture{
		fixture: f,
		atx:     transfer.NewMockAcceptTx(ctrl),
		tr:      tr,
	}

	f.repo.EXPECT().BeginAccept(gomock.Any(), tr.ID).Return(af.atx, nil)
	af.atx.EXPECT().Transfer(gomock.Any()).Return(tr, nil)
	af.atx.EXPECT().Rollback().Return(nil)

	return af
}

func report(items []transfer.Item, quantities ...int64) transfer.AcceptParams {
	params := transfer.AcceptParams{
		Quantities:  make(map[uuid.UUID]int64),
		NotReceived: make(map[uuid.UUID]bool),
		ActingUser:  "bob",
	}

	for i, it := range items {
		params.Quantities[it.ID] = quantities[i]
	}

	return params
}

func TestService_AcceptClean(t *testing.T) {
	af := newAcceptFixture(t, true, 10)
	it := af.tr.Items[0]

	af.atx.EXPECT().Deduct(gomock.Any(), af.sender, it.ItemTypeID, int64(10)).Return(nil)
	af.atx.EXPECT().Credit(gomock.Any(), af.receiver, it.ItemTypeID, int64(10), it.ID).Return(nil)

	var entries []*inventory.LedgerEntry

	af.atx.EXPECT().
		AppendMovement(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, e *inventory.LedgerEntry) error {
			entries = append(entries, e)
			return nil
		})

	af.atx.EXPECT().
		SaveItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved transfer.Item) error {
			assert.Equal(t, transfer.StatusAccepted, saved.Status)
			require.NotNil(t, saved.ReceivedQuantity)
			assert.Equal(t, int64(10), *saved.ReceivedQuantity)
			return nil
		})

	af.atx.EXPECT().Complete(gomock.Any(), af.tr).Return(nil)
	af.atx.EXPECT().Commit().Return(nil)

	got, err := af.svc.Accept(context.Background(), af.tr.ID, report(af.tr.Items, 10))
	require.NoError(t, err)

	assert.Equal(t, transfer.StatusAccepted, got.Status)
	assert.Empty(t, got.RejectionReason)
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, "bob", *got.ApprovedBy)

	// Conservation: one dispatch out of the sender, one receipt into the
	// receiver, same quantity, both counting toward stock.
	require.Len(t, entries, 2)

	dispatch, receipt := entries[0], entries[1]
	assert.Equal(t, inventory.KindDispatch, dispatch.Kind)
	assert.Equal(t, af.sender, *dispatch.Source)
	assert.Equal(t, int64(10), dispatch.Quantity)
	assert.Equal(t, inventory.EntryAccepted, dispatch.Status)

	assert.Equal(t, inventory.KindReceipt, receipt.Kind)
	assert.Equal(t, af.receiver, *receipt.Destination)
	assert.Equal(t, int64(10), receipt.Quantity)
	assert.Equal(t, inventory.EntryAccepted, receipt.Status)
}

func TestService_AcceptShortage(t *testing.T) {
	// A claims 20 shipped, B acknowledges 15: A loses 20, B gains 15,
	// 5 booked missing at A, item rejected, transfer rejected.
	af := newAcceptFixture(t, true, 20)
	it := af.tr.Items[0]

	af.atx.EXPECT().Deduct(gomock.Any(), af.sender, it.ItemTypeID, int64(20)).Return(nil)
	af.atx.EXPECT().Credit(gomock.Any(), af.receiver, it.ItemTypeID, int64(15), it.ID).Return(nil)
	af.atx.EXPECT().
		RecordDiscrepancy(gomock.Any(), af.sender, it.ItemTypeID, int64(5), inventory.StatusMissing, it.ID).
		Return(nil)

	var kinds []inventory.MovementKind

	af.atx.EXPECT().
		AppendMovement(gomock.Any(), gomock.Any()).
		Times(3).
		DoAndReturn(func(_ context.Context, e *inventory.LedgerEntry) error {
			kinds = append(kinds, e.Kind)

			if e.Kind == inventory.KindShortage {
				assert.Equal(t, int64(5), e.Quantity)
				assert.Equal(t, inventory.EntryMissing, e.Status)
				assert.Equal(t, af.sender, *e.Destination)
			}

			return nil
		})

	af.atx.EXPECT().
		SaveItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved transfer.Item) error {
			assert.Equal(t, transfer.StatusRejected, saved.Status)
			assert.Equal(t, "quantity mismatch", saved.RejectionReason)
			require.NotNil(t, saved.ReceivedQuantity)
			assert.Equal(t, int64(15), *saved.ReceivedQuantity)
			return nil
		})

	af.atx.EXPECT().Complete(gomock.Any(), af.tr).Return(nil)
	af.atx.EXPECT().Commit().Return(nil)

	got, err := af.svc.Accept(context.Background(), af.tr.ID, report(af.tr.Items, 15))
	require.NoError(t, err)

	assert.Equal(t, transfer.StatusRejected, got.Status)
	assert.Equal(t, "1 of 1 items failed reconciliation", got.RejectionReason)
	assert.Equal(t, []inventory.MovementKind{
		inventory.KindDispatch, inventory.KindReceipt, inventory.KindShortage,
	}, kinds)
}

func TestService_AcceptSurplus(t *testing.T) {
	// B requested 10 from A; A confirms 12 shipped. A is deducted 12,
	// B is credited 10, and 2 are over-received at B.
	af := newAcceptFixture(t, false, 10)
	it := af.tr.Items[0]

	af.atx.EXPECT().Deduct(gomock.Any(), af.sender, it.ItemTypeID, int64(12)).Return(nil)
	af.atx.EXPECT().Credit(gomock.Any(), af.receiver, it.ItemTypeID, int64(10), it.ID).Return(nil)
	af.atx.EXPECT().
		RecordDiscrepancy(gomock.Any(), af.receiver, it.ItemTypeID, int64(2), inventory.StatusOverReceived, it.ID).
		Return(nil)

	af.atx.EXPECT().
		AppendMovement(gomock.Any(), gomock.Any()).
		Times(3).
		DoAndReturn(func(_ context.Context, e *inventory.LedgerEntry) error {
			if e.Kind == inventory.KindSurplus {
				assert.Equal(t, int64(2), e.Quantity)
				assert.Equal(t, inventory.EntryOverReceived, e.Status)
				assert.Equal(t, af.receiver, *e.Destination)
			}

			return nil
		})

	af.atx.EXPECT().
		SaveItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved transfer.Item) error {
			assert.Equal(t, transfer.StatusRejected, saved.Status)
			require.NotNil(t, saved.ReceivedQuantity)
			assert.Equal(t, int64(12), *saved.ReceivedQuantity)
			return nil
		})

	af.atx.EXPECT().Complete(gomock.Any(), af.tr).Return(nil)
	af.atx.EXPECT().Commit().Return(nil)

	got, err := af.svc.Accept(context.Background(), af.tr.ID, report(af.tr.Items, 12))
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusRejected, got.Status)
}

func TestService_AcceptNotReceived(t *testing.T) {
	// The counterparty reports the item never arrived: the sender's
	// claim still leaves its stock, nothing is credited, everything
	// claimed is booked missing at the sender.
	af := newAcceptFixture(t, true, 8)
	it := af.tr.Items[0]

	af.atx.EXPECT().Deduct(gomock.Any(), af.sender, it.ItemTypeID, int64(8)).Return(nil)
	af.atx.EXPECT().Credit(gomock.Any(), af.receiver, it.ItemTypeID, int64(0), it.ID).Return(nil)
	af.atx.EXPECT().
		RecordDiscrepancy(gomock.Any(), af.sender, it.ItemTypeID, int64(8), inventory.StatusMissing, it.ID).
		Return(nil)

	// Only the dispatch and shortage entries: a zero receipt is not a
	// movement.
	af.atx.EXPECT().
		AppendMovement(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, e *inventory.LedgerEntry) error {
			assert.NotEqual(t, inventory.KindReceipt, e.Kind)
			return nil
		})

	af.atx.EXPECT().
		SaveItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved transfer.Item) error {
			assert.Equal(t, transfer.StatusRejected, saved.Status)
			assert.Equal(t, "not received", saved.RejectionReason)
			return nil
		})

	af.atx.EXPECT().Complete(gomock.Any(), af.tr).Return(nil)
	af.atx.EXPECT().Commit().Return(nil)

	params := transfer.AcceptParams{
		Quantities:  map[uuid.UUID]int64{},
		NotReceived: map[uuid.UUID]bool{it.ID: true},
		ActingUser:  "bob",
	}

	got, err := af.svc.Accept(context.Background(), af.tr.ID, params)
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusRejected, got.Status)
}

func TestService_AcceptTerminalState(t *testing.T) {
	// Locking reveals the transfer already left pending: nothing runs.
	af := newAcceptFixture(t, true, 10)
	af.tr.Status = transfer.StatusAccepted

	_, err := af.svc.Accept(context.Background(), af.tr.ID, report(af.tr.Items, 10))
	assert.ErrorIs(t, err, transfer.ErrInvalidState)
}

func TestService_AcceptMissingReport(t *testing.T) {
	af := newAcceptFixture(t, true, 10, 5)
	first := af.tr.Items[0]

	af.atx.EXPECT().Deduct(gomock.Any(), af.sender, first.ItemTypeID, int64(10)).Return(nil)
	af.atx.EXPECT().Credit(gomock.Any(), af.receiver, first.ItemTypeID, int64(10), first.ID).Return(nil)
	af.atx.EXPECT().AppendMovement(gomock.Any(), gomock.Any()).Times(2).Return(nil)
	af.atx.EXPECT().SaveItem(gomock.Any(), gomock.Any()).Return(nil)

	// Only the first item is reported; no Commit may happen.
	params := transfer.AcceptParams{
		Quantities:  map[uuid.UUID]int64{first.ID: 10},
		NotReceived: map[uuid.UUID]bool{},
		ActingUser:  "bob",
	}

	_, err := af.svc.Accept(context.Background(), af.tr.ID, params)
	assert.ErrorIs(t, err, transfer.ErrMissingReport)
}

func TestService_AcceptNegativeReport(t *testing.T) {
	af := newAcceptFixture(t, true, 10)

	_, err := af.svc.Accept(context.Background(), af.tr.ID, report(af.tr.Items, -1))
	assert.ErrorContains(t, err, "must not be negative")
}

func TestService_AcceptInsufficientStock(t *testing.T) {
	// The re-check under lock fails: the whole acceptance aborts and
	// only Rollback runs.
	af := newAcceptFixture(t, true, 10)
	it := af.tr.Items[0]

	af.atx.EXPECT().
		Deduct(gomock.Any(), af.sender, it.ItemTypeID, int64(10)).
		Return(inventory.ErrInsufficientStock)

	_, err := af.svc.Accept(context.Background(), af.tr.ID, report(af.tr.Items, 10))
	assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
}

func TestService_AcceptRequiresUser(t *testing.T) {
	f := newFixture(t)

	params := transfer.AcceptParams{Quantities: map[uuid.UUID]int64{}}

	_, err := f.svc.Accept(context.Background(), uuid.New(), params)
	assert.ErrorContains(t, err, "acting user")
}

func TestService_Reject(t *testing.T) {
	t.Run("delegates to the store", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		rejected := &transfer.Transfer{ID: id, Status: transfer.StatusRejected}

		f.repo.EXPECT().
			RejectTransfer(gomock.Any(), id, "wrong depot", "alice").
			Return(rejected, nil)

		got, err := f.svc.Reject(context.Background(), id, "wrong depot", "alice")
		require.NoError(t, err)
		assert.Equal(t, transfer.StatusRejected, got.Status)
	})

	t.Run("requires reason", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Reject(context.Background(), uuid.New(), "", "alice")
		assert.ErrorContains(t, err, "reason")
	})

	t.Run("requires user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Reject(context.Background(), uuid.New(), "wrong depot", "")
		assert.ErrorContains(t, err, "acting user")
	})

	t.Run("terminal transfer", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.repo.EXPECT().
			RejectTransfer(gomock.Any(), id, "late", "alice").
			Return(nil, transfer.ErrInvalidState)

		_, err := f.svc.Reject(context.Background(), id, "late", "alice")
		assert.ErrorIs(t, err, transfer.ErrInvalidState)
	})
}
