package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

func newService(t *testing.T) (*inventory.Service, *inventory.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := inventory.NewMockRepository(ctrl)

	return inventory.NewService(repo), repo
}

func TestService_ValidateHistory(t *testing.T) {
	loc := party.Warehouse(uuid.New())
	itemType := uuid.New()

	t.Run("consistent", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().LedgerQuantity(gomock.Any(), loc, itemType).Return(int64(40), nil)
		repo.EXPECT().RecordedQuantity(gomock.Any(), loc, itemType).Return(int64(40), nil)
		repo.EXPECT().DiscrepancyQuantity(gomock.Any(), loc, itemType, inventory.StatusMissing).Return(int64(0), nil)
		repo.EXPECT().DiscrepancyQuantity(gomock.Any(), loc, itemType, inventory.StatusOverReceived).Return(int64(0), nil)

		report, err := svc.ValidateHistory(context.Background(), loc, itemType)
		require.NoError(t, err)
		assert.True(t, report.Consistent)
		assert.Equal(t, int64(40), report.LedgerQuantity)
		assert.Equal(t, int64(40), report.RecordedQuantity)
	})

	t.Run("mismatch returns the report alongside the error", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().LedgerQuantity(gomock.Any(), loc, itemType).Return(int64(40), nil)
		repo.EXPECT().RecordedQuantity(gomock.Any(), loc, itemType).Return(int64(37), nil)
		repo.EXPECT().DiscrepancyQuantity(gomock.Any(), loc, itemType, inventory.StatusMissing).Return(int64(3), nil)
		repo.EXPECT().DiscrepancyQuantity(gomock.Any(), loc, itemType, inventory.StatusOverReceived).Return(int64(0), nil)

		report, err := svc.ValidateHistory(context.Background(), loc, itemType)
		assert.ErrorIs(t, err, inventory.ErrHistoryMismatch)

		// The caller still gets the full picture; nothing was corrected.
		require.NotNil(t, report)
		assert.False(t, report.Consistent)
		assert.Equal(t, int64(40), report.LedgerQuantity)
		assert.Equal(t, int64(37), report.RecordedQuantity)
		assert.Equal(t, int64(3), report.UnresolvedMissing)
	})
}

func TestService_ResolveDiscrepancy(t *testing.T) {
	t.Run("annotates the record", func(t *testing.T) {
		svc, repo := newService(t)
		id := uuid.New()

		resolved := &inventory.Record{ID: id, Status: inventory.StatusMissing, Resolved: true}

		repo.EXPECT().
			ResolveDiscrepancy(gomock.Any(), id, "alice", "found in depot B").
			Return(resolved, nil)

		got, err := svc.ResolveDiscrepancy(context.Background(), id, "alice", "found in depot B")
		require.NoError(t, err)
		assert.True(t, got.Resolved)
	})

	t.Run("requires user", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.ResolveDiscrepancy(context.Background(), uuid.New(), "", "notes")
		assert.ErrorContains(t, err, "acting user")
	})
}

func TestService_Consume(t *testing.T) {
	loc := party.Equipment(uuid.New())

	t.Run("books usage", func(t *testing.T) {
		svc, repo := newService(t)

		params := inventory.ConsumeParams{
			Location:   loc,
			ItemTypeID: uuid.New(),
			Quantity:   3,
			ActingUser: "alice",
		}

		repo.EXPECT().ConsumeStock(gomock.Any(), params).Return(nil)

		assert.NoError(t, svc.Consume(context.Background(), params))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Consume(context.Background(), inventory.ConsumeParams{Location: loc, Quantity: 0})
		assert.ErrorContains(t, err, "positive")
	})

	t.Run("rejects unknown party kind", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Consume(context.Background(), inventory.ConsumeParams{
			Location: party.Party{Kind: "truck", ID: uuid.New()},
			Quantity: 1,
		})
		assert.ErrorContains(t, err, "party kind")
	})

	t.Run("insufficient stock surfaces from the store", func(t *testing.T) {
		svc, repo := newService(t)

		params := inventory.ConsumeParams{Location: loc, ItemTypeID: uuid.New(), Quantity: 50, ActingUser: "alice"}

		repo.EXPECT().ConsumeStock(gomock.Any(), params).Return(inventory.ErrInsufficientStock)

		assert.ErrorIs(t, svc.Consume(context.Background(), params), inventory.ErrInsufficientStock)
	})
}

func TestService_AddOpeningStock(t *testing.T) {
	loc := party.Warehouse(uuid.New())

	t.Run("seeds the batch", func(t *testing.T) {
		svc, repo := newService(t)

		params := []inventory.OpeningStockParams{
			{Location: loc, ItemTypeID: uuid.New(), Quantity: 100, ActingUser: "alice"},
			{Location: loc, ItemTypeID: uuid.New(), Quantity: 25, ActingUser: "alice"},
		}

		repo.EXPECT().AddOpeningStock(gomock.Any(), params).Return(nil)

		assert.NoError(t, svc.AddOpeningStock(context.Background(), params))
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		svc, _ := newService(t)

		assert.NoError(t, svc.AddOpeningStock(context.Background(), nil))
	})

	t.Run("line numbered validation", func(t *testing.T) {
		svc, _ := newService(t)

		params := []inventory.OpeningStockParams{
			{Location: loc, ItemTypeID: uuid.New(), Quantity: 100, ActingUser: "alice"},
			{Location: loc, ItemTypeID: uuid.New(), Quantity: -2, ActingUser: "alice"},
		}

		err := svc.AddOpeningStock(context.Background(), params)
		assert.ErrorContains(t, err, "line 2")
	})
}
