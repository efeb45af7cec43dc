package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/item"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

type fakeLedger struct {
	entries []*inventory.LedgerEntry
}

func (f *fakeLedger) Ledger(context.Context, inventory.EntryFilter) ([]*inventory.LedgerEntry, error) {
	return f.entries, nil
}

type fakeNamer struct {
	names map[uuid.UUID]string
}

func (f *fakeNamer) Name(_ context.Context, p party.Party) string {
	if name, ok := f.names[p.ID]; ok {
		return name
	}

	return p.ID.String()
}

type fakeCatalog struct {
	types []*item.Type
}

func (f *fakeCatalog) List(context.Context) ([]*item.Type, error) {
	return f.types, nil
}

func TestWriteLedgerCSV(t *testing.T) {
	depot := party.Warehouse(uuid.New())
	crane := party.Equipment(uuid.New())
	boltID := uuid.New()
	transferID := uuid.New()
	movedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	entries := []*inventory.LedgerEntry{
		{
			ID:         uuid.New(),
			TransferID: &transferID,
			ItemTypeID: boltID,
			Quantity:   12,
			Source:     &depot,
			Kind:       inventory.KindDispatch,
			Status:     inventory.EntryAccepted,
			MovedAt:    movedAt,
			RecordedBy: "alice",
		},
		{
			ID:          uuid.New(),
			TransferID:  &transferID,
			ItemTypeID:  boltID,
			Quantity:    10,
			Destination: &crane,
			Kind:        inventory.KindReceipt,
			Status:      inventory.EntryAccepted,
			MovedAt:     movedAt,
			RecordedBy:  "alice",
		},
	}

	svc := NewService(
		&fakeLedger{entries: entries},
		&fakeNamer{names: map[uuid.UUID]string{depot.ID: "Central Depot", crane.ID: "Crane 7"}},
		&fakeCatalog{types: []*item.Type{{ID: boltID, Name: "Anchor Bolt"}}},
	)

	var buf bytes.Buffer

	n, err := svc.WriteLedgerCSV(context.Background(), inventory.EntryFilter{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "date,kind,status,item,quantity,source,destination,transfer_id,recorded_by", lines[0])
	assert.Equal(t, "2026-08-01,dispatch,accepted,Anchor Bolt,12,Central Depot,,"+transferID.String()+",alice", lines[1])
	assert.Equal(t, "2026-08-01,receipt,accepted,Anchor Bolt,10,,Crane 7,"+transferID.String()+",alice", lines[2])
}

func TestSummarize(t *testing.T) {
	depot := party.Warehouse(uuid.New())
	crane := party.Equipment(uuid.New())
	boltID := uuid.New()

	entries := []*inventory.LedgerEntry{
		{
			ItemTypeID:  boltID,
			Quantity:    5,
			Source:      &depot,
			Destination: &crane,
			Kind:        inventory.KindDispatch,
			Status:      inventory.EntryAccepted,
			MovedAt:     time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
			RecordedBy:  "bob",
		},
	}

	svc := NewService(
		&fakeLedger{},
		&fakeNamer{names: map[uuid.UUID]string{depot.ID: "Depot", crane.ID: "Crane"}},
		&fakeCatalog{types: []*item.Type{{ID: boltID, Name: "Bolt"}}},
	)

	got := svc.Summarize(context.Background(), entries)
	assert.Equal(t, "* 2026-08-02 | dispatch | Bolt | 5 | Depot -> Crane\n", got)
}

func TestWriteLedgerCSVEmpty(t *testing.T) {
	svc := NewService(&fakeLedger{}, &fakeNamer{}, &fakeCatalog{})

	var buf bytes.Buffer

	n, err := svc.WriteLedgerCSV(context.Background(), inventory.EntryFilter{}, &buf)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "date,kind,status,item,quantity,source,destination,transfer_id,recorded_by\n", buf.String())
}
