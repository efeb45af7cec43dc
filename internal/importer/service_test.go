package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/item"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

type fakeParties struct {
	warehouses []*party.Info
	equipment  []*party.Info
}

func (f *fakeParties) List(_ context.Context, kind party.Kind) ([]*party.Info, error) {
	if kind == party.KindWarehouse {
		return f.warehouses, nil
	}

	return f.equipment, nil
}

type fakeItems struct {
	types []*item.Type
}

func (f *fakeItems) List(context.Context) ([]*item.Type, error) {
	return f.types, nil
}

type fakeInventory struct {
	got []inventory.OpeningStockParams
}

func (f *fakeInventory) AddOpeningStock(_ context.Context, params []inventory.OpeningStockParams) error {
	f.got = params
	return nil
}

func TestImport(t *testing.T) {
	depot := party.Warehouse(uuid.New())
	boltID := uuid.New()

	parties := &fakeParties{
		warehouses: []*party.Info{{Party: depot, Name: "Central Depot"}},
	}
	items := &fakeItems{
		types: []*item.Type{{ID: boltID, Name: "Anchor Bolt M12"}},
	}
	inv := &fakeInventory{}

	svc := NewService(parties, items, inv)

	sheet := "Location Type,Location,Item,Quantity\nWarehouse,central depot,anchor bolt m12,25\n"

	res, err := svc.Import(context.Background(), strings.NewReader(sheet), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Lines)

	require.Len(t, inv.got, 1)
	assert.Equal(t, depot, inv.got[0].Location)
	assert.Equal(t, boltID, inv.got[0].ItemTypeID)
	assert.Equal(t, int64(25), inv.got[0].Quantity)
	assert.Equal(t, "alice", inv.got[0].ActingUser)
}

func TestImportUnknownLocation(t *testing.T) {
	svc := NewService(&fakeParties{}, &fakeItems{}, &fakeInventory{})

	sheet := "Location Type,Location,Item,Quantity\nWarehouse,Nowhere,Bolt,5\n"

	_, err := svc.Import(context.Background(), strings.NewReader(sheet), "alice")
	assert.ErrorContains(t, err, `unknown warehouse "Nowhere"`)
}

func TestImportUnknownItem(t *testing.T) {
	depot := party.Warehouse(uuid.New())
	parties := &fakeParties{
		warehouses: []*party.Info{{Party: depot, Name: "Depot"}},
	}

	svc := NewService(parties, &fakeItems{}, &fakeInventory{})

	sheet := "Location Type,Location,Item,Quantity\nWarehouse,Depot,Mystery Widget,5\n"

	_, err := svc.Import(context.Background(), strings.NewReader(sheet), "alice")
	assert.ErrorContains(t, err, `unknown item "Mystery Widget"`)
}

func TestImportRequiresUser(t *testing.T) {
	svc := NewService(&fakeParties{}, &fakeItems{}, &fakeInventory{})

	_, err := svc.Import(context.Background(), strings.NewReader(""), "")
	assert.ErrorContains(t, err, "acting user")
}

func TestImportEmptySheet(t *testing.T) {
	inv := &fakeInventory{}
	svc := NewService(&fakeParties{}, &fakeItems{}, inv)

	sheet := "Location Type,Location,Item,Quantity\n"

	res, err := svc.Import(context.Background(), strings.NewReader(sheet), "alice")
	require.NoError(t, err)
	assert.Zero(t, res.Lines)
	assert.Empty(t, inv.got)
}
