package stocksheet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/stocktrail-app/stocktrail/internal/importer/stocksheet"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

func TestParser_Standard(t *testing.T) {
	csv := `Opening stock count - 2026-08-01
Counted by,J. Ferreira

Location Type,Location,Item,Quantity
Warehouse,Central Depot,Anchor Bolt M12,1200
Equipment,Crane 7,Hydraulic Hose,4

,,Total,1204
`

	p := stocksheet.NewParser()
	lines, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, party.KindWarehouse, lines[0].Kind)
	assert.Equal(t, "Central Depot", lines[0].LocationName)
	assert.Equal(t, "Anchor Bolt M12", lines[0].ItemName)
	assert.Equal(t, int64(1200), lines[0].Quantity)

	assert.Equal(t, party.KindEquipment, lines[1].Kind)
	assert.Equal(t, "Crane 7", lines[1].LocationName)
	assert.Equal(t, "Hydraulic Hose", lines[1].ItemName)
	assert.Equal(t, int64(4), lines[1].Quantity)
}

func TestParser_LegacySemicolon(t *testing.T) {
	csv := `Inventario inicial;01-08-2026

Tipo;Sede;Artículo;Cantidad
Almacén;Depósito Norte;Cable 5mm;1.200
Equipo;Grúa 2;Filtro;12
`

	p := stocksheet.NewParser()
	lines, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, party.KindWarehouse, lines[0].Kind)
	assert.Equal(t, "Depósito Norte", lines[0].LocationName)
	assert.Equal(t, int64(1200), lines[0].Quantity)

	assert.Equal(t, party.KindEquipment, lines[1].Kind)
	assert.Equal(t, int64(12), lines[1].Quantity)
}

func TestParser_LegacyWindows1252(t *testing.T) {
	utf8csv := "Tipo;Sede;Artículo;Cantidad\nAlmacén;Depósito Sur;Tornillo;30\n"

	enc := charmap.Windows1252.NewEncoder()
	raw, err := enc.String(utf8csv)
	require.NoError(t, err)

	p := stocksheet.NewParser()
	lines, err := p.Parse(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "Depósito Sur", lines[0].LocationName)
	assert.Equal(t, "Tornillo", lines[0].ItemName)
	assert.Equal(t, int64(30), lines[0].Quantity)
}

func TestParser_NoHeader(t *testing.T) {
	csv := "just,some,random\nrows,with,nothing\n"

	p := stocksheet.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.ErrorContains(t, err, "no matching sheet format")
}

func TestParser_UnknownKind(t *testing.T) {
	csv := `Location Type,Location,Item,Quantity
Truck,Depot,Bolt,5
`

	p := stocksheet.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.ErrorContains(t, err, "unknown location type")
	assert.ErrorContains(t, err, "row 2")
}

func TestParser_BadQuantity(t *testing.T) {
	tests := []struct {
		name string
		qty  string
	}{
		{"fractional", `"12,5"`},
		{"zero", "0"},
		{"negative", "-3"},
		{"garbage", "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := "Location Type,Location,Item,Quantity\nWarehouse,Depot,Bolt," + tt.qty + "\n"

			p := stocksheet.NewParser()
			_, err := p.Parse(strings.NewReader(csv))
			assert.Error(t, err)
		})
	}
}

func TestParser_MissingItem(t *testing.T) {
	csv := `Location Type,Location,Item,Quantity
Warehouse,Depot,,5
`

	p := stocksheet.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.ErrorContains(t, err, "missing item")
}
