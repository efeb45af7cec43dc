package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/importer/stocksheet"
	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/item"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

type Parser interface {
	Parse(r io.Reader) ([]stocksheet.Line, error)
}

type PartyDirectory interface {
	List(ctx context.Context, kind party.Kind) ([]*party.Info, error)
}

type ItemCatalog interface {
	List(ctx context.Context) ([]*item.Type, error)
}

type Inventory interface {
	AddOpeningStock(ctx context.Context, params []inventory.OpeningStockParams) error
}

// Service turns uploaded stock sheets into opening-stock records. Names
// on the sheet are resolved against the party directory and the item
// catalog; any name the system does not know fails the whole import, so
// a typo never creates stock from nothing.
type Service struct {
	parser  Parser
	parties PartyDirectory
	items   ItemCatalog
	inv     Inventory
}

func NewService(parties PartyDirectory, items ItemCatalog, inv Inventory) *Service {
	return &Service{
		parser:  stocksheet.NewParser(),
		parties: parties,
		items:   items,
		inv:     inv,
	}
}

type Result struct {
	Lines int
}

func (s *Service) Import(ctx context.Context, r io.Reader, actingUser string) (*Result, error) {
	if actingUser == "" {
		return nil, fmt.Errorf("acting user is required")
	}

	lines, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return &Result{}, nil
	}

	locations, err := s.locationIndex(ctx)
	if err != nil {
		return nil, err
	}

	itemTypes, err := s.itemIndex(ctx)
	if err != nil {
		return nil, err
	}

	var params []inventory.OpeningStockParams

	for i, line := range lines {
		loc, ok := locations[locationKey(line.Kind, line.LocationName)]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown %s %q", i+1, line.Kind, line.LocationName)
		}

		itemTypeID, ok := itemTypes[strings.ToLower(line.ItemName)]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown item %q", i+1, line.ItemName)
		}

		params = append(params, inventory.OpeningStockParams{
			Location:   loc,
			ItemTypeID: itemTypeID,
			Quantity:   line.Quantity,
			ActingUser: actingUser,
		})
	}

	if err := s.inv.AddOpeningStock(ctx, params); err != nil {
		return nil, fmt.Errorf("adding opening stock: %w", err)
	}

	return &Result{Lines: len(params)}, nil
}

func (s *Service) locationIndex(ctx context.Context) (map[string]party.Party, error) {
	index := make(map[string]party.Party)

	for _, kind := range []party.Kind{party.KindWarehouse, party.KindEquipment} {
		infos, err := s.parties.List(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("listing %s parties: %w", kind, err)
		}

		for _, info := range infos {
			index[locationKey(kind, info.Name)] = info.Party
		}
	}

	return index, nil
}

func (s *Service) itemIndex(ctx context.Context) (map[string]uuid.UUID, error) {
	types, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing item types: %w", err)
	}

	index := make(map[string]uuid.UUID, len(types))
	for _, t := range types {
		index[strings.ToLower(t.Name)] = t.ID
	}

	return index, nil
}

func locationKey(kind party.Kind, name string) string {
	return string(kind) + "\x00" + strings.ToLower(name)
}
