package item

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an item type is not in the catalog.
var ErrNotFound = errors.New("item type not found")

// Type is a catalog entry for a kind of item. Inventory is tracked by
// quantity per type, not per individual unit.
type Type struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Unit      string // "piece", "liter", ...
	CreatedAt time.Time
	DeletedAt *time.Time
}
