package party

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which directory a party belongs to.
type Kind string

const (
	KindWarehouse Kind = "warehouse"
	KindEquipment Kind = "equipment"
)

// ErrNotFound is returned when a party does not exist in its directory.
var ErrNotFound = errors.New("party not found")

// Party is a tagged reference to an inventory-holding location.
// Parties are never created here; they come from the warehouse and
// equipment directories and are only validated and resolved.
type Party struct {
	Kind Kind      `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

func Warehouse(id uuid.UUID) Party { return Party{Kind: KindWarehouse, ID: id} }
func Equipment(id uuid.UUID) Party { return Party{Kind: KindEquipment, ID: id} }

func (p Party) Equal(o Party) bool { return p.Kind == o.Kind && p.ID == o.ID }

func (p Party) String() string { return fmt.Sprintf("%s/%s", p.Kind, p.ID) }

// Valid reports whether the kind tag is one of the known directories.
func (p Party) Valid() bool {
	return p.Kind == KindWarehouse || p.Kind == KindEquipment
}

// Info is a directory entry resolved for display purposes.
type Info struct {
	Party     Party
	Name      string
	CreatedAt time.Time
	DeletedAt *time.Time
}
