package item

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetType(ctx context.Context, id uuid.UUID) (*Type, error)
	ListTypes(ctx context.Context) ([]*Type, error)
}

// Service resolves item-type ids for reporting. The reconciliation math
// never depends on it; a transfer of an unknown type still balances.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Type, error) {
	return s.repo.GetType(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Type, error) {
	return s.repo.ListTypes(ctx)
}
