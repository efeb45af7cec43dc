package party

import (
	"context"
	"errors"
)

type Repository interface {
	GetParty(ctx context.Context, p Party) (*Info, error)
	ListParties(ctx context.Context, kind Kind) ([]*Info, error)
}

// Service answers existence checks and resolves party ids to display
// names. It is the narrow interface the transfer engine consumes; party
// administration lives elsewhere.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, p Party) (*Info, error) {
	return s.repo.GetParty(ctx, p)
}

// Exists reports whether the party is present and not soft-deleted.
func (s *Service) Exists(ctx context.Context, p Party) (bool, error) {
	info, err := s.repo.GetParty(ctx, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return info.DeletedAt == nil, nil
}

// Name resolves a party id to its display name, falling back to the raw
// id when the directory no longer knows it.
func (s *Service) Name(ctx context.Context, p Party) string {
	info, err := s.repo.GetParty(ctx, p)
	if err != nil {
		return p.ID.String()
	}

	return info.Name
}

func (s *Service) List(ctx context.Context, kind Kind) ([]*Info, error) {
	return s.repo.ListParties(ctx, kind)
}
