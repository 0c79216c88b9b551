package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/repository"
)

// ErrRepositoryNotConfigured is returned by profile writes when no database is configured.
var ErrRepositoryNotConfigured = errors.New("cost profile store is not configured")

const maxHistory = 100

// CostProfilesService manages the operator's default cost coefficients.
type CostProfilesService interface {
	// GetActive returns the active profile, or nil when none is stored or the
	// store is unavailable.
	GetActive(ctx context.Context) (*repository.CostProfile, error)
	// Update stores a new active profile and returns it.
	Update(ctx context.Context, req dto.UpdateCostProfileRequest) (*repository.CostProfile, error)
	// History lists stored profiles, newest first.
	History(ctx context.Context, limit int) ([]repository.CostProfile, error)
}

// CostProfilesServiceImpl implements CostProfilesService over a repository.
// A nil repository turns reads into "no profile" and writes into
// ErrRepositoryNotConfigured.
type CostProfilesServiceImpl struct {
	repo     repository.CostProfilesRepositoryInterface
	onChange func()
}

// NewCostProfilesService creates a cost profile service. onChange, when
// non-nil, runs after every successful update.
func NewCostProfilesService(repo repository.CostProfilesRepositoryInterface, onChange func()) *CostProfilesServiceImpl {
	return &CostProfilesServiceImpl{repo: repo, onChange: onChange}
}

// GetActive returns the active profile.
func (s *CostProfilesServiceImpl) GetActive(ctx context.Context) (*repository.CostProfile, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.GetActive(ctx)
}

// Update validates the request and stores it as the new active profile.
func (s *CostProfilesServiceImpl) Update(ctx context.Context, req dto.UpdateCostProfileRequest) (*repository.CostProfile, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := req.Params()
	profile, err := s.repo.Create(ctx, repository.CostProfile{
		OrderFee:       params.OrderFee,
		StorageCost:    params.StorageCost,
		ShortageCost:   params.ShortageCost,
		Step:           req.Step,
		CapacityFactor: req.CapacityFactor,
		CreatedBy:      req.CreatedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store cost profile: %w", err)
	}

	if s.onChange != nil {
		s.onChange()
	}
	return profile, nil
}

// History lists stored profiles, newest first. limit is clamped to [1, 100].
func (s *CostProfilesServiceImpl) History(ctx context.Context, limit int) ([]repository.CostProfile, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}
	return s.repo.List(ctx, limit)
}
