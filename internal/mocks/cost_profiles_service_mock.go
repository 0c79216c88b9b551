// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCostProfilesService struct {
	mock.Mock
}

func (m *MockCostProfilesService) GetActive(ctx context.Context) (*repository.CostProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CostProfile), args.Error(1)
}

func (m *MockCostProfilesService) Update(ctx context.Context, req dto.UpdateCostProfileRequest) (*repository.CostProfile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CostProfile), args.Error(1)
}

func (m *MockCostProfilesService) History(ctx context.Context, limit int) ([]repository.CostProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CostProfile), args.Error(1)
}
