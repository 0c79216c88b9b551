// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockOptimizer struct {
	mock.Mock
}

func (m *MockOptimizer) Optimize(ctx context.Context, req model.OptimizationRequest) (model.Plan, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Plan), args.Error(1)
}

func (m *MockOptimizer) InvalidateCache() {
	m.Called()
}
