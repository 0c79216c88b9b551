package optimizer

import (
	"context"
	"fmt"
)

// Algorithm names a solver strategy.
type Algorithm string

const (
	// AlgorithmTopDown selects memoized recursion.
	AlgorithmTopDown Algorithm = "topdown"
	// AlgorithmBottomUp selects tabulation.
	AlgorithmBottomUp Algorithm = "bottomup"
	// AlgorithmBoth runs both solvers and cross-checks their minimum cost.
	AlgorithmBoth Algorithm = "both"
)

// ParseAlgorithm converts a name into an Algorithm. The empty string maps to bottom-up.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case "":
		return AlgorithmBottomUp, nil
	case AlgorithmTopDown, AlgorithmBottomUp, AlgorithmBoth:
		return Algorithm(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Solution is the outcome of a solve.
type Solution struct {
	// Cost is the minimum total cost over the horizon.
	Cost float64 `json:"cost"`
	// Orders holds one order quantity per day.
	Orders []int `json:"orders"`
	// StatesExplored counts the (day, stock) states the solver evaluated.
	StatesExplored int `json:"states_explored"`
	// Algorithm is the solver that produced the solution.
	Algorithm Algorithm `json:"algorithm"`
}

// Option configures a Model.
type Option func(*Model)

// WithStep sets the order grid step.
func WithStep(step int) Option {
	return func(m *Model) {
		m.step = step
	}
}

// WithCapacityFactor sets the multiplier applied to peak consumption.
func WithCapacityFactor(factor int) Option {
	return func(m *Model) {
		m.capacityFactor = factor
	}
}

// WithMaxCapacity sets the largest stock ceiling New accepts.
func WithMaxCapacity(limit int) Option {
	return func(m *Model) {
		m.maxCapacity = limit
	}
}

// WithInitialStock sets the opening stock on day zero.
func WithInitialStock(stock int) Option {
	return func(m *Model) {
		m.initialStock = stock
	}
}

// Model is a validated, immutable optimization problem. A Model may be
// solved any number of times, concurrently; each solve owns its own memo
// or table.
type Model struct {
	consumption    []int
	params         CostParams
	step           int
	capacityFactor int
	maxCapacity    int
	initialStock   int
	capacity       int
	grid           []int
}

// New validates the inputs and builds a Model. Invalid input is rejected,
// never clamped.
func New(consumption []int, params CostParams, opts ...Option) (*Model, error) {
	m := &Model{
		params:         params,
		step:           DefaultStep,
		capacityFactor: DefaultCapacityFactor,
		maxCapacity:    DefaultMaxCapacity,
	}
	for _, opt := range opts {
		opt(m)
	}

	if len(consumption) == 0 {
		return nil, ErrEmptyHorizon
	}
	for day, c := range consumption {
		if c < 0 {
			return nil, fmt.Errorf("%w: day %d has %d", ErrNegativeConsumption, day, c)
		}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if m.step <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, m.step)
	}
	if m.capacityFactor <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacityFactor, m.capacityFactor)
	}
	if m.maxCapacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxCapacity, m.maxCapacity)
	}

	capacity, err := Capacity(consumption, m.capacityFactor)
	if err != nil {
		return nil, err
	}
	if capacity > m.maxCapacity {
		return nil, fmt.Errorf("%w: %d exceeds limit %d", ErrCapacityTooLarge, capacity, m.maxCapacity)
	}

	m.consumption = make([]int, len(consumption))
	copy(m.consumption, consumption)
	m.capacity = capacity

	if m.initialStock < 0 || m.initialStock > m.capacity {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInitialStockOutOfRange, m.initialStock, m.capacity)
	}

	m.grid = OrderGrid(m.capacity, m.step)
	return m, nil
}

// Days returns the horizon length.
func (m *Model) Days() int { return len(m.consumption) }

// Capacity returns the stock ceiling.
func (m *Model) Capacity() int { return m.capacity }

// Step returns the order grid step.
func (m *Model) Step() int { return m.step }

// CapacityFactor returns the multiplier used to derive capacity.
func (m *Model) CapacityFactor() int { return m.capacityFactor }

// InitialStock returns the opening stock.
func (m *Model) InitialStock() int { return m.initialStock }

// Params returns the cost coefficients.
func (m *Model) Params() CostParams { return m.params }

// Grid returns a copy of the candidate order quantities.
func (m *Model) Grid() []int {
	out := make([]int, len(m.grid))
	copy(out, m.grid)
	return out
}

// Solve runs the requested algorithm. For AlgorithmBoth it runs both
// solvers and fails with ErrSolverDivergence if their costs differ; the
// bottom-up solution is returned on agreement.
func Solve(ctx context.Context, m *Model, algorithm Algorithm) (Solution, error) {
	switch algorithm {
	case AlgorithmTopDown:
		return m.TopDown(ctx)
	case AlgorithmBottomUp, "":
		return m.BottomUp(ctx)
	case AlgorithmBoth:
		td, err := m.TopDown(ctx)
		if err != nil {
			return Solution{}, err
		}
		bu, err := m.BottomUp(ctx)
		if err != nil {
			return Solution{}, err
		}
		if td.Cost != bu.Cost {
			return Solution{}, fmt.Errorf("%w: topdown=%v bottomup=%v", ErrSolverDivergence, td.Cost, bu.Cost)
		}
		bu.Algorithm = AlgorithmBoth
		bu.StatesExplored += td.StatesExplored
		return bu, nil
	default:
		return Solution{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
