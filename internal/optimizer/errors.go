package optimizer

import "errors"

var (
	// ErrEmptyHorizon is returned when the consumption sequence has no days.
	ErrEmptyHorizon = errors.New("optimizer: consumption sequence is empty")
	// ErrNegativeConsumption is returned when any day has negative consumption.
	ErrNegativeConsumption = errors.New("optimizer: consumption must be non-negative")
	// ErrInvalidCostParams is returned when a cost parameter is negative, NaN or infinite.
	ErrInvalidCostParams = errors.New("optimizer: cost parameters must be finite and non-negative")
	// ErrInvalidStep is returned when the order grid step is not positive.
	ErrInvalidStep = errors.New("optimizer: grid step must be positive")
	// ErrInvalidCapacityFactor is returned when the capacity factor is not positive.
	ErrInvalidCapacityFactor = errors.New("optimizer: capacity factor must be positive")
	// ErrCapacityTooLarge is returned when factor × peak consumption exceeds the
	// configured maximum capacity or overflows.
	ErrCapacityTooLarge = errors.New("optimizer: capacity too large")
	// ErrInvalidMaxCapacity is returned when the capacity limit is not positive.
	ErrInvalidMaxCapacity = errors.New("optimizer: max capacity must be positive")
	// ErrInitialStockOutOfRange is returned when the initial stock is outside [0, capacity].
	ErrInitialStockOutOfRange = errors.New("optimizer: initial stock out of range")
	// ErrUnknownAlgorithm is returned by Solve for an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("optimizer: unknown algorithm")
	// ErrSolverDivergence is returned when the two solvers disagree on the minimum cost.
	ErrSolverDivergence = errors.New("optimizer: solvers returned different minimum costs")
	// ErrInfeasibleState signals a state with no admissible order. It cannot
	// happen for validated models and indicates a broken invariant.
	ErrInfeasibleState = errors.New("optimizer: no feasible order for state")
	// ErrInvalidPlan is returned by Simulate when a decision sequence does not fit the model.
	ErrInvalidPlan = errors.New("optimizer: invalid decision sequence")
)
