package optimizer

import (
	"fmt"
	"math"
)

// CostParams holds the per-run cost coefficients.
type CostParams struct {
	// OrderFee is charged once on any day with a non-zero order.
	OrderFee float64 `json:"order_fee"`
	// StorageCost is charged per unit held at the end of a day.
	StorageCost float64 `json:"storage_cost"`
	// ShortageCost is charged per unit of unmet demand. Unmet demand is lost.
	ShortageCost float64 `json:"shortage_cost"`
}

// DefaultCostParams mirrors the classic demonstration scenario.
var DefaultCostParams = CostParams{OrderFee: 100, StorageCost: 1, ShortageCost: 50}

// Validate reports whether every coefficient is finite and non-negative.
func (p CostParams) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"order_fee", p.OrderFee},
		{"storage_cost", p.StorageCost},
		{"shortage_cost", p.ShortageCost},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidCostParams, f.name, f.value)
		}
	}
	return nil
}

// Evaluate applies one day of the cost model. It returns the cost incurred
// today and the stock carried into tomorrow. Inputs are trusted: callers
// must pass non-negative values and check next against capacity themselves.
func Evaluate(p CostParams, stock, consumption, order int) (cost float64, next int) {
	if order > 0 {
		cost += p.OrderFee
	}

	balance := stock - consumption + order
	switch {
	case balance > 0:
		cost += float64(balance) * p.StorageCost
		next = balance
	case balance < 0:
		cost += float64(-balance) * p.ShortageCost
	}

	return cost, next
}
