// Package model defines the core domain entities for the inventory optimizer.
package model

import "github.com/guttosm/inventory-optimizer/internal/optimizer"

// OptimizationRequest is a planning problem as seen by the service. Zero
// Step or CapacityFactor and nil cost fields are filled from the active cost
// profile, or from the configured defaults when no profile is stored.
type OptimizationRequest struct {
	Consumption    []int
	OrderFee       *float64
	StorageCost    *float64
	ShortageCost   *float64
	InitialStock   int
	Algorithm      string
	Step           int
	CapacityFactor int
}

// Totals aggregates a plan's cost split and order volume.
//
// @Description Aggregated cost split of a plan
type Totals struct {
	OrderCost    float64 `json:"order_cost" example:"200"`
	StorageCost  float64 `json:"storage_cost" example:"40"`
	ShortageCost float64 `json:"shortage_cost" example:"0"`
	// OrdersPlaced counts days with a non-zero order.
	OrdersPlaced int `json:"orders_placed" example:"2"`
	// UnitsOrdered sums all order quantities.
	UnitsOrdered int `json:"units_ordered" example:"120"`
} // @name Totals

// Plan is the optimal reorder schedule returned to callers.
//
// @Description Optimal reorder plan with per-day breakdown
type Plan struct {
	// MinCost is the minimum total cost over the horizon.
	MinCost float64 `json:"min_cost" example:"240"`
	// Orders holds one order quantity per day.
	Orders         []int                `json:"orders" example:"50,0,70"`
	Capacity       int                  `json:"capacity" example:"210"`
	Step           int                  `json:"step" example:"10"`
	CapacityFactor int                  `json:"capacity_factor" example:"3"`
	InitialStock   int                  `json:"initial_stock" example:"0"`
	Params         optimizer.CostParams `json:"params"`
	Algorithm      string               `json:"algorithm" example:"bottomup"`
	StatesExplored int                  `json:"states_explored" example:"1266"`
	Days           []optimizer.DayPlan  `json:"days"`
	Totals         Totals               `json:"totals"`
} // @name Plan

// SummarizeDays folds a per-day breakdown into Totals.
func SummarizeDays(days []optimizer.DayPlan) Totals {
	var t Totals
	for _, d := range days {
		t.OrderCost += d.OrderCost
		t.StorageCost += d.StorageCost
		t.ShortageCost += d.ShortageCost
		if d.Order > 0 {
			t.OrdersPlaced++
			t.UnitsOrdered += d.Order
		}
	}
	return t
}
