// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"math"

	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/optimizer"
	"github.com/guttosm/inventory-optimizer/internal/records"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyConsumption is returned when no consumption days are given.
	ErrEmptyConsumption = &ValidationError{
		Field:   "consumption",
		Message: "must contain at least one day",
	}
	// ErrInvalidAlgorithm is returned for an unknown solver name.
	ErrInvalidAlgorithm = &ValidationError{
		Field:   "algorithm",
		Message: "must be one of topdown, bottomup, both",
	}
)

// OptimizeRequest represents the JSON request body for the optimize endpoint.
//
// Only consumption is required. Omitted cost fields fall back to the active
// cost profile, then to server defaults.
//
// @Description Request to compute the minimum-cost reorder plan
// @Example {"consumption": [50, 20, 70, 0, 30]}
type OptimizeRequest struct {
	// Consumption is the known daily demand, one entry per day.
	Consumption []int `json:"consumption" binding:"required" example:"50,20,70,0,30"`
	// OrderFee is the flat fee charged on any day with a non-zero order.
	OrderFee *float64 `json:"order_fee,omitempty" example:"100"`
	// StorageCost is charged per unit carried to the next day.
	StorageCost *float64 `json:"storage_cost,omitempty" example:"1"`
	// ShortageCost is charged per unit of unmet demand.
	ShortageCost *float64 `json:"shortage_cost,omitempty" example:"50"`
	InitialStock int      `json:"initial_stock,omitempty" example:"0" minimum:"0"`
	// Algorithm selects the solver: topdown, bottomup or both.
	Algorithm      string `json:"algorithm,omitempty" example:"both" enums:"topdown,bottomup,both"`
	Step           int    `json:"step,omitempty" example:"10" minimum:"0"`
	CapacityFactor int    `json:"capacity_factor,omitempty" example:"3" minimum:"0"`
} // @name OptimizeRequest

// Validate performs field-level validation so clients get the offending field back.
func (r *OptimizeRequest) Validate() error {
	if len(r.Consumption) == 0 {
		return ErrEmptyConsumption
	}
	for i, c := range r.Consumption {
		if c < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("consumption[%d]", i),
				Message: "must be non-negative",
			}
		}
	}
	if err := validateCost("order_fee", r.OrderFee); err != nil {
		return err
	}
	if err := validateCost("storage_cost", r.StorageCost); err != nil {
		return err
	}
	if err := validateCost("shortage_cost", r.ShortageCost); err != nil {
		return err
	}
	if r.InitialStock < 0 {
		return &ValidationError{Field: "initial_stock", Message: "must be non-negative"}
	}
	if r.Step < 0 {
		return &ValidationError{Field: "step", Message: "must be positive when set"}
	}
	if r.CapacityFactor < 0 {
		return &ValidationError{Field: "capacity_factor", Message: "must be positive when set"}
	}
	if _, err := optimizer.ParseAlgorithm(r.Algorithm); err != nil {
		return ErrInvalidAlgorithm
	}
	return nil
}

// ToModel converts the request into the service's request type.
func (r *OptimizeRequest) ToModel() model.OptimizationRequest {
	consumption := make([]int, len(r.Consumption))
	copy(consumption, r.Consumption)
	return model.OptimizationRequest{
		Consumption:    consumption,
		OrderFee:       r.OrderFee,
		StorageCost:    r.StorageCost,
		ShortageCost:   r.ShortageCost,
		InitialStock:   r.InitialStock,
		Algorithm:      r.Algorithm,
		Step:           r.Step,
		CapacityFactor: r.CapacityFactor,
	}
}

func validateCost(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return &ValidationError{Field: field, Message: "must be a finite non-negative number"}
	}
	return nil
}

// MaxGenerateQuantity caps the per-record quantity a generate request may ask for.
const MaxGenerateQuantity = 1_000_000

// GenerateRequest represents the JSON request body for synthetic consumption.
//
// @Description Request to generate synthetic supply records
// @Example {"days": 30, "seed": 42, "sort_by": "quantity"}
type GenerateRequest struct {
	Days int `json:"days" binding:"required,gt=0" example:"30" minimum:"1"`
	// Seed makes the output reproducible. Omit for a random seed.
	Seed        *uint64 `json:"seed,omitempty" example:"42"`
	MinQuantity *int    `json:"min_quantity,omitempty" example:"5"`
	MaxQuantity *int    `json:"max_quantity,omitempty" example:"200"`
	// SortBy orders the returned records: name, quantity, date or expiry.
	SortBy string `json:"sort_by,omitempty" example:"date" enums:"name,quantity,date,expiry"`
	// SortAlgorithm picks merge or quick sort.
	SortAlgorithm string `json:"sort_algorithm,omitempty" example:"merge" enums:"merge,quick"`
	// Search keeps only records whose name matches.
	Search string `json:"search,omitempty" example:"Gauze"`
} // @name GenerateRequest

// Validate performs custom validation on the request.
func (r *GenerateRequest) Validate() error {
	if r.Days <= 0 {
		return &ValidationError{Field: "days", Message: "must be a positive integer"}
	}
	if r.MinQuantity != nil && *r.MinQuantity < 0 {
		return &ValidationError{Field: "min_quantity", Message: "must be non-negative"}
	}
	if r.MinQuantity != nil && *r.MinQuantity > MaxGenerateQuantity {
		return &ValidationError{Field: "min_quantity", Message: fmt.Sprintf("must be at most %d", MaxGenerateQuantity)}
	}
	if r.MaxQuantity != nil && *r.MaxQuantity > MaxGenerateQuantity {
		return &ValidationError{Field: "max_quantity", Message: fmt.Sprintf("must be at most %d", MaxGenerateQuantity)}
	}
	if r.MinQuantity != nil && r.MaxQuantity != nil && *r.MaxQuantity < *r.MinQuantity {
		return &ValidationError{Field: "max_quantity", Message: "must not be below min_quantity"}
	}
	switch records.Criterion(r.SortBy) {
	case "", records.ByName, records.ByQuantity, records.ByDate, records.ByExpiry:
	default:
		return &ValidationError{Field: "sort_by", Message: "must be one of name, quantity, date, expiry"}
	}
	switch records.SortAlgorithm(r.SortAlgorithm) {
	case "", records.MergeSortAlgorithm, records.QuickSortAlgorithm:
	default:
		return &ValidationError{Field: "sort_algorithm", Message: "must be merge or quick"}
	}
	return nil
}

// GenerateResponse carries generated records and the daily consumption derived from them.
//
// @Description Synthetic supply records and their daily consumption
type GenerateResponse struct {
	Seed        uint64           `json:"seed" example:"42"`
	Records     []records.Supply `json:"records"`
	Consumption []int            `json:"consumption" example:"120,35,80"`
} // @name GenerateResponse

// UpdateCostProfileRequest represents the JSON request body for replacing the active cost profile.
//
// @Description Request to store a new active cost profile
// @Example {"order_fee": 100, "storage_cost": 1, "shortage_cost": 50}
type UpdateCostProfileRequest struct {
	OrderFee     float64 `json:"order_fee" example:"100" minimum:"0"`
	StorageCost  float64 `json:"storage_cost" example:"1" minimum:"0"`
	ShortageCost float64 `json:"shortage_cost" example:"50" minimum:"0"`
	// Step and CapacityFactor override the grid policy; zero keeps server defaults.
	Step           int    `json:"step,omitempty" example:"10" minimum:"0"`
	CapacityFactor int    `json:"capacity_factor,omitempty" example:"3" minimum:"0"`
	CreatedBy      string `json:"created_by,omitempty" example:"pharmacy"`
} // @name UpdateCostProfileRequest

// Validate performs custom validation on the request.
func (r *UpdateCostProfileRequest) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"order_fee", r.OrderFee},
		{"storage_cost", r.StorageCost},
		{"shortage_cost", r.ShortageCost},
	} {
		if err := validateCost(f.name, &f.value); err != nil {
			return err
		}
	}
	if r.Step < 0 {
		return &ValidationError{Field: "step", Message: "must be positive when set"}
	}
	if r.CapacityFactor < 0 {
		return &ValidationError{Field: "capacity_factor", Message: "must be positive when set"}
	}
	return nil
}

// Params returns the cost coefficients carried by the request.
func (r *UpdateCostProfileRequest) Params() optimizer.CostParams {
	return optimizer.CostParams{
		OrderFee:     r.OrderFee,
		StorageCost:  r.StorageCost,
		ShortageCost: r.ShortageCost,
	}
}
