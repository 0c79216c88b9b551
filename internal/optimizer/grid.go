package optimizer

import (
	"fmt"
	"math"
)

const (
	// DefaultStep is the spacing of candidate order quantities.
	DefaultStep = 10
	// DefaultCapacityFactor scales the peak daily consumption into the stock ceiling.
	DefaultCapacityFactor = 3
	// DefaultMaxCapacity bounds the stock ceiling, and with it the bottom-up
	// table width and the order grid length.
	DefaultMaxCapacity = 20000
)

// Capacity returns factor × max(consumption). It fails with
// ErrCapacityTooLarge when the product does not fit in an int.
func Capacity(consumption []int, factor int) (int, error) {
	peak := 0
	for _, c := range consumption {
		if c > peak {
			peak = c
		}
	}
	if factor > 0 && peak > math.MaxInt/factor {
		return 0, fmt.Errorf("%w: %d × %d overflows", ErrCapacityTooLarge, peak, factor)
	}
	return peak * factor, nil
}

// OrderGrid returns the ascending candidate orders {0, step, 2·step, …} up to capacity.
func OrderGrid(capacity, step int) []int {
	grid := make([]int, 0, capacity/step+1)
	for q := 0; q <= capacity; q += step {
		grid = append(grid, q)
	}
	return grid
}
