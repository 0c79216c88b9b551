// Package optimizer decides how much stock to reorder on each day of a
// planning horizon so that ordering, storage and shortage costs are minimal.
//
// The model is a discrete-time dynamic program over (day, stock) states.
// Order quantities are drawn from a fixed-step grid bounded by a capacity
// derived from the consumption sequence. Two solvers are provided:
//
//   - TopDown: memoized recursion keyed on the (day, stock) pair.
//   - BottomUp: tabulation over a [days+1][capacity+1] table.
//
// Both enumerate the grid in ascending order and keep the first order on
// exact cost ties, so they always agree on the minimum cost.
//
//	m, err := optimizer.New([]int{50, 20, 40}, optimizer.CostParams{
//		OrderFee: 100, StorageCost: 1, ShortageCost: 50,
//	})
//	if err != nil {
//		return err
//	}
//	sol, err := m.BottomUp(ctx)
package optimizer
