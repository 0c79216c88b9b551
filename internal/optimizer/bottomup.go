package optimizer

import (
	"context"
	"fmt"
)

// ctxCheckInterval is how many stocks of a row are filled between context checks.
const ctxCheckInterval = 256

// cell is one entry of the bottom-up table.
type cell struct {
	cost  float64
	order int
}

// BottomUp solves the model by tabulating every (day, stock) pair from the
// last day backwards, then walks the table forward from the initial stock.
func (m *Model) BottomUp(ctx context.Context) (Solution, error) {
	days := m.Days()
	width := m.capacity + 1

	table := make([][]cell, days+1)
	for day := range table {
		table[day] = make([]cell, width)
	}
	// table[days] stays zeroed: the terminal row costs nothing and its order is unused.

	for day := days - 1; day >= 0; day-- {
		consumption := m.consumption[day]
		row, nextRow := table[day], table[day+1]

		for stock := 0; stock < width; stock++ {
			// a single row costs capacity × grid evaluations
			if stock%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return Solution{}, fmt.Errorf("optimizer: bottom-up solve interrupted: %w", err)
				}
			}

			var best cell
			found := false

			for _, order := range m.grid {
				cost, next := Evaluate(m.params, stock, consumption, order)
				if next > m.capacity {
					break
				}

				total := cost + nextRow[next].cost
				if !found || total < best.cost {
					best = cell{cost: total, order: order}
					found = true
				}
			}

			if !found {
				return Solution{}, fmt.Errorf("%w: day %d stock %d", ErrInfeasibleState, day, stock)
			}
			row[stock] = best
		}
	}

	orders := make([]int, 0, days)
	stock := m.initialStock
	for day := 0; day < days; day++ {
		order := table[day][stock].order
		orders = append(orders, order)
		_, stock = Evaluate(m.params, stock, m.consumption[day], order)
	}

	return Solution{
		Cost:           table[0][m.initialStock].cost,
		Orders:         orders,
		StatesExplored: days * width,
		Algorithm:      AlgorithmBottomUp,
	}, nil
}
