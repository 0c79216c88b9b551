package optimizer

import (
	"context"
	"fmt"
)

// state identifies a subproblem: the opening stock on a given day.
type state struct {
	day   int
	stock int
}

// memoEntry is the solved value of a state together with the decision that achieves it.
type memoEntry struct {
	cost  float64
	order int
	next  int
}

// topDown carries the per-call memo. It is never shared between calls.
type topDown struct {
	ctx  context.Context
	m    *Model
	memo map[state]memoEntry
}

// TopDown solves the model by memoized recursion from (0, initial stock).
func (m *Model) TopDown(ctx context.Context) (Solution, error) {
	td := &topDown{
		ctx:  ctx,
		m:    m,
		memo: make(map[state]memoEntry, m.Days()*(len(m.grid)+1)),
	}

	cost, err := td.solve(0, m.initialStock)
	if err != nil {
		return Solution{}, err
	}

	// Each memo entry stores its own order and successor, so following the
	// chain yields "this day's order, then the child's sequence".
	orders := make([]int, 0, m.Days())
	stock := m.initialStock
	for day := 0; day < m.Days(); day++ {
		e := td.memo[state{day: day, stock: stock}]
		orders = append(orders, e.order)
		stock = e.next
	}

	return Solution{
		Cost:           cost,
		Orders:         orders,
		StatesExplored: len(td.memo),
		Algorithm:      AlgorithmTopDown,
	}, nil
}

// solve returns the minimum cost from (day, stock) to the end of the horizon.
func (td *topDown) solve(day, stock int) (float64, error) {
	if day == td.m.Days() {
		return 0, nil
	}

	key := state{day: day, stock: stock}
	if e, ok := td.memo[key]; ok {
		return e.cost, nil
	}

	if err := td.ctx.Err(); err != nil {
		return 0, fmt.Errorf("optimizer: top-down solve interrupted: %w", err)
	}

	var best memoEntry
	found := false
	consumption := td.m.consumption[day]

	for _, order := range td.m.grid {
		cost, next := Evaluate(td.m.params, stock, consumption, order)
		if next > td.m.capacity {
			// next only grows with order; the rest of the grid is infeasible too
			break
		}

		future, err := td.solve(day+1, next)
		if err != nil {
			return 0, err
		}

		total := cost + future
		if !found || total < best.cost {
			best = memoEntry{cost: total, order: order, next: next}
			found = true
		}
	}

	if !found {
		return 0, fmt.Errorf("%w: day %d stock %d", ErrInfeasibleState, day, stock)
	}

	td.memo[key] = best
	return best.cost, nil
}
