package optimizer

import "fmt"

// DayPlan is the outcome of one day when a decision sequence is replayed.
type DayPlan struct {
	Day          int     `json:"day"`
	OpeningStock int     `json:"opening_stock"`
	Consumption  int     `json:"consumption"`
	Order        int     `json:"order"`
	OrderCost    float64 `json:"order_cost"`
	StorageCost  float64 `json:"storage_cost"`
	ShortageCost float64 `json:"shortage_cost"`
	Cost         float64 `json:"cost"`
	ClosingStock int     `json:"closing_stock"`
}

// Simulate replays orders through the cost model and returns the per-day
// breakdown. It fails if the sequence has the wrong length, contains a
// negative order, or drives the stock above capacity.
func (m *Model) Simulate(orders []int) ([]DayPlan, error) {
	if len(orders) != m.Days() {
		return nil, fmt.Errorf("%w: got %d orders for %d days", ErrInvalidPlan, len(orders), m.Days())
	}

	plan := make([]DayPlan, 0, len(orders))
	stock := m.initialStock
	for day, order := range orders {
		if order < 0 {
			return nil, fmt.Errorf("%w: negative order %d on day %d", ErrInvalidPlan, order, day)
		}

		consumption := m.consumption[day]
		cost, next := Evaluate(m.params, stock, consumption, order)
		if next > m.capacity {
			return nil, fmt.Errorf("%w: day %d closes with %d above capacity %d", ErrInvalidPlan, day, next, m.capacity)
		}

		dp := DayPlan{
			Day:          day,
			OpeningStock: stock,
			Consumption:  consumption,
			Order:        order,
			Cost:         cost,
			ClosingStock: next,
		}
		if order > 0 {
			dp.OrderCost = m.params.OrderFee
		}
		if balance := stock - consumption + order; balance > 0 {
			dp.StorageCost = float64(balance) * m.params.StorageCost
		} else if balance < 0 {
			dp.ShortageCost = float64(-balance) * m.params.ShortageCost
		}

		plan = append(plan, dp)
		stock = next
	}
	return plan, nil
}

// TotalCost sums the per-day costs in day order.
func TotalCost(plan []DayPlan) float64 {
	var total float64
	for _, d := range plan {
		total += d.Cost
	}
	return total
}
