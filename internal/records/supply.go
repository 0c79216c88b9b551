// Package records keeps the consumption journal of medical supplies: the
// records themselves, FIFO and LIFO journals over them, lookups by name and
// the sort routines used to present them.
package records

import (
	"fmt"
	"time"

	"github.com/rs/xid"
)

// Supply is one consumption record of a supply item on a given day.
type Supply struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"date"`
	Expiry   time.Time `json:"expiry"`
}

// NewSupply builds a record that expires shelfLife after date.
func NewSupply(name string, quantity int, date time.Time, shelfLife time.Duration) Supply {
	return Supply{
		ID:       xid.New().String(),
		Name:     name,
		Quantity: quantity,
		Date:     date,
		Expiry:   date.Add(shelfLife),
	}
}

// String renders the record as a fixed-width journal line.
func (s Supply) String() string {
	return fmt.Sprintf("%s | %-20s | Qty: %4d | Expires: %s",
		s.Date.Format(time.DateOnly), s.Name, s.Quantity, s.Expiry.Format(time.DateOnly))
}

// DailyConsumption sums quantities per calendar day, from the earliest to
// the latest record date. Days without records contribute zero.
func DailyConsumption(supplies []Supply) []int {
	if len(supplies) == 0 {
		return nil
	}

	first, last := day(supplies[0].Date), day(supplies[0].Date)
	for _, s := range supplies[1:] {
		d := day(s.Date)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	days := int(last.Sub(first).Hours()/24) + 1
	out := make([]int, days)
	for _, s := range supplies {
		idx := int(day(s.Date).Sub(first).Hours() / 24)
		out[idx] += s.Quantity
	}
	return out
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
