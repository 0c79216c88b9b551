// Package generator produces synthetic supply consumption for demos and tests.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/xid"

	"github.com/guttosm/inventory-optimizer/internal/records"
)

var (
	// ErrInvalidCount is returned when the number of days to generate is not positive.
	ErrInvalidCount = errors.New("generator: count must be positive")
	// ErrInvalidRange is returned for a negative, inverted or unbounded quantity or
	// expiry range, or an empty name catalogue.
	ErrInvalidRange = errors.New("generator: invalid range")
)

// DefaultNames is the supply catalogue used when no names are configured.
var DefaultNames = []string{
	"Syringe",
	"Gauze",
	"Alcohol",
	"Gloves",
	"Mask",
	"Bandage",
	"Catheter",
	"Saline Solution",
	"Thermometer",
}

// Generator draws supply records from a seeded source.
type Generator struct {
	rng       *rand.Rand
	seed      uint64
	minQty    int
	maxQty    int
	minExpiry int
	maxExpiry int
	start     time.Time
	names     []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the random source so runs are reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithQuantityRange bounds the daily quantity, both ends inclusive.
func WithQuantityRange(minQty, maxQty int) Option {
	return func(g *Generator) {
		g.minQty, g.maxQty = minQty, maxQty
	}
}

// WithExpiryRange bounds the shelf life in days, both ends inclusive.
func WithExpiryRange(minDays, maxDays int) Option {
	return func(g *Generator) {
		g.minExpiry, g.maxExpiry = minDays, maxDays
	}
}

// WithStart sets the date of the first record.
func WithStart(start time.Time) Option {
	return func(g *Generator) {
		g.start = start
	}
}

// WithNames replaces the supply catalogue.
func WithNames(names ...string) Option {
	return func(g *Generator) {
		g.names = append([]string(nil), names...)
	}
}

// New returns a Generator. Without WithSeed the seed is random.
func New(opts ...Option) (*Generator, error) {
	now := time.Now().UTC()
	g := &Generator{
		seed:      rand.Uint64(),
		minQty:    5,
		maxQty:    200,
		minExpiry: 15,
		maxExpiry: 60,
		start:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		names:     DefaultNames,
	}
	for _, opt := range opts {
		opt(g)
	}

	if !validRange(g.minQty, g.maxQty) {
		return nil, fmt.Errorf("%w: quantity %d..%d", ErrInvalidRange, g.minQty, g.maxQty)
	}
	if !validRange(g.minExpiry, g.maxExpiry) {
		return nil, fmt.Errorf("%w: expiry %d..%d days", ErrInvalidRange, g.minExpiry, g.maxExpiry)
	}
	if len(g.names) == 0 {
		return nil, fmt.Errorf("%w: empty name catalogue", ErrInvalidRange)
	}

	g.rng = rand.New(rand.NewPCG(g.seed, g.seed^0x9e3779b97f4a7c15))
	return g, nil
}

// Seed returns the seed in use, so a random run can be replayed.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Records returns n supplies, one per consecutive day starting at the configured date.
func (g *Generator) Records(n int) ([]records.Supply, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	out := make([]records.Supply, n)
	for i := range out {
		date := g.start.AddDate(0, 0, i)
		shelf := g.between(g.minExpiry, g.maxExpiry)
		out[i] = records.Supply{
			ID:       xid.NewWithTime(date).String(),
			Name:     g.names[g.rng.IntN(len(g.names))],
			Quantity: g.between(g.minQty, g.maxQty),
			Date:     date,
			Expiry:   date.AddDate(0, 0, shelf),
		}
	}
	return out, nil
}

// Consumption returns only the daily quantities of n generated days.
func (g *Generator) Consumption(n int) ([]int, error) {
	recs, err := g.Records(n)
	if err != nil {
		return nil, err
	}
	return records.DailyConsumption(recs), nil
}

// validRange reports whether between can draw from [lo, hi]: the bounds are
// ordered and non-negative, and the width hi-lo+1 fits in an int.
func validRange(lo, hi int) bool {
	return lo >= 0 && hi >= lo && hi-lo < math.MaxInt
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
