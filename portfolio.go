package quantfolio

import (
	"iter"
	"slices"
)

// Portfolio is an ordered, append-only collection of positions. Positions
// keep their insertion order so that reports are deterministic; the
// aggregate figures do not depend on it.
type Portfolio struct {
	positions []Position
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// Add appends positions to the portfolio.
func (p *Portfolio) Add(positions ...Position) {
	p.positions = append(p.positions, positions...)
}

// Len returns the number of positions held.
func (p *Portfolio) Len() int { return len(p.positions) }

// Positions iterates over all positions in insertion order.
func (p *Portfolio) Positions() iter.Seq[Position] {
	return slices.Values(p.positions)
}

// TotalValuation sums the current market value of all positions, in
// insertion order.
func (p *Portfolio) TotalValuation() float64 {
	var total float64
	for _, pos := range p.positions {
		total += pos.CurrentValue()
	}
	return total
}

// AverageMarketPrice returns the arithmetic mean of per-unit market prices
// across positions. It is not value-weighted. An empty portfolio averages
// to 0.
func (p *Portfolio) AverageMarketPrice() float64 {
	if len(p.positions) == 0 {
		return 0
	}
	var sum float64
	for _, pos := range p.positions {
		sum += pos.MarketPrice()
	}
	return sum / float64(len(p.positions))
}

// HasStraddle reports whether the portfolio holds at least one call option
// and at least one put option, regardless of strikes, expirations or
// quantities. It returns as soon as both sides have been seen.
func (p *Portfolio) HasStraddle() bool {
	var hasCall, hasPut bool
	for _, pos := range p.positions {
		o, ok := pos.(Option)
		if !ok {
			continue
		}
		switch o.typ {
		case Call:
			hasCall = true
		case Put:
			hasPut = true
		}
		if hasCall && hasPut {
			return true
		}
	}
	return false
}
