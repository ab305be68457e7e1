package domain

import (
	"math/big"
	"time"
)

// ReductionType discriminates how a price reduction applies.
type ReductionType string

const (
	// ReductionPercentage scales the base price by (1 - rate).
	ReductionPercentage ReductionType = "percentage"
	// ReductionAmount substitutes a fixed reduced price.
	ReductionAmount ReductionType = "amount"
)

// Reduction is a time-bound price reduction attached to a product.
// A zero start or end time leaves that side of the window open.
type Reduction struct {
	kind  ReductionType
	rate  *big.Rat
	price *Money
	from  time.Time
	to    time.Time
}

// NewPercentageReduction creates a reduction scaling the base price by
// (1 - rate). The rate is a fraction of the base price in [0, 1].
func NewPercentageReduction(rate float64, from, to time.Time) (*Reduction, error) {
	if rate < 0 || rate > 1 {
		return nil, ErrInvalidReductionRate
	}
	rateRat := new(big.Rat).SetFloat64(rate)
	if rateRat == nil {
		return nil, ErrInvalidReductionRate
	}
	return &Reduction{
		kind: ReductionPercentage,
		rate: rateRat,
		from: from,
		to:   to,
	}, nil
}

// NewAmountReduction creates a reduction that replaces the base price with
// a fixed reduced price.
func NewAmountReduction(price *Money, from, to time.Time) (*Reduction, error) {
	if price == nil {
		return nil, ErrInvalidReductionPrice
	}
	return &Reduction{
		kind:  ReductionAmount,
		price: price,
		from:  from,
		to:    to,
	}, nil
}

// Type returns the reduction kind.
func (r *Reduction) Type() ReductionType {
	return r.kind
}

// ActiveAt checks if the reduction applies at the given time.
// Both window ends are inclusive; a zero end is open.
func (r *Reduction) ActiveAt(t time.Time) bool {
	if !r.from.IsZero() && t.Before(r.from) {
		return false
	}
	if !r.to.IsZero() && t.After(r.to) {
		return false
	}
	return true
}

// Apply returns the reduced price for base.
func (r *Reduction) Apply(base *Money) *Money {
	if r.kind == ReductionPercentage {
		return base.Subtract(base.MultiplyByRat(r.rate))
	}
	return r.price.Copy()
}

// ComputedPrice is the price shown for a product row: the reduction
// applied to the base price when active, otherwise the base price.
func ComputedPrice(base *Money, r *Reduction, now time.Time) *Money {
	if r != nil && r.ActiveAt(now) {
		return r.Apply(base)
	}
	return base.Copy()
}
