package portfolio

import (
	"fmt"
	"math"
	"sort"
)

// weightTolerance is how far from 1.0 a normalized weight sum may drift.
const weightTolerance = 1e-6

// Allocation maps fund tickers to target weights (fractions of the portfolio).
//
// Allocations are treated as immutable once built: Normalize returns a copy
// and the simulator never writes into the map.
type Allocation map[string]float64

// Tickers returns the tickers carrying a non-zero weight, sorted for
// deterministic iteration.
func (a Allocation) Tickers() []string {
	tickers := make([]string, 0, len(a))
	for ticker, weight := range a {
		if weight != 0 {
			tickers = append(tickers, ticker)
		}
	}
	sort.Strings(tickers)
	return tickers
}

// Normalize validates the allocation and rescales the weights to sum to 1.0.
//
// Weights must be non-negative and must not all be zero. A sum already
// within tolerance of 1.0 is kept as-is; any other positive sum is divided
// out, so "VTI: 34, VXUS: 33, BND: 33" works the same as fractions.
func (a Allocation) Normalize() (Allocation, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("no tickers: %w", ErrInvalidAllocation)
	}
	var sum float64
	for ticker, weight := range a {
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("weight %v for %q: %w", weight, ticker, ErrInvalidAllocation)
		}
		sum += weight
	}
	if sum <= 0 {
		return nil, fmt.Errorf("weights sum to %v: %w", sum, ErrInvalidAllocation)
	}

	normalized := make(Allocation, len(a))
	for ticker, weight := range a {
		if weight == 0 {
			continue
		}
		normalized[ticker] = weight / sum
	}
	if math.Abs(sum-1.0) <= weightTolerance {
		// Keep the user's exact weights when they already sum to 1.
		for ticker := range normalized {
			normalized[ticker] = a[ticker]
		}
	}

	var check float64
	for _, weight := range normalized {
		check += weight
	}
	if math.Abs(check-1.0) > weightTolerance {
		return nil, fmt.Errorf("weights sum to %v after normalization: %w", check, ErrInvalidAllocation)
	}
	return normalized, nil
}
