package portfolio

import (
	"fmt"
	"iter"
)

// PriceSeries is one fund's chronological closing-price history.
//
// It is built once from a CSV source, validated at construction, and never
// mutated afterwards, so it is safe to share across concurrent simulations.
type PriceSeries struct {
	ticker string
	prices History[float64]
}

// NewPriceSeries builds a validated series from a price history.
//
// The history must not be empty and every price must be strictly positive.
func NewPriceSeries(ticker string, prices *History[float64]) (*PriceSeries, error) {
	if ticker == "" {
		return nil, fmt.Errorf("price series without a ticker: %w", ErrInsufficientData)
	}
	if prices == nil || prices.Len() == 0 {
		return nil, fmt.Errorf("no prices for %q: %w", ticker, ErrInsufficientData)
	}
	for on, price := range prices.Values() {
		if price <= 0 {
			return nil, fmt.Errorf("non-positive price %v for %q on %s: %w", price, ticker, on, ErrInsufficientData)
		}
	}
	return &PriceSeries{ticker: ticker, prices: *prices}, nil
}

// Ticker returns the fund ticker the series belongs to.
func (s *PriceSeries) Ticker() string { return s.ticker }

// Len returns the number of trading dates in the series.
func (s *PriceSeries) Len() int { return s.prices.Len() }

// Coverage returns the range from the first to the last known date.
func (s *PriceSeries) Coverage() Range {
	from, _ := s.prices.First()
	to, _ := s.prices.Latest()
	return Range{From: from, To: to}
}

// Price returns the closing price on exactly that day.
func (s *PriceSeries) Price(on Date) (float64, bool) { return s.prices.Get(on) }

// PriceAsOf returns the closing price on that day, or the most recent prior
// close when the fund did not trade that day (forward fill).
func (s *PriceSeries) PriceAsOf(on Date) (float64, bool) { return s.prices.ValueAsOf(on) }

// Values returns an iterator over all date/close pairs in chronological order.
func (s *PriceSeries) Values() iter.Seq2[Date, float64] { return s.prices.Values() }

// history exposes the underlying history for date-merging across series.
func (s *PriceSeries) history() *History[float64] { return &s.prices }
