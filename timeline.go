package portfolio

import (
	"fmt"
	"iter"
)

// Timeline is the gap-free schedule shared by all funds of an allocation:
// a strictly increasing sequence of trading dates, each carrying one price
// per weighted ticker.
type Timeline struct {
	days    []Date
	tickers []string
	prices  map[string][]float64 // per ticker, indexed like days
}

// Align builds the common timeline for every ticker weighted in alloc.
//
// The usable range is the intersection of each series' coverage, further
// clamped by bounds (zero boundaries leave bounds open). Within it, the
// timeline uses the union of the series' native trading dates; a ticker
// missing a quote on one of those dates inherits its most recent prior
// close. Dates where some ticker has no prior close at all are dropped.
func Align(alloc Allocation, series map[string]*PriceSeries, bounds Range) (*Timeline, error) {
	tickers := alloc.Tickers()
	if len(tickers) == 0 {
		return nil, fmt.Errorf("nothing to align: %w", ErrInvalidAllocation)
	}

	histories := make([]*History[float64], 0, len(tickers))
	usable := bounds
	for _, ticker := range tickers {
		s, ok := series[ticker]
		if !ok || s == nil {
			return nil, fmt.Errorf("no price series for %q: %w", ticker, ErrInsufficientData)
		}
		histories = append(histories, s.history())
		usable = usable.Intersect(s.Coverage())
	}
	if usable.IsEmpty() {
		return nil, fmt.Errorf("no overlapping dates for %v: %w", tickers, ErrInsufficientData)
	}

	t := &Timeline{
		tickers: tickers,
		prices:  make(map[string][]float64, len(tickers)),
	}
	for on := range Iterate(histories...) {
		if !usable.Contains(on) {
			continue
		}
		row := make([]float64, len(tickers))
		complete := true
		for i, ticker := range tickers {
			price, ok := series[ticker].PriceAsOf(on)
			if !ok {
				// No prior close to fill from: this date cannot be used.
				complete = false
				break
			}
			row[i] = price
		}
		if !complete {
			continue
		}
		t.days = append(t.days, on)
		for i, ticker := range tickers {
			t.prices[ticker] = append(t.prices[ticker], row[i])
		}
	}

	if len(t.days) == 0 {
		return nil, fmt.Errorf("no usable dates within %s for %v: %w", usable, tickers, ErrInsufficientData)
	}
	return t, nil
}

// Len returns the number of aligned dates.
func (t *Timeline) Len() int { return len(t.days) }

// Day returns the i-th aligned date.
func (t *Timeline) Day(i int) Date { return t.days[i] }

// Tickers returns the tickers carried by the timeline, in sorted order.
func (t *Timeline) Tickers() []string { return t.tickers }

// Coverage returns the range from the first to the last aligned date.
func (t *Timeline) Coverage() Range { return Range{From: t.days[0], To: t.days[len(t.days)-1]} }

// Price returns the (possibly forward-filled) price of ticker on the i-th date.
func (t *Timeline) Price(ticker string, i int) (float64, bool) {
	row, ok := t.prices[ticker]
	if !ok || i < 0 || i >= len(row) {
		return 0, false
	}
	return row[i], true
}

// Days returns an iterator over the aligned dates in order.
func (t *Timeline) Days() iter.Seq2[int, Date] {
	return func(yield func(int, Date) bool) {
		for i, on := range t.days {
			if !yield(i, on) {
				return
			}
		}
	}
}
