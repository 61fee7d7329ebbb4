package portfolio

import (
	"math"
	"testing"
)

// newSeries builds a validated price series from date-string keyed closes.
func newSeries(t *testing.T, ticker string, closes map[string]float64) *PriceSeries {
	t.Helper()
	var prices History[float64]
	for on, close := range closes {
		prices.Append(MustParse(on), close)
	}
	s, err := NewPriceSeries(ticker, &prices)
	if err != nil {
		t.Fatalf("NewPriceSeries(%q) = %v", ticker, err)
	}
	return s
}

// almost compares floats with an absolute tolerance.
func almost(got, want, tol float64) bool { return math.Abs(got-want) <= tol }
