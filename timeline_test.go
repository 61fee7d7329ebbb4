package portfolio

import (
	"errors"
	"testing"
)

func twoFundSeries(t *testing.T) map[string]*PriceSeries {
	t.Helper()
	return map[string]*PriceSeries{
		"VT": newSeries(t, "VT", map[string]float64{
			"2020-01-01": 100,
			"2020-02-03": 110,
			"2020-03-02": 105,
		}),
		"BND": newSeries(t, "BND", map[string]float64{
			"2020-01-01": 50,
			"2020-02-03": 51,
			"2020-03-02": 52,
		}),
	}
}

func TestAlignTwoFunds(t *testing.T) {
	alloc := Allocation{"VT": 0.6, "BND": 0.4}
	timeline, err := Align(alloc, twoFundSeries(t), Range{})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}

	if timeline.Len() != 3 {
		t.Fatalf("Len() = %v want 3", timeline.Len())
	}
	for i := 1; i < timeline.Len(); i++ {
		if !timeline.Day(i - 1).Before(timeline.Day(i)) {
			t.Errorf("dates not strictly increasing at %d: %v then %v", i, timeline.Day(i-1), timeline.Day(i))
		}
	}
	for i := range timeline.Len() {
		for _, ticker := range timeline.Tickers() {
			if _, ok := timeline.Price(ticker, i); !ok {
				t.Errorf("missing price for %q on %v", ticker, timeline.Day(i))
			}
		}
	}
}

func TestAlignForwardFillsMissingDates(t *testing.T) {
	series := map[string]*PriceSeries{
		"VT": newSeries(t, "VT", map[string]float64{
			"2020-01-01": 100,
			"2020-01-02": 101,
			"2020-01-03": 102,
		}),
		// BND did not trade on the 2nd.
		"BND": newSeries(t, "BND", map[string]float64{
			"2020-01-01": 50,
			"2020-01-03": 52,
		}),
	}
	timeline, err := Align(Allocation{"VT": 0.5, "BND": 0.5}, series, Range{})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if timeline.Len() != 3 {
		t.Fatalf("Len() = %v want 3 (union of native dates)", timeline.Len())
	}
	if price, _ := timeline.Price("BND", 1); price != 50 {
		t.Errorf("BND price on gap day = %v want forward-filled 50", price)
	}
}

func TestAlignClampsToIntersection(t *testing.T) {
	series := map[string]*PriceSeries{
		"VT": newSeries(t, "VT", map[string]float64{
			"2019-06-01": 90,
			"2020-01-01": 100,
			"2020-02-01": 110,
		}),
		"BND": newSeries(t, "BND", map[string]float64{
			"2020-01-01": 50,
			"2020-02-01": 51,
			"2021-01-01": 53,
		}),
	}
	timeline, err := Align(Allocation{"VT": 0.5, "BND": 0.5}, series, Range{})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	want := Range{From: MustParse("2020-01-01"), To: MustParse("2020-02-01")}
	if got := timeline.Coverage(); got != want {
		t.Errorf("Coverage() = %v want %v (intersection only, no extrapolation)", got, want)
	}
}

func TestAlignErrors(t *testing.T) {
	series := twoFundSeries(t)

	if _, err := Align(Allocation{}, series, Range{}); !errors.Is(err, ErrInvalidAllocation) {
		t.Errorf("Align(empty allocation) error = %v want ErrInvalidAllocation", err)
	}

	if _, err := Align(Allocation{"VT": 1}, nil, Range{}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Align(no series) error = %v want ErrInsufficientData", err)
	}

	// Requested range entirely outside the series' coverage.
	bounds := NewRange(MustParse("2030-01-01"), MustParse("2030-12-31"))
	if _, err := Align(Allocation{"VT": 0.6, "BND": 0.4}, series, bounds); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Align(out of coverage) error = %v want ErrInsufficientData", err)
	}

	// Two series that never overlap.
	disjoint := map[string]*PriceSeries{
		"A": newSeries(t, "A", map[string]float64{"2019-01-01": 1, "2019-06-01": 2}),
		"B": newSeries(t, "B", map[string]float64{"2020-01-01": 1, "2020-06-01": 2}),
	}
	if _, err := Align(Allocation{"A": 0.5, "B": 0.5}, disjoint, Range{}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Align(disjoint coverage) error = %v want ErrInsufficientData", err)
	}
}

func TestAlignIsDeterministic(t *testing.T) {
	alloc := Allocation{"VT": 0.6, "BND": 0.4}
	series := twoFundSeries(t)

	a, err := Align(alloc, series, Range{})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	b, err := Align(alloc, series, Range{})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}

	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %v vs %v", a.Len(), b.Len())
	}
	for i := range a.Len() {
		if a.Day(i) != b.Day(i) {
			t.Errorf("date %d differs: %v vs %v", i, a.Day(i), b.Day(i))
		}
		for _, ticker := range a.Tickers() {
			pa, _ := a.Price(ticker, i)
			pb, _ := b.Price(ticker, i)
			if pa != pb {
				t.Errorf("price %q at %d differs: %v vs %v", ticker, i, pa, pb)
			}
		}
	}
}
