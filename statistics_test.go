package portfolio

import (
	"errors"
	"math"
	"testing"
)

// traj builds a trajectory from parallel slices of dates, values and
// cumulative contributions.
func traj(t *testing.T, dates []string, values, contributed []float64) *Trajectory {
	t.Helper()
	if len(dates) != len(values) || len(dates) != len(contributed) {
		t.Fatalf("mismatched fixture lengths")
	}
	tr := &Trajectory{}
	for i := range dates {
		tr.points = append(tr.points, Point{Date: MustParse(dates[i]), Value: values[i], Contributed: contributed[i]})
	}
	return tr
}

func TestComputeStatisticsCAGR(t *testing.T) {
	// One year, 100 -> 110, with a small wiggle so volatility is defined.
	tr := traj(t,
		[]string{"2019-01-01", "2019-07-01", "2020-01-01"},
		[]float64{100, 104, 110},
		[]float64{100, 100, 100},
	)
	stats, err := ComputeStatistics(tr, 0)
	if err != nil {
		t.Fatalf("ComputeStatistics() error = %v", err)
	}

	days := float64(MustParse("2019-01-01").DaysUntil(MustParse("2020-01-01")))
	want := AsPercent(math.Pow(110.0/100.0, 365.25/days) - 1)
	if !stats.CAGR.Equal(want) {
		t.Errorf("CAGR = %v want %v", stats.CAGR, want)
	}
	if stats.FinalValue != 110 || stats.TotalContributed != 100 {
		t.Errorf("final/contributed = %v/%v want 110/100", stats.FinalValue, stats.TotalContributed)
	}
	if !stats.ROI.Equal(AsPercent(0.10)) {
		t.Errorf("ROI = %v want 10%%", stats.ROI)
	}
}

func TestComputeStatisticsTimeWeightedReturns(t *testing.T) {
	// The only value changes come from contributions: every time-weighted
	// return is zero, hence a degenerate (flat) series.
	tr := traj(t,
		[]string{"2020-01-01", "2020-02-01", "2020-03-01"},
		[]float64{1000, 1500, 2000},
		[]float64{1000, 1500, 2000},
	)
	returns := periodReturns(tr)
	for i, r := range returns {
		if r != 0 {
			t.Errorf("returns[%d] = %v want 0 (contribution excluded)", i, r)
		}
	}
	if _, err := ComputeStatistics(tr, 0); !errors.Is(err, ErrDegenerateSeries) {
		t.Errorf("ComputeStatistics(contribution-only growth) error = %v want ErrDegenerateSeries", err)
	}
}

func TestComputeStatisticsFlatSeries(t *testing.T) {
	tr := traj(t,
		[]string{"2020-01-01", "2020-02-01", "2020-03-01"},
		[]float64{1000, 1000, 1000},
		[]float64{1000, 1000, 1000},
	)
	if _, err := ComputeStatistics(tr, 0); !errors.Is(err, ErrDegenerateSeries) {
		t.Errorf("ComputeStatistics(flat) error = %v want ErrDegenerateSeries", err)
	}
}

func TestComputeStatisticsDegenerateSpans(t *testing.T) {
	short := traj(t, []string{"2020-01-01"}, []float64{1000}, []float64{1000})
	if _, err := ComputeStatistics(short, 0); !errors.Is(err, ErrDegenerateSeries) {
		t.Errorf("ComputeStatistics(single point) error = %v want ErrDegenerateSeries", err)
	}

	zeroStart := traj(t,
		[]string{"2020-01-01", "2020-02-01"},
		[]float64{0, 100},
		[]float64{0, 100},
	)
	if _, err := ComputeStatistics(zeroStart, 0); !errors.Is(err, ErrDegenerateSeries) {
		t.Errorf("ComputeStatistics(zero start) error = %v want ErrDegenerateSeries", err)
	}
}

func TestMaxDrawdown(t *testing.T) {
	// Peak 120, trough 90: drawdown 25%.
	tr := traj(t,
		[]string{"2020-01-01", "2020-02-01", "2020-03-01", "2020-04-01", "2020-05-01"},
		[]float64{100, 120, 90, 110, 115},
		[]float64{100, 100, 100, 100, 100},
	)
	if got := maxDrawdown(tr); !almost(got, 0.25, 1e-12) {
		t.Errorf("maxDrawdown = %v want 0.25", got)
	}

	// Monotonically increasing values never draw down.
	up := traj(t,
		[]string{"2020-01-01", "2020-02-01", "2020-03-01"},
		[]float64{100, 110, 120},
		[]float64{100, 100, 100},
	)
	if got := maxDrawdown(up); got != 0 {
		t.Errorf("maxDrawdown(monotone) = %v want exactly 0", got)
	}
}

func TestPeriodsPerYear(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  float64
	}{
		{"daily", []string{"2020-01-01", "2020-01-02", "2020-01-03", "2020-01-06"}, 252},
		{"weekly", []string{"2020-01-06", "2020-01-13", "2020-01-20"}, 52},
		{"monthly", []string{"2020-01-01", "2020-02-01", "2020-03-01"}, 12},
		{"quarterly", []string{"2020-01-01", "2020-04-01", "2020-07-01"}, 4},
	}
	for _, tc := range tests {
		values := make([]float64, len(tc.dates))
		contributed := make([]float64, len(tc.dates))
		for i := range tc.dates {
			values[i] = 100 + float64(i)
			contributed[i] = 100
		}
		tr := traj(t, tc.dates, values, contributed)
		if got := periodsPerYear(tr); got != tc.want {
			t.Errorf("%s: periodsPerYear = %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestSharpeUsesRiskFreeRate(t *testing.T) {
	tr := traj(t,
		[]string{"2020-01-01", "2020-02-01", "2020-03-01", "2020-04-01"},
		[]float64{100, 103, 101, 106},
		[]float64{100, 100, 100, 100},
	)
	zero, err := ComputeStatistics(tr, 0)
	if err != nil {
		t.Fatalf("ComputeStatistics(0) error = %v", err)
	}
	risky, err := ComputeStatistics(tr, 0.05)
	if err != nil {
		t.Fatalf("ComputeStatistics(0.05) error = %v", err)
	}
	if risky.Sharpe >= zero.Sharpe {
		t.Errorf("Sharpe with risk-free 5%% = %v want < %v", risky.Sharpe, zero.Sharpe)
	}
	diff := zero.Sharpe - risky.Sharpe
	want := 0.05 / (float64(zero.Volatility) / 100)
	if !almost(diff, want, 1e-9) {
		t.Errorf("Sharpe difference = %v want %v", diff, want)
	}
}
