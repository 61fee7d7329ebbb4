package portfolio

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes the risk and return of one trajectory.
//
// Period returns are time-weighted: the cash injected during a step is
// subtracted from that step's end value before the ratio is taken, so
// contributions do not register as performance.
type Statistics struct {
	CAGR             Percent // compound annual growth rate
	Volatility       Percent // annualized standard deviation of period returns
	Sharpe           float64 // excess annualized return per unit of volatility
	MaxDrawdown      Percent // worst peak-to-trough decline, in [0,100]
	FinalValue       float64
	TotalContributed float64
	Profit           float64
	ROI              Percent // profit over total contributed
	PeriodsPerYear   float64 // sampling cadence inferred from the dates
}

// ComputeStatistics derives summary metrics from a trajectory.
//
// riskFree is the annual risk-free rate as a fraction (0.02 for 2%). It
// fails with ErrDegenerateSeries when the metrics are undefined: fewer than
// two points, a non-positive starting value, or zero variance.
func ComputeStatistics(trajectory *Trajectory, riskFree float64) (*Statistics, error) {
	if trajectory == nil || trajectory.Len() < 2 {
		return nil, fmt.Errorf("need at least two points: %w", ErrDegenerateSeries)
	}

	first, final := trajectory.First(), trajectory.Final()
	days := first.Date.DaysUntil(final.Date)
	if days <= 0 {
		return nil, fmt.Errorf("empty date span %s: %w", first.Date, ErrDegenerateSeries)
	}
	if first.Value <= 0 {
		return nil, fmt.Errorf("non-positive initial value %v: %w", first.Value, ErrDegenerateSeries)
	}

	stats := &Statistics{
		FinalValue:       final.Value,
		TotalContributed: final.Contributed,
		Profit:           final.Value - final.Contributed,
	}
	if final.Contributed > 0 {
		stats.ROI = AsPercent((final.Value - final.Contributed) / final.Contributed)
	}

	stats.CAGR = AsPercent(math.Pow(final.Value/first.Value, 365.25/float64(days)) - 1)

	returns := periodReturns(trajectory)
	stats.PeriodsPerYear = periodsPerYear(trajectory)

	volatility := stat.StdDev(returns, nil) * math.Sqrt(stats.PeriodsPerYear)
	if volatility == 0 || math.IsNaN(volatility) {
		return nil, fmt.Errorf("zero variance over %d returns: %w", len(returns), ErrDegenerateSeries)
	}
	stats.Volatility = AsPercent(volatility)

	meanAnnualized := math.Pow(1+stat.Mean(returns, nil), stats.PeriodsPerYear) - 1
	stats.Sharpe = (meanAnnualized - riskFree) / volatility

	stats.MaxDrawdown = AsPercent(maxDrawdown(trajectory))

	return stats, nil
}

// periodReturns computes the time-weighted simple return of each step,
// r = (value - contribution) / previousValue - 1.
func periodReturns(t *Trajectory) []float64 {
	returns := make([]float64, 0, t.Len()-1)
	for i := 1; i < t.Len(); i++ {
		prev := t.At(i - 1).Value
		if prev == 0 {
			continue
		}
		r := (t.At(i).Value - t.contribution(i)) / prev
		returns = append(returns, r-1)
	}
	return returns
}

// periodsPerYear infers the sampling cadence from the median spacing of
// the trajectory dates: 252 for daily, 52 for weekly, 12 for monthly,
// 4 for quarterly and 1 beyond.
func periodsPerYear(t *Trajectory) float64 {
	gaps := make([]int, 0, t.Len()-1)
	for i := 1; i < t.Len(); i++ {
		gaps = append(gaps, t.At(i-1).Date.DaysUntil(t.At(i).Date))
	}
	sort.Ints(gaps)
	median := gaps[len(gaps)/2]
	switch {
	case median <= 4:
		return 252
	case median <= 10:
		return 52
	case median <= 45:
		return 12
	case median <= 120:
		return 4
	default:
		return 1
	}
}

// maxDrawdown scans the value path once, tracking the running peak, and
// returns the worst peak-to-trough decline as a fraction in [0,1].
func maxDrawdown(t *Trajectory) float64 {
	var worst float64
	peak := t.First().Value
	for p := range t.Points() {
		if p.Value > peak {
			peak = p.Value
		}
		if peak > 0 {
			if dd := 1 - p.Value/peak; dd > worst {
				worst = dd
			}
		}
	}
	return worst
}
