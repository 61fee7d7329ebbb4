package portfolio

import "fmt"

// Result bundles everything one simulation run produced, ready for display.
type Result struct {
	Name       string // portfolio template name
	Currency   string
	Schedule   Schedule
	Policy     RebalancePolicy
	Trajectory *Trajectory
	Stats      *Statistics
}

// Run executes the whole pipeline for one named template: resolve the
// allocation, load the price series, align, simulate and summarize.
//
// Runs are independent and side effect free; several of them may share the
// same catalog and data directory concurrently.
func Run(cat *Catalog, dataDir, name string, schedule Schedule, policy RebalancePolicy, bounds Range, riskFree float64) (*Result, error) {
	alloc, err := cat.Template(name)
	if err != nil {
		return nil, err
	}
	series, err := LoadSeries(dataDir, cat, alloc.Tickers())
	if err != nil {
		return nil, fmt.Errorf("portfolio %q: %w", name, err)
	}
	return RunWithSeries(name, alloc, series, schedule, policy, bounds, riskFree)
}

// RunWithSeries is Run for already-loaded price series, so hosts comparing
// portfolios can share the read-only series across runs.
func RunWithSeries(name string, alloc Allocation, series map[string]*PriceSeries, schedule Schedule, policy RebalancePolicy, bounds Range, riskFree float64) (*Result, error) {
	timeline, err := Align(alloc, series, bounds)
	if err != nil {
		return nil, fmt.Errorf("portfolio %q: %w", name, err)
	}
	trajectory, err := Simulate(timeline, alloc, schedule, policy)
	if err != nil {
		return nil, fmt.Errorf("portfolio %q: %w", name, err)
	}
	stats, err := ComputeStatistics(trajectory, riskFree)
	if err != nil {
		return nil, fmt.Errorf("portfolio %q: %w", name, err)
	}
	return &Result{
		Name:       name,
		Currency:   schedule.Initial.Currency(),
		Schedule:   schedule,
		Policy:     policy,
		Trajectory: trajectory,
		Stats:      stats,
	}, nil
}
