package portfolio

import (
	"fmt"
	"iter"
	"strings"
)

// Schedule is the cash plan of a simulation: an initial lump sum invested on
// the first aligned date, plus a recurring amount invested on the first
// trading date of every following calendar month.
type Schedule struct {
	Initial Money
	Monthly Money
}

// Validate rejects negative amounts.
func (s Schedule) Validate() error {
	if s.Initial.IsNegative() {
		return fmt.Errorf("negative lump sum %s: %w", s.Initial, ErrInvalidSchedule)
	}
	if s.Monthly.IsNegative() {
		return fmt.Errorf("negative monthly contribution %s: %w", s.Monthly, ErrInvalidSchedule)
	}
	return nil
}

// RebalancePolicy selects when holdings are reset to target weights.
type RebalancePolicy int

const (
	// RebalanceNone lets holdings drift with prices. Contributions remain
	// the only rebalancing lever, since they are invested at target
	// weights rather than at the drifted ones.
	RebalanceNone RebalancePolicy = iota
	// RebalanceYearly redistributes the whole portfolio value to target
	// weights on the first trading date of each calendar year.
	RebalanceYearly
)

func (p RebalancePolicy) String() string {
	switch p {
	case RebalanceNone:
		return "none"
	case RebalanceYearly:
		return "yearly"
	default:
		return "unknown"
	}
}

func ParseRebalancePolicy(s string) (RebalancePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "drift":
		return RebalanceNone, nil
	case "yearly", "annual", "year":
		return RebalanceYearly, nil
	default:
		return RebalanceNone, fmt.Errorf("unknown rebalance policy %q (want none or yearly)", s)
	}
}

// Point is one step of a portfolio trajectory.
type Point struct {
	Date        Date
	Value       float64 // total portfolio value
	Contributed float64 // cash paid in up to and including this date
}

// Trajectory is the portfolio value path produced by one simulation run.
// Contributed is non-decreasing along the path. A trajectory is owned by
// its run and never mutated after Simulate returns.
type Trajectory struct {
	points []Point
}

// Len returns the number of trajectory points.
func (t *Trajectory) Len() int { return len(t.points) }

// At returns the i-th point.
func (t *Trajectory) At(i int) Point { return t.points[i] }

// First returns the first point.
func (t *Trajectory) First() Point { return t.points[0] }

// Final returns the last point.
func (t *Trajectory) Final() Point { return t.points[len(t.points)-1] }

// Points returns an iterator over the points in chronological order.
func (t *Trajectory) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range t.points {
			if !yield(p) {
				return
			}
		}
	}
}

// contribution returns the cash injected at step i.
func (t *Trajectory) contribution(i int) float64 {
	if i == 0 {
		return t.points[0].Contributed
	}
	return t.points[i].Contributed - t.points[i-1].Contributed
}

// Simulate walks the aligned timeline and produces the portfolio trajectory.
//
// On the first date the lump sum is converted into per-ticker share counts
// at target weights. Each later date revalues the holdings; the first
// trading date of a new calendar month additionally invests the monthly
// contribution at target weights and current prices. Share counts only
// change through contributions, or through an explicit rebalance when the
// policy asks for one.
//
// Simulate is a pure function of its inputs.
func Simulate(timeline *Timeline, alloc Allocation, schedule Schedule, policy RebalancePolicy) (*Trajectory, error) {
	weights, err := alloc.Normalize()
	if err != nil {
		return nil, err
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	if timeline == nil || timeline.Len() == 0 {
		return nil, fmt.Errorf("empty timeline: %w", ErrInsufficientData)
	}

	shares := make(map[string]float64, len(weights))

	// invest converts cash into shares at target weights and day-i prices.
	invest := func(amount float64, i int) error {
		for ticker, weight := range weights {
			price, ok := timeline.Price(ticker, i)
			if !ok {
				return fmt.Errorf("no price for %q on %s: %w", ticker, timeline.Day(i), ErrInternalInvariant)
			}
			shares[ticker] += amount * weight / price
		}
		return nil
	}

	// valueAt revalues current holdings at day-i prices.
	valueAt := func(i int) (float64, error) {
		var total float64
		for ticker, count := range shares {
			price, ok := timeline.Price(ticker, i)
			if !ok {
				return 0, fmt.Errorf("no price for %q on %s: %w", ticker, timeline.Day(i), ErrInternalInvariant)
			}
			total += count * price
		}
		return total, nil
	}

	lump := schedule.Initial.AsFloat()
	monthly := schedule.Monthly.AsFloat()

	trajectory := &Trajectory{points: make([]Point, 0, timeline.Len())}

	first := timeline.Day(0)
	if err := invest(lump, 0); err != nil {
		return nil, err
	}
	contributed := lump
	value, err := valueAt(0)
	if err != nil {
		return nil, err
	}
	trajectory.points = append(trajectory.points, Point{Date: first, Value: value, Contributed: contributed})

	lastContribution := first
	for i := 1; i < timeline.Len(); i++ {
		on := timeline.Day(i)

		if monthly > 0 && !on.SameMonth(lastContribution) {
			if err := invest(monthly, i); err != nil {
				return nil, err
			}
			contributed += monthly
			lastContribution = on
		}

		if policy == RebalanceYearly && on.Year() != timeline.Day(i-1).Year() {
			total, err := valueAt(i)
			if err != nil {
				return nil, err
			}
			for ticker := range shares {
				delete(shares, ticker)
			}
			if err := invest(total, i); err != nil {
				return nil, err
			}
		}

		value, err := valueAt(i)
		if err != nil {
			return nil, err
		}
		trajectory.points = append(trajectory.points, Point{Date: on, Value: value, Contributed: contributed})
	}

	return trajectory, nil
}
