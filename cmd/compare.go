package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	portfolio "github.com/jan-milacek/bogglehead-portfolio-simulator"
	"github.com/jan-milacek/bogglehead-portfolio-simulator/renderer"
)

// compareCmd runs several portfolios over the same schedule and reports
// their statistics side by side.
type compareCmd struct {
	initial   string
	monthly   string
	start     string
	end       string
	rebalance string
	riskFree  float64
	plain     bool
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "compare the historical growth of several portfolios"
}
func (*compareCmd) Usage() string {
	return `compare [portfolio...]:
  Run each named portfolio (all of them by default) through the same
  contribution schedule and print a side-by-side statistics table.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.initial, "i", "10000", "initial lump-sum investment")
	f.StringVar(&c.monthly, "m", "500", "monthly contribution, 0 disables")
	f.StringVar(&c.start, "s", "", "start date (YYYY-MM-DD)")
	f.StringVar(&c.end, "d", "", "end date (YYYY-MM-DD)")
	f.StringVar(&c.rebalance, "rebalance", "none", "rebalancing policy: none or yearly")
	f.Float64Var(&c.riskFree, "risk-free", 0, "annual risk-free rate as a fraction")
	f.BoolVar(&c.plain, "plain", false, "print raw markdown instead of styled output")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cat, err := LoadCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	names := f.Args()
	if len(names) == 0 {
		names = cat.Names()
	}

	schedule, err := parseSchedule(c.initial, c.monthly)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	policy, err := portfolio.ParseRebalancePolicy(c.rebalance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	bounds, err := parseBounds(c.start, c.end)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	// Portfolios whose data cannot support the requested window are
	// skipped with a warning rather than failing the whole comparison.
	var results []*portfolio.Result
	for _, name := range names {
		res, err := portfolio.Run(cat, *dataDir, name, schedule, policy, bounds, c.riskFree)
		if err != nil {
			log.Warn().Str("portfolio", name).Err(err).Msg("skipping")
			continue
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no portfolio could be simulated")
		return subcommands.ExitFailure
	}

	fmt.Print(render(renderer.Comparison(results), c.plain))
	return subcommands.ExitSuccess
}
