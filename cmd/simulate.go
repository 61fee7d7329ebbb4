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

// simulateCmd runs one portfolio through its history and reports growth
// and risk statistics.
type simulateCmd struct {
	name      string
	initial   string
	monthly   string
	start     string
	end       string
	rebalance string
	riskFree  float64
	chart     string
	plain     bool
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "simulate the historical growth of a lazy portfolio"
}
func (*simulateCmd) Usage() string {
	return `simulate -p <portfolio> [-i <amount>] [-m <amount>] [-s <date>] [-d <date>]:
  Replay a portfolio template against historical prices with an initial
  lump sum and monthly contributions, and report its growth statistics.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "p", "", "portfolio template name (see the portfolios command)")
	f.StringVar(&c.initial, "i", "10000", "initial lump-sum investment")
	f.StringVar(&c.monthly, "m", "500", "monthly contribution, 0 disables")
	f.StringVar(&c.start, "s", "", "start date (YYYY-MM-DD), defaults to the earliest common date")
	f.StringVar(&c.end, "d", "", "end date (YYYY-MM-DD), defaults to the latest common date")
	f.StringVar(&c.rebalance, "rebalance", "none", "rebalancing policy: none or yearly")
	f.Float64Var(&c.riskFree, "risk-free", 0, "annual risk-free rate as a fraction (0.02 for 2%)")
	f.StringVar(&c.chart, "chart", "", "write a growth chart PNG to this path")
	f.BoolVar(&c.plain, "plain", false, "print raw markdown instead of styled output")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "missing -p portfolio name")
		return subcommands.ExitUsageError
	}

	res, err := c.run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Print(render(renderer.Simulation(res), c.plain))

	if c.chart != "" {
		img, err := renderer.GrowthChart(res)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.chart, img, 0644); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		log.Info().Str("file", c.chart).Msg("chart written")
	}
	return subcommands.ExitSuccess
}

func (c *simulateCmd) run() (*portfolio.Result, error) {
	cat, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	schedule, err := parseSchedule(c.initial, c.monthly)
	if err != nil {
		return nil, err
	}
	policy, err := portfolio.ParseRebalancePolicy(c.rebalance)
	if err != nil {
		return nil, err
	}
	bounds, err := parseBounds(c.start, c.end)
	if err != nil {
		return nil, err
	}
	return portfolio.Run(cat, *dataDir, c.name, schedule, policy, bounds, c.riskFree)
}

// parseSchedule builds a contribution schedule from the -i and -m flag
// values, in the display currency.
func parseSchedule(initial, monthly string) (portfolio.Schedule, error) {
	var s portfolio.Schedule
	var err error
	if s.Initial, err = portfolio.ParseMoney(initial, *currency); err != nil {
		return s, fmt.Errorf("invalid initial amount %q: %w", initial, err)
	}
	if s.Monthly, err = portfolio.ParseMoney(monthly, *currency); err != nil {
		return s, fmt.Errorf("invalid monthly amount %q: %w", monthly, err)
	}
	return s, s.Validate()
}
