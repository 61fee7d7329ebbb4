package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	portfolio "github.com/jan-milacek/bogglehead-portfolio-simulator"
)

// pricesCmd inspects the local price history of one fund.
type pricesCmd struct {
	ticker string
	last   int
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "show the local price history of a fund" }
func (*pricesCmd) Usage() string {
	return `prices -s <ticker> [-n <count>]:
  Print the coverage of a fund's local price file and its most recent
  closing prices.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "s", "", "fund ticker to inspect")
	f.IntVar(&c.last, "n", 10, "number of recent closes to print")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "missing -s ticker")
		return subcommands.ExitUsageError
	}
	cat, err := LoadCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	series, err := portfolio.LoadSeries(*dataDir, cat, []string{c.ticker})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	s := series[c.ticker]

	fmt.Printf("%s: %d closes, %s\n", s.Ticker(), s.Len(), s.Coverage())

	// The iterator has no random access, so collect and keep the tail.
	type close struct {
		on    portfolio.Date
		price float64
	}
	all := make([]close, 0, s.Len())
	for on, price := range s.Values() {
		all = append(all, close{on, price})
	}
	if c.last > 0 && len(all) > c.last {
		all = all[len(all)-c.last:]
	}
	for _, cl := range all {
		fmt.Printf("  %s  %s\n", cl.on, portfolio.M(cl.price, *currency))
	}
	return subcommands.ExitSuccess
}
