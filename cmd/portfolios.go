package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jan-milacek/bogglehead-portfolio-simulator/renderer"
)

// portfoliosCmd lists the portfolio templates of the catalog.
type portfoliosCmd struct {
	plain bool
}

func (*portfoliosCmd) Name() string     { return "portfolios" }
func (*portfoliosCmd) Synopsis() string { return "list the available portfolio templates" }
func (*portfoliosCmd) Usage() string {
	return `portfolios:
  List every portfolio template in the catalog with its composition.
`
}

func (c *portfoliosCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print raw markdown instead of styled output")
}

func (c *portfoliosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cat, err := LoadCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Print(render(renderer.Composition(cat), c.plain))
	return subcommands.ExitSuccess
}
