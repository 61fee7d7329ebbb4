// Package cmd implements the CLI application to simulate lazy portfolios.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	portfolio "github.com/jan-milacek/bogglehead-portfolio-simulator"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&compareCmd{}, "simulation")

	c.Register(&portfoliosCmd{}, "catalog")
	c.Register(&pricesCmd{}, "catalog")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "historical_data", "Directory holding the historical price CSV files")
var catalogFile = flag.String("catalog", "", "Path to a YAML catalog overriding the built-in portfolio templates")
var currency = flag.String("currency", "USD", "ISO-4217 currency code used to display amounts")

// LoadCatalog returns the user catalog when -catalog is set, the built-in
// Bogleheads templates otherwise.
func LoadCatalog() (*portfolio.Catalog, error) {
	if *catalogFile == "" {
		return portfolio.DefaultCatalog(), nil
	}
	cat, err := portfolio.LoadCatalog(*catalogFile)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("catalog", *catalogFile).Int("portfolios", len(cat.Portfolios)).Msg("catalog loaded")
	return cat, nil
}

// parseBounds turns optional -s/-d flags into a date range; empty flags
// leave that side of the range open.
func parseBounds(start, end string) (portfolio.Range, error) {
	var bounds portfolio.Range
	if start != "" {
		from, err := portfolio.ParseDate(start)
		if err != nil {
			return bounds, fmt.Errorf("invalid start date: %w", err)
		}
		bounds.From = from
	}
	if end != "" {
		to, err := portfolio.ParseDate(end)
		if err != nil {
			return bounds, fmt.Errorf("invalid end date: %w", err)
		}
		bounds.To = to
	}
	if bounds.IsEmpty() {
		return bounds, fmt.Errorf("start date %s is after end date %s", bounds.From, bounds.To)
	}
	return bounds, nil
}

// render turns a markdown report into styled terminal output. With plain
// set (or when styling fails) the raw markdown is returned, which keeps the
// output pipeable.
func render(markdown string, plain bool) string {
	if plain {
		return markdown
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
