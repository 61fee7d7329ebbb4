// Package renderer turns simulation results into markdown reports and
// charts. It owns all presentation concerns so the core package stays a
// pure computation.
package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/jan-milacek/bogglehead-portfolio-simulator"
	md "github.com/nao1215/markdown"
)

// Simulation renders one run as a markdown report: the run parameters, the
// summary statistics, and a month-by-month value table.
func Simulation(res *portfolio.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	coverage := res.Trajectory.First().Date.String() + " to " + res.Trajectory.Final().Date.String()
	doc.H1(fmt.Sprintf("%s Growth", res.Name))
	doc.PlainText(fmt.Sprintf("%s initial, %s monthly, %s, rebalancing: %s",
		res.Schedule.Initial, res.Schedule.Monthly, coverage, res.Policy))

	doc.H2("Summary")
	doc.Table(statsTable(res))

	doc.H2("Monthly Data")
	table := md.TableSet{
		Header: []string{"Month", "Portfolio Value", "Total Invested", "Profit/Loss", "ROI"},
	}
	for _, p := range monthEnds(res.Trajectory) {
		profit := p.Value - p.Contributed
		var roi portfolio.Percent
		if p.Contributed > 0 {
			roi = portfolio.AsPercent(profit / p.Contributed)
		}
		table.Rows = append(table.Rows, []string{
			p.Date.Format("2006-01"),
			money(p.Value, res.Currency),
			money(p.Contributed, res.Currency),
			money(profit, res.Currency),
			roi.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Comparison renders the statistics of several runs side by side.
func Comparison(results []*portfolio.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Comparison")

	table := md.TableSet{
		Header: []string{"Portfolio", "Final Value", "Total Invested", "CAGR", "Volatility", "Sharpe", "Max Drawdown"},
	}
	for _, res := range results {
		table.Rows = append(table.Rows, []string{
			res.Name,
			money(res.Stats.FinalValue, res.Currency),
			money(res.Stats.TotalContributed, res.Currency),
			res.Stats.CAGR.String(),
			res.Stats.Volatility.String(),
			fmt.Sprintf("%.2f", res.Stats.Sharpe),
			res.Stats.MaxDrawdown.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Composition renders the templates of a catalog with fund details.
func Composition(cat *portfolio.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Available Portfolios")
	for _, name := range cat.Names() {
		alloc, err := cat.Template(name)
		if err != nil {
			continue
		}
		doc.H2(name)
		table := md.TableSet{Header: []string{"Ticker", "Asset", "Category", "Weight"}}
		for _, ticker := range alloc.Tickers() {
			table.Rows = append(table.Rows, []string{
				ticker,
				cat.Description(ticker),
				cat.Category(ticker),
				portfolio.AsPercent(alloc[ticker]).String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

func statsTable(res *portfolio.Result) md.TableSet {
	s := res.Stats
	return md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Final Value", money(s.FinalValue, res.Currency)},
			{"Total Invested", money(s.TotalContributed, res.Currency)},
			{"Profit/Loss", money(s.Profit, res.Currency)},
			{"ROI", s.ROI.SignedString()},
			{"CAGR", s.CAGR.String()},
			{"Annualized Volatility", s.Volatility.String()},
			{"Sharpe Ratio", fmt.Sprintf("%.2f", s.Sharpe)},
			{"Max Drawdown", s.MaxDrawdown.String()},
		},
	}
}

// monthEnds keeps the last trajectory point of each calendar month.
func monthEnds(t *portfolio.Trajectory) []portfolio.Point {
	var out []portfolio.Point
	for p := range t.Points() {
		if len(out) > 0 && out[len(out)-1].Date.SameMonth(p.Date) {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

func money(v float64, currency string) string {
	return portfolio.M(v, currency).String()
}
