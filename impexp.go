package portfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Historical price files are CSV exports with a header like
//
//	Date, Open, High, Low, Close, Volume
//
// Only Date and Close are consumed; Volume is optional. Dates use the
// export's "M/D/YY" form, with ISO dates accepted as a fallback.
var csvDateFormats = []string{"1/2/06", "1/2/2006", readDateFormat}

// ReadPrices parses one fund's price history from a CSV stream.
//
// The schema is validated once, on the header. Any malformed row fails the
// whole read: a partially loaded series would silently skew every
// simulation built on it.
func ReadPrices(r io.Reader, ticker string) (*PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header for %q: %w", ticker, err)
	}
	dateCol, closeCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "close":
			closeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("csv for %q must have Date and Close columns, got %v", ticker, header)
	}

	var prices History[float64]
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("invalid csv for %q line %d: %w", ticker, line, err)
		}

		on, err := parseCSVDate(row[dateCol])
		if err != nil {
			return nil, fmt.Errorf("invalid csv for %q line %d: %w", ticker, line, err)
		}
		sclose := strings.TrimSpace(row[closeCol])
		value, err := strconv.ParseFloat(sclose, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid csv for %q line %d: invalid close %q", ticker, line, sclose)
		}
		prices.Append(on, value)
	}

	return NewPriceSeries(ticker, &prices)
}

func parseCSVDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, format := range csvDateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return NewDate(t.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// LoadSeries loads one price series per requested ticker from dir, resolving
// file names (and proxy substitutions) through the catalog.
//
// A file shared by several tickers is parsed only once.
func LoadSeries(dir string, cat *Catalog, tickers []string) (map[string]*PriceSeries, error) {
	series := make(map[string]*PriceSeries, len(tickers))
	byFile := make(map[string]*PriceSeries)

	for _, ticker := range tickers {
		file, err := cat.File(ticker)
		if err != nil {
			return nil, err
		}
		if cached, ok := byFile[file]; ok {
			// Proxy substitution: same data under another ticker.
			series[ticker] = &PriceSeries{ticker: ticker, prices: cached.prices}
			continue
		}

		path := filepath.Join(dir, file)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open price file for %q: %w", ticker, err)
		}
		s, err := ReadPrices(f, ticker)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		series[ticker] = s
		byFile[file] = s
	}
	return series, nil
}
