package portfolio

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog is an immutable collection of named portfolio templates and the
// mapping from fund tickers to their local price files.
//
// The file mapping may point several tickers at the same file: a fund
// lacking its own history reuses a close proxy's data (e.g. ITOT priced
// from the VTSAX file).
type Catalog struct {
	// Portfolios maps a template name to its target allocation.
	Portfolios map[string]Allocation `yaml:"portfolios"`
	// Files maps a ticker to the CSV file holding its price history.
	Files map[string]string `yaml:"files"`
	// Descriptions holds a human readable fund name per ticker.
	Descriptions map[string]string `yaml:"descriptions"`
	// Categories holds an asset-class label per ticker.
	Categories map[string]string `yaml:"categories"`
}

// DefaultCatalog returns the built-in Bogleheads lazy-portfolio templates.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Portfolios: map[string]Allocation{
			"Two-fund Portfolio": {
				"VT":  0.60, // Total World Stock Market
				"BND": 0.40, // Total Bond Market
			},
			"Taylor Larimore's Three-Fund Portfolio": {
				"VTI":  0.34, // Total US Stock Market
				"VXUS": 0.33, // Total International Stock Market
				"BND":  0.33, // Total Bond Market
			},
			"Scott Burns' Margarita Portfolio": {
				"ITOT": 0.34, // Total US Stock Market (iShares)
				"IXUS": 0.33, // Total International Stock Market (iShares)
				"TIP":  0.33, // Inflation-Protected Securities
			},
			"Rick Ferri's Lazy Three-Fund Portfolio": {
				"VTI":  0.40, // Total US Stock Market
				"VXUS": 0.20, // Total International Stock Market
				"BND":  0.40, // Total Bond Market
			},
		},
		Files: map[string]string{
			"VT":   "HistoricalPrices_VT.csv",
			"BND":  "HistoricalPrices_VBTLX.csv",
			"VTI":  "HistoricalPrices_VTSAX.csv",
			"VXUS": "HistoricalPrices_VTIAX.csv",
			"TIP":  "HistoricalPrices_VAIPX.csv",
			"ITOT": "HistoricalPrices_VTSAX.csv", // VTSAX as proxy for ITOT
			"IXUS": "HistoricalPrices_VTIAX.csv", // VTIAX as proxy for IXUS
		},
		Descriptions: map[string]string{
			"VT":   "Vanguard Total World Stock ETF",
			"BND":  "Vanguard Total Bond Market Fund",
			"VTI":  "Vanguard Total Stock Market Fund",
			"VXUS": "Vanguard Total International Stock Fund",
			"ITOT": "iShares Total US Stock Market Fund",
			"IXUS": "iShares International Stock Fund",
			"TIP":  "Inflation-Protected Securities Fund",
		},
		Categories: map[string]string{
			"VT":   "Global Stocks",
			"VTI":  "US Stocks",
			"VXUS": "International Stocks",
			"BND":  "Bonds",
			"ITOT": "US Stocks",
			"IXUS": "International Stocks",
			"TIP":  "TIPS Bonds",
		},
	}
}

// ReadCatalog decodes a YAML catalog.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("cannot decode catalog: %w", err)
	}
	if len(c.Portfolios) == 0 {
		return nil, fmt.Errorf("catalog defines no portfolios: %w", ErrInvalidAllocation)
	}
	return &c, nil
}

// LoadCatalog reads a YAML catalog from a file.
func LoadCatalog(filename string) (*Catalog, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog %q: %w", filename, err)
	}
	defer f.Close()
	c, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", filename, err)
	}
	return c, nil
}

// Names returns the template names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Portfolios))
	for name := range c.Portfolios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Template returns the allocation registered under name.
func (c *Catalog) Template(name string) (Allocation, error) {
	alloc, ok := c.Portfolios[name]
	if !ok {
		return nil, fmt.Errorf("unknown portfolio %q (have %v): %w", name, c.Names(), ErrInvalidAllocation)
	}
	return alloc, nil
}

// File returns the price file registered for a ticker.
func (c *Catalog) File(ticker string) (string, error) {
	file, ok := c.Files[ticker]
	if !ok {
		return "", fmt.Errorf("no data file for %q: %w", ticker, ErrInsufficientData)
	}
	return file, nil
}

// Description returns the fund name for a ticker, or the ticker itself.
func (c *Catalog) Description(ticker string) string {
	if d, ok := c.Descriptions[ticker]; ok {
		return d
	}
	return ticker
}

// Category returns the asset-class label for a ticker.
func (c *Catalog) Category(ticker string) string {
	if cat, ok := c.Categories[ticker]; ok {
		return cat
	}
	return "Other"
}
