package portfolio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = ` Date, Open, High, Low, Close, Volume
01/02/20, 99.10, 100.50, 98.80, 100.00, 1200300
01/03/20, 100.10, 101.20, 99.90, 101.00, 990000
01/06/20, 101.00, 101.10, 99.00, 99.50, 1010000
`

func TestReadPrices(t *testing.T) {
	s, err := ReadPrices(strings.NewReader(sampleCSV), "VT")
	if err != nil {
		t.Fatalf("ReadPrices() error = %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %v want 3", s.Len())
	}
	if got, _ := s.Price(MustParse("2020-01-03")); got != 101.00 {
		t.Errorf("Price(2020-01-03) = %v want 101", got)
	}
	want := Range{From: MustParse("2020-01-02"), To: MustParse("2020-01-06")}
	if got := s.Coverage(); got != want {
		t.Errorf("Coverage() = %v want %v", got, want)
	}
}

func TestReadPricesWithoutVolume(t *testing.T) {
	csv := "Date,Open,High,Low,Close\n2020-01-02,99,100,98,100\n"
	s, err := ReadPrices(strings.NewReader(csv), "BND")
	if err != nil {
		t.Fatalf("ReadPrices() error = %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %v want 1", s.Len())
	}
}

func TestReadPricesErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"missing close column", "Date,Open\n01/02/20,99\n"},
		{"bad date", "Date,Close\nnot-a-date,100\n"},
		{"bad close", "Date,Close\n01/02/20,abc\n"},
		{"no rows", "Date,Close\n"},
		{"negative close", "Date,Close\n01/02/20,-3\n"},
	}
	for _, tc := range tests {
		if _, err := ReadPrices(strings.NewReader(tc.csv), "VT"); err == nil {
			t.Errorf("%s: ReadPrices() want error", tc.name)
		}
	}
}

func TestLoadSeriesWithProxy(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vtsax.csv"), []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	cat := &Catalog{
		Portfolios: map[string]Allocation{"x": {"VTI": 1}},
		// ITOT has no file of its own, it reuses VTI's data.
		Files: map[string]string{"VTI": "vtsax.csv", "ITOT": "vtsax.csv"},
	}

	series, err := LoadSeries(dir, cat, []string{"VTI", "ITOT"})
	if err != nil {
		t.Fatalf("LoadSeries() error = %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("LoadSeries() returned %d series want 2", len(series))
	}
	if series["ITOT"].Ticker() != "ITOT" {
		t.Errorf("proxy ticker = %q want ITOT", series["ITOT"].Ticker())
	}
	vti, _ := series["VTI"].Price(MustParse("2020-01-02"))
	itot, _ := series["ITOT"].Price(MustParse("2020-01-02"))
	if vti != itot {
		t.Errorf("proxy prices differ: %v vs %v", vti, itot)
	}
}

func TestLoadSeriesMissingMapping(t *testing.T) {
	cat := &Catalog{Files: map[string]string{}}
	if _, err := LoadSeries(t.TempDir(), cat, []string{"GLD"}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("LoadSeries(unmapped ticker) error = %v want ErrInsufficientData", err)
	}
}
