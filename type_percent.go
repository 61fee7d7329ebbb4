package portfolio

import "fmt"

// Percent is a percentage value (1.0 means 1%).
type Percent float64

// AsPercent converts a fraction (0.05) into a Percent (5%).
func AsPercent(fraction float64) Percent { return Percent(100 * fraction) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
