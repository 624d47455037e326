package rental

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a ratio expressed in percent, 12.5 means 12.5%.
type Percent float64

func percentOf(d decimal.Decimal) Percent { return Percent(d.InexactFloat64()) }

// Equal compares two percents with a 1e-9 tolerance.
func (p Percent) Equal(q Percent) bool {
	const precision = 1e-9
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
