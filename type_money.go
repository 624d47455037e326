package rental

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a numeric value and a currency code.
// The empty currency is weak and takes the currency of the other operand.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ValidCurrency reports whether code is a currency known to the formatter.
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount rounded and formatted the way the currency
// formatter of go-money does, without its int64 limit on minor units.
func (m Money) String() string {
	cur := m.currency()
	rounded := m.value.Round(int32(cur.Fraction))
	digits := rounded.Abs().StringFixed(int32(cur.Fraction))

	units, cents, _ := strings.Cut(digits, ".")
	if cur.Thousand != "" {
		for i := len(units) - 3; i > 0; i -= 3 {
			units = units[:i] + cur.Thousand + units[i:]
		}
	}
	if cents != "" {
		units += cur.Decimal + cents
	}

	s := strings.Replace(cur.Template, "1", units, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if rounded.IsNegative() {
		s = "-" + s
	}
	return s
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Mul multiplies the amount by an integer factor.
func (m Money) Mul(n int64) Money { return Money{value: m.value.Mul(decimal.NewFromInt(n)), cur: m.cur} }

// in returns m expressed in currency c. The caller ensures m has no other
// currency than c.
func (m Money) in(c string) Money {
	return Money{value: m.value, cur: cur(m, Money{cur: c})}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON encodes the amount as a string rounded to the currency digits.
func (m Money) MarshalJSON() ([]byte, error) {
	fixed := m.value.StringFixed(int32(m.currency().Fraction))
	return []byte(strconv.Quote(fixed)), nil
}
