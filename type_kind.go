package rental

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when parsing an unknown category kind.
var ErrUnknownKind = errors.New("unknown category")

// Kind identifies one of the three categories of a Calculator.
type Kind int

const (
	// Income holds the monthly income items.
	Income Kind = iota
	// Expenses holds the monthly expense items.
	Expenses
	// Investments holds the initial investment costs.
	Investments
)

// Kinds lists every kind in display order.
var Kinds = []Kind{Income, Expenses, Investments}

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expenses:
		return "expenses"
	case Investments:
		return "investments"
	default:
		return "unknown"
	}
}

// Title returns the display label of the category of that kind.
func (k Kind) Title() string {
	switch k {
	case Income:
		return "Monthly Income"
	case Expenses:
		return "Monthly Expenses"
	case Investments:
		return "Initial Investments"
	default:
		return "Unknown"
	}
}

// ParseKind parses a string into a Kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expenses":
		return Expenses, nil
	case "investments":
		return Investments, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
}
