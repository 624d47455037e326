package rental

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Seeds lists the common item names each category starts with, at a zero amount.
type Seeds struct {
	Income      []string
	Expenses    []string
	Investments []string
}

// DefaultSeeds returns the common items of a rental property.
func DefaultSeeds() Seeds {
	return Seeds{
		Income: []string{"rental payment"},
		Expenses: []string{
			"mortgage",
			"property taxes",
			"insurance",
			"utilities",
			"vacancy",
			"repair fund",
			"capex fund",
			"management",
		},
		Investments: []string{"downpayment", "closing costs", "rehab"},
	}
}

// Of returns the seed names of a kind.
func (s Seeds) Of(k Kind) []string {
	switch k {
	case Income:
		return s.Income
	case Expenses:
		return s.Expenses
	case Investments:
		return s.Investments
	default:
		return nil
	}
}

// Calculator owns the income, expenses and investments categories of a
// rental property and derives its cash flow and return on investment.
type Calculator struct {
	Income      *Category
	Expenses    *Category
	Investments *Category
}

// NewCalculator returns a calculator seeded with DefaultSeeds.
func NewCalculator(currency string) *Calculator {
	c, err := NewCalculatorWithSeeds(currency, DefaultSeeds())
	if err != nil {
		// default seeds are valid names.
		panic(err)
	}
	return c
}

// NewCalculatorWithSeeds returns a calculator whose categories hold the seed
// names at a zero amount.
func NewCalculatorWithSeeds(currency string, seeds Seeds) (*Calculator, error) {
	categories := make([]*Category, len(Kinds))
	for i, k := range Kinds {
		names := seeds.Of(k)
		items := make([]Item, 0, len(names))
		for _, name := range names {
			items = append(items, Item{Name: name, Amount: M(0, currency)})
		}
		c, err := NewCategory(k.Title(), currency, items...)
		if err != nil {
			return nil, fmt.Errorf("invalid %s seeds: %w", k, err)
		}
		categories[i] = c
	}
	return &Calculator{
		Income:      categories[Income],
		Expenses:    categories[Expenses],
		Investments: categories[Investments],
	}, nil
}

// Category returns the category of the given kind, or nil for an unknown kind.
func (c *Calculator) Category(k Kind) *Category {
	switch k {
	case Income:
		return c.Income
	case Expenses:
		return c.Expenses
	case Investments:
		return c.Investments
	default:
		return nil
	}
}

// Categories returns the categories in display order.
func (c *Calculator) Categories() []*Category {
	return []*Category{c.Income, c.Expenses, c.Investments}
}

// Apply performs an edit on one of the categories.
func (c *Calculator) Apply(e Edit) error {
	cat := c.Category(e.Kind)
	if cat == nil {
		return fmt.Errorf("%d: %w", e.Kind, ErrUnknownKind)
	}
	switch e.Action {
	case None:
		return nil
	case AddItem:
		return cat.Add(e.Name, e.Amount)
	case RemoveItem:
		cat.Remove(e.Name)
		return nil
	case UpdateItem:
		return cat.Update(e.Name, e.Amount)
	default:
		return fmt.Errorf("%d: %w", e.Action, ErrUnknownAction)
	}
}

// CashFlow returns the monthly cash flow: income minus expenses.
func (c *Calculator) CashFlow() Money {
	return c.Income.Total().Sub(c.Expenses.Total())
}

// AnnualCashFlow returns twelve months of cash flow.
func (c *Calculator) AnnualCashFlow() Money {
	return c.CashFlow().Mul(12)
}

// ROI returns the annualized return on the initial investment.
// It is undefined when nothing has been invested.
func (c *Calculator) ROI() ROI {
	invested := c.Investments.Total()
	if invested.IsZero() {
		return ROI{}
	}
	ratio := c.CashFlow().Decimal().Mul(decimal.NewFromInt(1200)).Div(invested.Decimal())
	return ROI{percent: percentOf(ratio), defined: true}
}

// Summary returns a snapshot of the calculator totals.
func (c *Calculator) Summary() *Summary {
	return &Summary{
		Currency:       c.Income.Currency(),
		Income:         c.Income.Total(),
		Expenses:       c.Expenses.Total(),
		Investments:    c.Investments.Total(),
		CashFlow:       c.CashFlow(),
		AnnualCashFlow: c.AnnualCashFlow(),
		ROI:            c.ROI(),
	}
}
