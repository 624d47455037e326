package rental

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for negative or non-numeric amounts.
	ErrInvalidAmount = errors.New("amount must be a non-negative number")
	// ErrEmptyName is returned when an item has no name.
	ErrEmptyName = errors.New("item name is empty")
	// ErrCurrencyMismatch is returned when an amount is not in the category currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Item is a named amount in a Category.
type Item struct {
	Name   string
	Amount Money
}

// Category is a named collection of budget items with a running total.
//
// The total is maintained incrementally on every mutation and always equals
// the sum of the item amounts. Items keep their insertion order for display.
type Category struct {
	name     string
	currency string
	names    []string
	items    map[string]Money
	total    Money
}

// NewCategory creates a category holding the given items, in order.
// Later items overwrite earlier ones with the same name.
func NewCategory(name, currency string, items ...Item) (*Category, error) {
	c := &Category{
		name:     name,
		currency: currency,
		items:    make(map[string]Money, len(items)),
		total:    M(0, currency),
	}
	for _, item := range items {
		if err := c.Add(item.Name, item.Amount); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
	}
	return c, nil
}

// Name returns the display label of the category.
func (c *Category) Name() string { return c.name }

// Currency returns the currency of every amount in the category.
func (c *Category) Currency() string { return c.currency }

// Total returns the sum of all item amounts.
func (c *Category) Total() Money { return c.total }

// Len returns the number of items, zero valued ones included.
func (c *Category) Len() int { return len(c.names) }

// Has reports whether an item with this name exists.
func (c *Category) Has(name string) bool {
	_, exists := c.items[name]
	return exists
}

// Amount returns the amount of the named item. The boolean is false if there
// is no such item.
func (c *Category) Amount(name string) (Money, bool) {
	amount, exists := c.items[name]
	return amount, exists
}

// Add adds an item to the category.
//
// An existing item with the same name is removed first, so the new item is
// appended at the end and the total only counts the new amount.
func (c *Category) Add(name string, amount Money) error {
	amount, err := c.check(name, amount)
	if err != nil {
		return err
	}
	c.Remove(name)
	c.names = append(c.names, name)
	c.items[name] = amount
	c.total = c.total.Add(amount)
	return nil
}

// Remove removes the named item if it exists, and does nothing otherwise.
func (c *Category) Remove(name string) {
	amount, exists := c.items[name]
	if !exists {
		return
	}
	delete(c.items, name)
	c.names = slices.DeleteFunc(c.names, func(n string) bool { return n == name })
	c.total = c.total.Sub(amount)
}

// Update changes the amount of the named item in place.
//
// If there is no such item, Update adds it exactly like Add.
func (c *Category) Update(name string, amount Money) error {
	old, exists := c.items[name]
	if !exists {
		return c.Add(name, amount)
	}
	amount, err := c.check(name, amount)
	if err != nil {
		return err
	}
	c.total = c.total.Add(amount.Sub(old))
	c.items[name] = amount
	return nil
}

// check validates an item and returns its amount in the category currency.
func (c *Category) check(name string, amount Money) (Money, error) {
	if name == "" {
		return Money{}, ErrEmptyName
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%q: %w", name, ErrInvalidAmount)
	}
	if amount.cur != "" && amount.cur != c.currency {
		return Money{}, fmt.Errorf("%q in %s for a %s category: %w", name, amount.cur, c.currency, ErrCurrencyMismatch)
	}
	return amount.in(c.currency), nil
}

// Names returns the item names in display order.
func (c *Category) Names() []string { return slices.Clone(c.names) }

// All iterates over all the items in display order.
func (c *Category) All() iter.Seq2[string, Money] {
	return func(yield func(string, Money) bool) {
		for _, name := range c.names {
			if !yield(name, c.items[name]) {
				return
			}
		}
	}
}

// Listing returns the non-zero items in display order.
func (c *Category) Listing() []Item {
	var items []Item
	for name, amount := range c.All() {
		if amount.IsZero() {
			continue
		}
		items = append(items, Item{Name: name, Amount: amount})
	}
	return items
}

// String returns the category label, its non-zero items and its total.
func (c *Category) String() string {
	var b strings.Builder
	b.WriteString(c.name)
	for _, item := range c.Listing() {
		fmt.Fprintf(&b, "\n\t%s:\t%s", item.Name, item.Amount)
	}
	fmt.Fprintf(&b, "\n\tTOTAL: %s", c.total)
	return b.String()
}

// Bounds of the amounts ParseAmount accepts: up to a quadrillion, with at most
// a dozen decimals. Larger exponents would expand into huge numbers.
const (
	maxAmountDigits = 15
	maxAmountScale  = 12
)

// ParseAmount parses a user provided amount. It accepts any non-negative
// decimal number within bounds and returns ErrInvalidAmount otherwise.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	// checked on the exponent first: comparing d would rescale it.
	if exp := int64(d.Exponent()); exp < -maxAmountScale || int64(d.NumDigits())+exp > maxAmountDigits {
		return decimal.Decimal{}, fmt.Errorf("%q is out of range: %w", s, ErrInvalidAmount)
	}
	return d, nil
}
