package rental

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when parsing an unknown edit action.
var ErrUnknownAction = errors.New("unknown action")

// Action is what an edit cycle does to an item.
type Action int

const (
	// None leaves the category unchanged.
	None Action = iota
	// AddItem adds an item, overwriting any item with the same name.
	AddItem
	// RemoveItem removes an item if it exists.
	RemoveItem
	// UpdateItem changes the amount of an item, adding it if it is missing.
	UpdateItem
)

// Actions lists the actions in prompt order.
var Actions = []Action{AddItem, RemoveItem, UpdateItem, None}

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case AddItem:
		return "add"
	case RemoveItem:
		return "remove"
	case UpdateItem:
		return "update"
	default:
		return "unknown"
	}
}

// ParseAction parses a string into an Action, ignoring case.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "add":
		return AddItem, nil
	case "remove":
		return RemoveItem, nil
	case "update":
		return UpdateItem, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownAction)
	}
}

// Edit is a single change requested on a category.
type Edit struct {
	Kind   Kind
	Action Action
	Name   string
	Amount Money // ignored by RemoveItem and None
}

func (e Edit) String() string {
	switch e.Action {
	case None:
		return fmt.Sprintf("%s: none", e.Kind)
	case RemoveItem:
		return fmt.Sprintf("%s: remove %q", e.Kind, e.Name)
	default:
		return fmt.Sprintf("%s: %s %q %s", e.Kind, e.Action, e.Name, e.Amount.Decimal())
	}
}
