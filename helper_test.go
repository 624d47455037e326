package rental

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// items is a helper for test to build USD items from name/amount pairs.
func items(pairs ...any) []Item {
	var res []Item
	for i := 0; i+1 < len(pairs); i += 2 {
		res = append(res, Item{Name: pairs[i].(string), Amount: USD(float64(pairs[i+1].(int)))})
	}
	return res
}
