package rental

// Summary is a snapshot of the figures derived by a Calculator.
type Summary struct {
	Currency       string
	Income         Money // monthly
	Expenses       Money // monthly
	Investments    Money
	CashFlow       Money // monthly
	AnnualCashFlow Money
	ROI            ROI
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", s.Currency)
	w.Append("income", s.Income)
	w.Append("expenses", s.Expenses)
	w.Append("investments", s.Investments)
	w.Append("cashFlow", s.CashFlow)
	w.Append("annualCashFlow", s.AnnualCashFlow)
	w.Append("roi", s.ROI)
	return w.MarshalJSON()
}
