package renderer

import (
	"bytes"

	"github.com/etnz/rental"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the totals, cash flow and return on investment.
func SummaryMarkdown(s *rental.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Results")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Total Monthly Income", s.Income.String()},
			{"Total Monthly Expenses", s.Expenses.String()},
			{"Total Initial Investments", s.Investments.String()},
			{"Total Monthly Cash Flow", s.CashFlow.String()},
			{"Total Annual Cash Flow", s.AnnualCashFlow.String()},
		},
	})

	doc.PlainText(md.Bold("Return on Investment: " + s.ROI.String()))
	if !s.ROI.Defined() {
		doc.PlainText("The return on investment is undefined until an initial investment is entered.")
	}

	return doc.String()
}
