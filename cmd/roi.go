package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rental"
	"github.com/etnz/rental/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// amountFlag is a flag.Value accepting non-negative amounts only.
type amountFlag struct {
	value decimal.Decimal
}

func (a *amountFlag) String() string { return a.value.String() }
func (a *amountFlag) Set(s string) error {
	v, err := rental.ParseAmount(s)
	if err != nil {
		return err
	}
	a.value = v
	return nil
}

type roiCmd struct {
	income     amountFlag
	expenses   amountFlag
	investment amountFlag
	asJSON     bool
}

func (*roiCmd) Name() string { return "roi" }
func (*roiCmd) Synopsis() string {
	return "compute cash flow and return on investment from known totals"
}
func (*roiCmd) Usage() string {
	return `rroi roi -income <amount> -expenses <amount> -investment <amount> [-json]

  Computes the monthly cash flow, the annual cash flow and the return on
  investment from the total monthly income, the total monthly expenses and
  the total initial investment, without prompting.

  The return on investment is undefined (n/a, or null in JSON) when the
  investment is zero.

Usage Examples:
$ rroi roi -income 2000 -expenses 1500 -investment 20000
`
}

func (p *roiCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&p.income, "income", "Total monthly income.")
	f.Var(&p.expenses, "expenses", "Total monthly expenses.")
	f.Var(&p.investment, "investment", "Total initial investment.")
	f.BoolVar(&p.asJSON, "json", false, "Print the results as JSON.")
}

func (p *roiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	calc, err := rental.NewCalculatorWithSeeds(cfg.Currency, rental.Seeds{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	edits := []rental.Edit{
		{Kind: rental.Income, Action: rental.AddItem, Name: "income", Amount: rental.M(p.income.value, cfg.Currency)},
		{Kind: rental.Expenses, Action: rental.AddItem, Name: "expenses", Amount: rental.M(p.expenses.value, cfg.Currency)},
		{Kind: rental.Investments, Action: rental.AddItem, Name: "investment", Amount: rental.M(p.investment.value, cfg.Currency)},
	}
	for _, e := range edits {
		if err := calc.Apply(e); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying %v: %v\n", e, err)
			return subcommands.ExitFailure
		}
	}

	summary := calc.Summary()
	if !p.asJSON {
		printMarkdown(renderer.SummaryMarkdown(summary))
		return subcommands.ExitSuccess
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding results: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
