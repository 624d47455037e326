package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/rental"
	"github.com/etnz/rental/session"
	"github.com/google/subcommands"
)

type runCmd struct {
	noClear bool

	in io.Reader // defaults to os.Stdin
}

func (*runCmd) Name() string { return "run" }
func (*runCmd) Synopsis() string {
	return "interactively estimate the return on investment of a rental property"
}
func (*runCmd) Usage() string {
	return `rroi run [-no-clear]

  Walks through the monthly income, the monthly expenses and the initial
  investments of a rental property, prompting for the amount of each common
  item and for any additional item. Items can then be added, removed or
  updated in any category until you exit.

  The results show the monthly and annual cash flow and the return on
  investment.
`
}

func (p *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.noClear, "no-clear", false, "Do not clear the console between steps.")
}

func (p *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	calc, err := rental.NewCalculatorWithSeeds(cfg.Currency, cfg.Seeds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	in := p.in
	if in == nil {
		in = os.Stdin
	}
	s := session.New(calc, in, stdout)
	s.Markdown = renderMarkdown
	if cfg.Clear && !p.noClear {
		s.Clear = clearConsole
	}

	log.Printf("starting a session in %s", cfg.Currency)
	if err := s.Run(ctx); err != nil {
		if errors.Is(err, session.ErrInputClosed) {
			fmt.Fprintln(os.Stderr, "\nSession aborted: the input ended before exit.")
		} else {
			fmt.Fprintf(os.Stderr, "\nSession aborted: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	log.Printf("session ended: %s", calc.Summary().ROI)
	return subcommands.ExitSuccess
}
