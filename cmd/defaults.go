package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rental/renderer"
	"github.com/google/subcommands"
)

type defaultsCmd struct{}

func (*defaultsCmd) Name() string     { return "defaults" }
func (*defaultsCmd) Synopsis() string { return "list the common items each category starts with" }
func (*defaultsCmd) Usage() string {
	return `rroi defaults

  Lists the common items a session prompts for in each category. They can
  be changed in the [seeds] section of the configuration file.
`
}

func (*defaultsCmd) SetFlags(f *flag.FlagSet) {}

func (*defaultsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SeedsMarkdown(cfg.Seeds))
	return subcommands.ExitSuccess
}
