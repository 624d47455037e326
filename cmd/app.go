// Package cmd implements the CLI application to estimate the return on investment of a rental property.
package cmd

import (
	"flag"
	"io"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a TOML configuration file (defaults to <user config dir>/rroi/config.toml)")
var currencyFlag = flag.String("currency", "", "ISO code of the currency of every amount (overrides the configuration)")

// Verbose enables logging on stderr.
var Verbose = flag.Bool("v", false, "Verbose output")

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&runCmd{},
	&roiCmd{},
	&defaultsCmd{},
	&topicCmd{},
}

// builtins are the commands registered by subcommands itself.
var builtins = []string{"help", "flags", "commands"}

// IsCommand reports whether name is a registered or builtin command.
func IsCommand(name string) bool {
	if slices.Contains(builtins, name) {
		return true
	}
	return slices.ContainsFunc(Commands, func(c subcommands.Command) bool { return c.Name() == name })
}

// SetupLogging silences the standard logger unless verbose output was asked
// by flag or environment.
func SetupLogging() {
	log.SetFlags(0)
	log.SetPrefix("rroi: ")
	verbose, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	enableLogging(*Verbose || verbose)
}

func enableLogging(on bool) {
	if on {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// loadAppConfig loads the configuration and applies the global flags on top.
func loadAppConfig() (*Config, error) {
	file := *configFile
	if file == "" {
		file = os.Getenv(EnvConfigFile)
	}
	cfg, err := LoadConfig(file)
	if err != nil {
		return nil, err
	}
	if *currencyFlag != "" {
		cfg.Currency = strings.ToUpper(*currencyFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Verbose {
		enableLogging(true)
	}
	if cfg.File != "" {
		log.Printf("configuration loaded from %s", cfg.File)
	}
	return cfg, nil
}
