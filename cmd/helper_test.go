package cmd

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

// isolate keeps the user configuration and environment out of a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, env := range []string{EnvConfigFile, EnvCurrency, EnvVerbose, "RROI_CLEAR"} {
		t.Setenv(env, "")
	}
}

// execute runs a command with args and returns what it printed.
func execute(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	status := c.Execute(context.Background(), f)
	return buf.String(), status
}
