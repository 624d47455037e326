package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderMarkdown renders markdown for the terminal, and returns it untouched
// when stdout is not a terminal.
func renderMarkdown(md string) string {
	if !isTerminal() {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("markdown renderer unavailable: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		return md
	}
	return out
}

func printMarkdown(md string) {
	fmt.Fprintln(stdout, renderMarkdown(md))
}

// clearConsole clears the terminal, if there is one.
func clearConsole() {
	if isTerminal() {
		fmt.Fprint(os.Stdout, "\033[H\033[2J")
	}
}
