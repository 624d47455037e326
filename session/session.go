// Package session drives the interactive rental calculator: it prompts for
// item amounts, validates them and applies the edits to a rental.Calculator.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/rental"
	"github.com/etnz/rental/renderer"
)

// ErrInputClosed is returned when the input ends before the session does.
var ErrInputClosed = errors.New("input closed")

// Session is an interactive run of the calculator on a pair of streams.
// It is not safe for concurrent use.
type Session struct {
	calc *rental.Calculator
	in   *bufio.Scanner
	out  io.Writer

	// Clear clears the console. Nil leaves the console untouched.
	Clear func()
	// Markdown turns markdown into what is displayed. Nil displays raw markdown.
	Markdown func(string) string

	styles styles
}

type styles struct {
	heading lipgloss.Style
	warning lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		heading: lipgloss.NewStyle().Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// New creates a session reading answers from in and writing prompts to out.
func New(calc *rental.Calculator, in io.Reader, out io.Writer) *Session {
	return &Session{
		calc:   calc,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: defaultStyles(),
	}
}

// Run walks the user through every category, prints the summary and then
// lets the user edit categories until they exit.
func (s *Session) Run(ctx context.Context) error {
	s.clear()
	s.println()
	s.println(s.styles.heading.Render("Welcome to the Rental Return on Investment Calculator."))
	s.println()
	s.println("We will need information on the property in the following categories:")
	for _, k := range rental.Kinds {
		s.printf("\t- %s\n", k.Title())
	}
	s.println()
	if err := s.pressEnter(ctx); err != nil {
		return err
	}

	for _, k := range rental.Kinds {
		if err := s.startCategory(ctx, s.calc.Category(k)); err != nil {
			return err
		}
	}

	s.printSummary()
	for {
		action, err := s.choose(ctx, "What would you like to do now?\n\t- edit\n\t- exit", "edit", "exit")
		if err != nil {
			return err
		}
		if action == "exit" {
			return nil
		}

		answer, err := s.choose(ctx, "Which category do you want to make changes to?\n\t- income\n\t- expenses\n\t- investments",
			rental.Income.String(), rental.Expenses.String(), rental.Investments.String())
		if err != nil {
			return err
		}
		kind, err := rental.ParseKind(answer)
		if err != nil {
			return err
		}
		if err := s.editCategory(ctx, s.calc.Category(kind)); err != nil {
			return err
		}
		s.clear()
		s.printSummary()
	}
}

// startCategory asks the amount of every existing item, then for new items,
// then offers to edit the category.
func (s *Session) startCategory(ctx context.Context, c *rental.Category) error {
	s.println()
	s.println(s.styles.heading.Render(fmt.Sprintf("We will now begin working on %s.", c.Name())))
	s.println("Let's start by looking at some common items in this category.")
	s.println()
	for _, name := range c.Names() {
		if err := s.inputAmount(ctx, c, name); err != nil {
			return err
		}
	}

	prompt := fmt.Sprintf("Do you have any other items to add to %s, 'y' or 'n'?", c.Name())
	for {
		ans, err := s.choose(ctx, prompt, "y", "n")
		if err != nil {
			return err
		}
		if ans == "n" {
			break
		}
		if err := s.inputItem(ctx, c); err != nil {
			return err
		}
	}

	if err := s.editCategory(ctx, c); err != nil {
		return err
	}
	return s.pressEnter(ctx)
}

// editCategory loops on add, remove or update actions until none is chosen.
func (s *Session) editCategory(ctx context.Context, c *rental.Category) error {
	s.printCategory(c)
	prompt := fmt.Sprintf("Are there any actions you want to perform on an item in %s?", c.Name())
	options := make([]string, len(rental.Actions))
	for i, a := range rental.Actions {
		prompt += "\n\t- " + a.String()
		options[i] = a.String()
	}

	for {
		answer, err := s.choose(ctx, prompt, options...)
		if err != nil {
			return err
		}
		action, err := rental.ParseAction(answer)
		if err != nil {
			return err
		}
		switch action {
		case rental.None:
			return nil
		case rental.AddItem:
			err = s.inputItem(ctx, c)
		case rental.RemoveItem:
			err = s.removeItem(ctx, c)
		case rental.UpdateItem:
			err = s.updateItem(ctx, c)
		}
		if err != nil {
			return err
		}
		s.println()
		s.printCategory(c)
	}
}

func (s *Session) removeItem(ctx context.Context, c *rental.Category) error {
	name, err := s.askName(ctx, "Which item do you want to remove?")
	if err != nil {
		return err
	}
	if !c.Has(name) {
		s.warn(notFound(name, c))
	}
	c.Remove(name)
	return nil
}

func (s *Session) updateItem(ctx context.Context, c *rental.Category) error {
	name, err := s.askName(ctx, "Which item do you want to update?")
	if err != nil {
		return err
	}
	if !c.Has(name) {
		s.warn(notFound(name, c) + " It will be added.")
	}
	return s.inputAmount(ctx, c, name)
}

// inputItem asks for a new item name and its amount.
func (s *Session) inputItem(ctx context.Context, c *rental.Category) error {
	s.println()
	name, err := s.askName(ctx, "Enter the name for this item:")
	if err != nil {
		return err
	}
	return s.inputAmount(ctx, c, name)
}

// inputAmount asks for the amount of the named item and stores it.
func (s *Session) inputAmount(ctx context.Context, c *rental.Category, name string) error {
	amount, err := s.askAmount(ctx, fmt.Sprintf("Enter the amount for %s:", name))
	if err != nil {
		return err
	}
	return c.Update(name, rental.M(amount, c.Currency()))
}

func (s *Session) pressEnter(ctx context.Context) error {
	s.printf("Press ENTER to continue...")
	if _, err := s.readLine(ctx); err != nil {
		return err
	}
	s.clear()
	return nil
}

func (s *Session) printCategory(c *rental.Category) {
	s.println(s.markdown(renderer.CategoryMarkdown(c)))
}

func (s *Session) printSummary() {
	s.println(s.markdown(renderer.SummaryMarkdown(s.calc.Summary())))
}

func (s *Session) markdown(md string) string {
	if s.Markdown == nil {
		return md
	}
	return s.Markdown(md)
}

func (s *Session) clear() {
	if s.Clear != nil {
		s.Clear()
	}
}

func (s *Session) warn(msg string) {
	s.println(s.styles.warning.Render(msg))
}

func (s *Session) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *Session) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }

// readLine returns the next line of input without its line terminator.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// notFound describes a missing item, suggesting the closest existing name.
func notFound(name string, c *rental.Category) string {
	msg := fmt.Sprintf("There is no item named %q in %s.", name, c.Name())
	if guess, ok := suggest(name, c.Names()); ok {
		msg += fmt.Sprintf(" Did you mean %q?", guess)
	}
	return msg
}
