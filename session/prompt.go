package session

import (
	"context"
	"slices"
	"strings"

	"github.com/etnz/rental"
	"github.com/shopspring/decimal"
)

// choose asks the prompt until the answer, lower cased, is one of the options.
func (s *Session) choose(ctx context.Context, prompt string, options ...string) (string, error) {
	s.printf("\n%s\nResponse: ", prompt)
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if slices.Contains(options, answer) {
			return answer, nil
		}
		s.println()
		s.warn("Please respond with " + optionList(options) + ".")
		s.printf("Response: ")
	}
}

// askName asks for a non-empty item name, lower cased.
func (s *Session) askName(ctx context.Context, prompt string) (string, error) {
	for {
		s.printf("%s ", prompt)
		line, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		if name := strings.ToLower(strings.TrimSpace(line)); name != "" {
			return name, nil
		}
		s.warn("Please enter a name.")
	}
}

// askAmount asks for a non-negative amount until a valid one is given.
func (s *Session) askAmount(ctx context.Context, prompt string) (decimal.Decimal, error) {
	for {
		s.printf("%s ", prompt)
		line, err := s.readLine(ctx)
		if err != nil {
			return decimal.Decimal{}, err
		}
		amount, err := rental.ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		s.println()
		s.warn("Please enter a non-negative number.")
		s.println()
	}
}

// optionList quotes the options and joins them: 'a', 'b' or 'c'.
func optionList(options []string) string {
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = "'" + o + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	last := len(quoted) - 1
	return strings.Join(quoted[:last], ", ") + " or " + quoted[last]
}
