package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/rental"
)

// answers joins input lines the way a user would type them.
func answers(lines ...string) string { return strings.Join(lines, "\n") + "\n" }

// basicRun answers every prompt of a session that fills the default seeds
// and exits without editing.
var basicRun = []string{
	"", // welcome
	"2000", "n", "none", "",
	"800", "200", "100", "0", "100", "100", "100", "100", "n", "none", "",
	"15000", "3000", "2000", "n", "none", "",
}

func newTestSession(t *testing.T, input string) (*Session, *rental.Calculator, *strings.Builder) {
	t.Helper()
	calc := rental.NewCalculator("USD")
	var out strings.Builder
	s := New(calc, strings.NewReader(input), &out)
	s.styles = styles{heading: lipgloss.NewStyle(), warning: lipgloss.NewStyle()}
	return s, calc, &out
}

func TestRun(t *testing.T) {
	s, calc, out := newTestSession(t, answers(append(basicRun, "exit")...))
	clears := 0
	s.Clear = func() { clears++ }

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out)
	}

	totals := map[rental.Kind]rental.Money{
		rental.Income:      rental.M(2000, "USD"),
		rental.Expenses:    rental.M(1500, "USD"),
		rental.Investments: rental.M(20000, "USD"),
	}
	for k, want := range totals {
		if got := calc.Category(k).Total(); !got.Equal(want) {
			t.Errorf("%s total = %v, want %v", k, got, want)
		}
	}
	if clears != 5 {
		t.Errorf("console cleared %d times, want 5", clears)
	}
	for _, want := range []string{
		"Welcome to the Rental Return on Investment Calculator.",
		"We will now begin working on Monthly Expenses.",
		"Enter the amount for property taxes:",
		"Return on Investment: 30.00%",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output misses %q", want)
		}
	}
}

func TestRun_Reprompts(t *testing.T) {
	input := answers(
		"",
		"abc", "-5", "2000", // invalid amounts first
		"maybe", "Y", "  Parking ", "50", "n",
		"remove", "parkng", // typo, nothing removed
		"update", "laundry", "25", // missing, added
		"none", "",
	)
	s, calc, out := newTestSession(t, input)

	err := s.Run(context.Background())
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run() error = %v, want %v", err, ErrInputClosed)
	}

	if got, ok := calc.Income.Amount("parking"); !ok || !got.Equal(rental.M(50, "USD")) {
		t.Errorf("parking = %v, %v, want $50.00", got, ok)
	}
	if !calc.Income.Has("laundry") {
		t.Error("update of a missing item did not add it")
	}
	if got, want := calc.Income.Total(), rental.M(2075, "USD"); !got.Equal(want) {
		t.Errorf("income total = %v, want %v", got, want)
	}
	for _, want := range []string{
		"Please enter a non-negative number.",
		"Please respond with 'y' or 'n'.",
		`There is no item named "parkng" in Monthly Income. Did you mean "parking"?`,
		`There is no item named "laundry" in Monthly Income. It will be added.`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out.String(), "Please enter a non-negative number."); n != 2 {
		t.Errorf("amount reprompted %d times, want 2", n)
	}
}

func TestRun_EditAfterSummary(t *testing.T) {
	input := answers(append(basicRun,
		"edit", "expenses",
		"add", "hoa", "100",
		"remove", "vacancy",
		"none",
		"exit",
	)...)
	s, calc, out := newTestSession(t, input)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out)
	}
	if got, want := calc.Expenses.Total(), rental.M(1500, "USD"); !got.Equal(want) {
		t.Errorf("expenses total = %v, want %v", got, want)
	}
	if calc.Expenses.Has("vacancy") {
		t.Error("vacancy was not removed")
	}
	if n := strings.Count(out.String(), "# Results"); n != 2 {
		t.Errorf("summary printed %d times, want 2", n)
	}
}

func TestRun_InputClosed(t *testing.T) {
	s, _, _ := newTestSession(t, answers("", "2000"))
	if err := s.Run(context.Background()); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Run() error = %v, want %v", err, ErrInputClosed)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _, _ := newTestSession(t, answers(basicRun...))
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}

func TestRun_Markdown(t *testing.T) {
	s, _, out := newTestSession(t, answers(append(basicRun, "exit")...))
	s.Markdown = func(md string) string { return "<rendered>" }
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), "# Results") {
		t.Error("summary was not passed through Markdown")
	}
	if !strings.Contains(out.String(), "<rendered>") {
		t.Error("rendered markdown missing from output")
	}
}

func TestOptionList(t *testing.T) {
	tests := []struct {
		options []string
		want    string
	}{
		{[]string{"exit"}, "'exit'"},
		{[]string{"y", "n"}, "'y' or 'n'"},
		{[]string{"add", "remove", "update", "none"}, "'add', 'remove', 'update' or 'none'"},
	}
	for _, tt := range tests {
		if got := optionList(tt.options); got != tt.want {
			t.Errorf("optionList(%v) = %q, want %q", tt.options, got, tt.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	candidates := rental.DefaultSeeds().Expenses
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"mortgae", "mortgage", true},
		{"insurence", "insurance", true},
		{"propety taxes", "property taxes", true},
		{"groceries", "", false},
		{"x", "", false},
	}
	for _, tt := range tests {
		got, ok := suggest(tt.name, candidates)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("suggest(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
