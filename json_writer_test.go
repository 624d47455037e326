package rental

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 1)
		w.Append("a", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":1,"a":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.Append("bad", func() {})
		w.Append("b", 2)
		if _, err := w.MarshalJSON(); err == nil {
			t.Fatal("expected an error for an unsupported value")
		}
	})
}

func TestSummary_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Calculator)
		want  string
	}{
		{
			name: "defined roi",
			setup: func(c *Calculator) {
				c.Income.Update("rental payment", USD(2000))
				c.Expenses.Update("mortgage", USD(1500))
				c.Investments.Update("downpayment", USD(20000))
			},
			want: `{"currency":"USD","income":"2000.00","expenses":"1500.00","investments":"20000.00","cashFlow":"500.00","annualCashFlow":"6000.00","roi":30}`,
		},
		{
			name: "undefined roi",
			setup: func(c *Calculator) {
				c.Income.Update("rental payment", USD(1000.5))
			},
			want: `{"currency":"USD","income":"1000.50","expenses":"0.00","investments":"0.00","cashFlow":"1000.50","annualCashFlow":"12006.00","roi":null}`,
		},
		{
			name: "negative cash flow",
			setup: func(c *Calculator) {
				c.Income.Update("rental payment", USD(1000))
				c.Expenses.Update("mortgage", USD(1100))
				c.Investments.Update("downpayment", USD(12000))
			},
			want: `{"currency":"USD","income":"1000.00","expenses":"1100.00","investments":"12000.00","cashFlow":"-100.00","annualCashFlow":"-1200.00","roi":-10}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCalculator("USD")
			tt.setup(c)
			got, err := json.Marshal(c.Summary())
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestJsonObjectWriter_UnsupportedValue(t *testing.T) {
	var w jsonObjectWriter
	w.Append("bad", make(chan int))
	_, err := w.MarshalJSON()
	var unsupported *json.UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Errorf("MarshalJSON() error = %v, want a json.UnsupportedTypeError", err)
	}
}
