package tools

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRoundTrip(t *testing.T) {
	cases := []string{"0", "0.01", "12.34", "99999.99", "-5.50"}
	for _, s := range cases {
		amount := decimal.RequireFromString(s)
		back := MoneyToDisplay(MoneyToStorage(amount))
		if !back.Equal(amount) {
			t.Fatalf("round trip %s: got %s", s, back)
		}
	}
}

func TestMoneyToStorageTruncates(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"10.999", 1099},
		{"0.009", 0},
		{"-10.999", -1099},
	}
	for _, c := range cases {
		if got := MoneyToStorage(decimal.RequireFromString(c.in)); got != c.want {
			t.Fatalf("MoneyToStorage(%s) = %d, want %d", c.in, got, c.want)
		}
	}
}
