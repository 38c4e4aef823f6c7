package views

import "testing"

func TestCommas(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{24537, "24,537"},
		{1234567, "1,234,567"},
		{-24537, "-24,537"},
	}

	for _, tc := range cases {
		if got := commas(tc.in); got != tc.want {
			t.Errorf("commas(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUSD(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"whole dollars", 32999, "$32,999"},
		{"fractional cents kept", 24999.99, "$24,999.99"},
		{"single-digit cents padded", 150000.5, "$150,000.50"},
		{"rounds float noise", 101.10, "$101.10"},
		{"zero", 0, "$0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := usd(tc.in); got != tc.want {
				t.Fatalf("usd(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
