package output

import "testing"

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{100, "$100.00"},
		{55.5, "$55.50"},
		{194.999, "$195.00"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Errorf("FormatPrice(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestPriceString(t *testing.T) {
	if got := PriceString(100); got != "100.00" {
		t.Errorf("PriceString(100) = %s, want 100.00", got)
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(0.004); got != "0.0040" {
		t.Errorf("FormatTime(0.004) = %s, want 0.0040", got)
	}
	if got := FormatTime(0); got != "0.0000" {
		t.Errorf("FormatTime(0) = %s, want 0.0000", got)
	}
}
