package quote

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestCalculateTCS(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		purpose string
		want    string
	}{
		{"education flat rate", "200000", "education", "1000"},
		{"education case insensitive", "200000", "Education", "1000"},
		{"education below threshold still taxed", "10000", "education", "50"},
		{"other below threshold", "500000", "other", "0"},
		{"other exactly at threshold", "1000000", "other", "0"},
		{"other just above threshold", "1000001", "other", "0.05"},
		{"other well above threshold", "1200000", "other", "10000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTCS(dec(t, tt.amount), tt.purpose)
			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("CalculateTCS(%s, %q) = %s, want %s", tt.amount, tt.purpose, got, tt.want)
			}
		})
	}
}

func TestCalculateGST(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"floor applies to small amounts", "10000", "145"},
		{"tier A above floor", "50000", "190"},
		{"tier A upper bound", "100000", "280"},
		{"tier B just above boundary", "100001", "280"},
		{"tier B mid", "500000", "640"},
		{"tier B upper bound", "1000000", "1090"},
		{"tier C", "1200000", "1126"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGST(dec(t, tt.amount))
			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("CalculateGST(%s) = %s, want %s", tt.amount, got, tt.want)
			}
		})
	}
}

// GST must not jump at the tier boundaries: the tiered value evaluated just
// above a boundary has to land on the boundary value.
func TestCalculateGSTContinuity(t *testing.T) {
	boundaries := []string{"100000", "1000000"}
	epsilon := dec(t, "0.01")
	for _, b := range boundaries {
		at := CalculateGST(dec(t, b))
		above := CalculateGST(dec(t, b).Add(epsilon))
		if above.LessThan(at) {
			t.Errorf("GST decreased across boundary %s: %s -> %s", b, at, above)
		}
		if above.Sub(at).GreaterThan(dec(t, "0.01")) {
			t.Errorf("GST jumped across boundary %s: %s -> %s", b, at, above)
		}
	}
}

func TestCalculateTotalPayable(t *testing.T) {
	// amount=50,000, purpose other, bank fee 100: GST 190, TCS 0.
	got := CalculateTotalPayable(dec(t, "50000"), "other", dec(t, "100"))
	if !got.Equal(dec(t, "50290")) {
		t.Errorf("total payable = %s, want 50290", got)
	}

	// amount=1,200,000, purpose other: TCS 10,000 and GST 1,126.
	got = CalculateTotalPayable(dec(t, "1200000"), "other", dec(t, "0"))
	if !got.Equal(dec(t, "1211126")) {
		t.Errorf("total payable = %s, want 1211126", got)
	}
}
