package quote

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBuild(t *testing.T) {
	quotedAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	principal := dec(t, "1000")
	ibr := dec(t, "83.25")
	margin := dec(t, "0.50")

	q, c, err := Build(principal, "USD", ibr, margin, "other", dec(t, "1500"), quotedAt)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if !q.CustomerRate.Equal(dec(t, "83.75")) {
		t.Errorf("customer rate = %s, want 83.75", q.CustomerRate)
	}
	if !c.INRAmount.Equal(dec(t, "83250")) {
		t.Errorf("inr amount = %s, want 83250", c.INRAmount)
	}
	if !q.TotalAmount.Equal(dec(t, "83750")) {
		t.Errorf("total amount = %s, want 83750", q.TotalAmount)
	}
	if !c.TCS.Equal(decimal.Zero) {
		t.Errorf("tcs = %s, want 0", c.TCS)
	}
	// 83,250 falls in tier A: 83250*0.01*0.18+100 = 249.85.
	if !c.GST.Equal(dec(t, "249.85")) {
		t.Errorf("gst = %s, want 249.85", c.GST)
	}
	if !c.TotalPayable.Equal(dec(t, "84999.85")) {
		t.Errorf("total payable = %s, want 84999.85", c.TotalPayable)
	}
	if !q.QuotedAt.Equal(quotedAt) {
		t.Errorf("quotedAt = %s, want %s", q.QuotedAt, quotedAt)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	quotedAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	build := func() (string, string, error) {
		q, c, err := Build(dec(t, "2500.75"), "GBP", dec(t, "105.4321"), dec(t, "0.75"), "education", dec(t, "1500"), quotedAt)
		if err != nil {
			return "", "", err
		}
		qJSON, err := json.Marshal(q)
		if err != nil {
			return "", "", err
		}
		cJSON, err := json.Marshal(c)
		if err != nil {
			return "", "", err
		}
		return string(qJSON), string(cJSON), nil
	}

	q1, c1, err := build()
	if err != nil {
		t.Fatalf("first Build returned error: %v", err)
	}
	q2, c2, err := build()
	if err != nil {
		t.Fatalf("second Build returned error: %v", err)
	}
	if q1 != q2 {
		t.Errorf("quote snapshots differ:\nfirst  %s\nsecond %s", q1, q2)
	}
	if c1 != c2 {
		t.Errorf("calculation snapshots differ:\nfirst  %s\nsecond %s", c1, c2)
	}
}

func TestBuildRejectsNonPositivePrincipal(t *testing.T) {
	for _, amount := range []string{"0", "-100"} {
		_, _, err := Build(dec(t, amount), "USD", dec(t, "83"), dec(t, "0.5"), "other", dec(t, "100"), time.Now())
		if !errors.Is(err, ErrNonPositiveAmount) {
			t.Errorf("Build(%s) error = %v, want ErrNonPositiveAmount", amount, err)
		}
	}
}

func TestReconcile(t *testing.T) {
	q, c, err := Build(dec(t, "1000"), "USD", dec(t, "83.25"), dec(t, "0.50"), "other", dec(t, "1500"), time.Now())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	_ = q
	if err := Reconcile(c); err != nil {
		t.Fatalf("fresh snapshot failed reconciliation: %v", err)
	}

	// A tampered total payable must be detected.
	c.TotalPayable = c.TotalPayable.Add(dec(t, "10"))
	if err := Reconcile(c); !errors.Is(err, ErrQuoteInconsistency) {
		t.Fatalf("Reconcile on tampered snapshot = %v, want ErrQuoteInconsistency", err)
	}
}
