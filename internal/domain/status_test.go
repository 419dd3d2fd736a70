package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Status
		wantErr error
	}{
		{"canonical value", "Blocked", StatusBlocked, nil},
		{"lowercase is canonicalized", "blocked", StatusBlocked, nil},
		{"uppercase is canonicalized", "PENDING", StatusPending, nil},
		{"surrounding whitespace", "  Completed ", StatusCompleted, nil},
		{"unknown value", "Shipped", "", ErrInvalidStatus},
		{"empty value", "", "", ErrInvalidStatus},
		{"near miss", "Block", "", ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseStatus(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	for _, s := range AllStatuses {
		terminal := s == StatusCompleted || s == StatusCancelled
		if s.IsTerminal() != terminal {
			t.Errorf("%s.IsTerminal() = %t, want %t", s, s.IsTerminal(), terminal)
		}
	}
}

func freshOrder(status Status, quotedAt time.Time) *Order {
	o := &Order{ID: uuid.New(), Status: status}
	o.Quote.QuotedAt = quotedAt
	return o
}

func TestTransitionRejectsTerminalStates(t *testing.T) {
	now := time.Now()
	staff := Actor{ID: uuid.New(), Role: RoleStaff}
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		for _, next := range AllStatuses {
			o := freshOrder(terminal, now)
			err := o.Transition(next, staff, now, time.Hour)
			if !errors.Is(err, ErrTerminalState) {
				t.Errorf("Transition(%s -> %s) error = %v, want ErrTerminalState", terminal, next, err)
			}
			if o.Status != terminal {
				t.Errorf("terminal order mutated to %s", o.Status)
			}
		}
	}
}

func TestTransitionRejectsInvalidStatus(t *testing.T) {
	now := time.Now()
	o := freshOrder(StatusPending, now)
	err := o.Transition(Status("Shipped"), Actor{ID: uuid.New(), Role: RoleAdmin}, now, time.Hour)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("Transition to unknown status error = %v, want ErrInvalidStatus", err)
	}
}

func TestTransitionToBlocked(t *testing.T) {
	now := time.Now()
	lockTTL := 15 * time.Minute

	t.Run("agent is forbidden", func(t *testing.T) {
		o := freshOrder(StatusPending, now)
		err := o.Transition(StatusBlocked, Actor{ID: uuid.New(), Role: RoleAgent}, now, lockTTL)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("error = %v, want ErrForbidden", err)
		}
	})

	t.Run("staff with fresh quote succeeds", func(t *testing.T) {
		o := freshOrder(StatusPending, now.Add(-5*time.Minute))
		err := o.Transition(StatusBlocked, Actor{ID: uuid.New(), Role: RoleStaff}, now, lockTTL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != StatusBlocked {
			t.Fatalf("status = %s, want Blocked", o.Status)
		}
	})

	t.Run("expired quote is rejected", func(t *testing.T) {
		o := freshOrder(StatusPending, now.Add(-16*time.Minute))
		err := o.Transition(StatusBlocked, Actor{ID: uuid.New(), Role: RoleStaff}, now, lockTTL)
		if !errors.Is(err, ErrRateExpired) {
			t.Fatalf("error = %v, want ErrRateExpired", err)
		}
		if o.Status != StatusPending {
			t.Fatalf("rejected transition mutated status to %s", o.Status)
		}
	})

	t.Run("missing quote timestamp is rejected", func(t *testing.T) {
		o := freshOrder(StatusPending, time.Time{})
		err := o.Transition(StatusBlocked, Actor{ID: uuid.New(), Role: RoleAdmin}, now, lockTTL)
		if !errors.Is(err, ErrRateExpired) {
			t.Fatalf("error = %v, want ErrRateExpired", err)
		}
	})

	t.Run("already blocked order skips the lock checks", func(t *testing.T) {
		o := freshOrder(StatusBlocked, now.Add(-24*time.Hour))
		err := o.Transition(StatusBlocked, Actor{ID: uuid.New(), Role: RoleAgent}, now, lockTTL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTransitionUpdatesTimestamp(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	o := freshOrder(StatusPending, now)
	if err := o.Transition(StatusSenderDetails, Actor{ID: uuid.New(), Role: RoleAgent}, now, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %s, want %s", o.UpdatedAt, now)
	}
}
