/**
 * @description
 * This file defines the order status enumeration and the transition rules that
 * govern the order lifecycle. Statuses are modeled as a closed typed set from
 * input parsing onward; a value outside the set is rejected at the boundary
 * rather than coerced to a "closest valid" status.
 *
 * @notes
 * - The lifecycle is not strictly linear: workflows may skip stages (e.g. an
 *   order can go straight from Pending to SenderDetails). The machine only
 *   enforces the rules that matter: terminal states are final, Blocked needs
 *   an elevated role and an unexpired quote, and unknown statuses are rejected.
 */

package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending            Status = "Pending"
	StatusQuoteDownloaded    Status = "QuoteDownloaded"
	StatusBlocked            Status = "Blocked"
	StatusSenderDetails      Status = "SenderDetails"
	StatusBeneficiaryDetails Status = "BeneficiaryDetails"
	StatusDocumentsUploaded  Status = "DocumentsUploaded"
	StatusPaymentPending     Status = "PaymentPending"
	StatusPaymentCompleted   Status = "PaymentCompleted"
	StatusCompleted          Status = "Completed"
	StatusCancelled          Status = "Cancelled"
)

// AllStatuses is the full enumerated set, in workflow order.
var AllStatuses = []Status{
	StatusPending,
	StatusQuoteDownloaded,
	StatusBlocked,
	StatusSenderDetails,
	StatusBeneficiaryDetails,
	StatusDocumentsUploaded,
	StatusPaymentPending,
	StatusPaymentCompleted,
	StatusCompleted,
	StatusCancelled,
}

var (
	// ErrInvalidStatus is returned when a status value is outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrTerminalState is returned when a transition is attempted out of Completed or Cancelled.
	ErrTerminalState = errors.New("order is in a terminal state")
	// ErrRateExpired is returned when a Blocked transition is attempted on a stale quote.
	ErrRateExpired = errors.New("rate quote has expired")
	// ErrForbidden is returned when the acting role may not perform the operation.
	ErrForbidden = errors.New("actor is not permitted to perform this operation")
)

// ParseStatus resolves a raw status string to its canonical typed value.
// Matching is case-insensitive: clients historically send lowercase values
// ("blocked"), which are canonicalized here. Anything outside the enumerated
// set fails with ErrInvalidStatus.
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range AllStatuses {
		if strings.EqualFold(trimmed, string(s)) {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// IsTerminal reports whether no further transitions are allowed out of s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Valid reports whether s is a member of the enumerated set.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Actor identifies who is attempting an operation on an order.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// Transition validates moving an order to next and, when allowed, applies it.
//
// Rules, in evaluation order:
//   - next must be in the enumerated set (ErrInvalidStatus)
//   - the current status must not be terminal (ErrTerminalState)
//   - moving into Blocked is a rate-lock action: it requires an elevated role
//     (ErrForbidden) and the quote snapshot must still be inside its validity
//     window (ErrRateExpired). Callers must re-quote and retry after ErrRateExpired.
func (o *Order) Transition(next Status, actor Actor, now time.Time, lockTTL time.Duration) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if o.Status.IsTerminal() {
		return ErrTerminalState
	}
	if next == StatusBlocked && o.Status != StatusBlocked {
		if !actor.Role.CanBlockRate() {
			return ErrForbidden
		}
		if o.Quote.QuotedAt.IsZero() || now.Sub(o.Quote.QuotedAt) > lockTTL {
			return ErrRateExpired
		}
	}
	o.Status = next
	o.UpdatedAt = now
	return nil
}
