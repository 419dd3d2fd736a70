/**
 * @description
 * This file defines actor roles and the single policy-evaluation function used
 * by every handler and service method. Role checks are intentionally not
 * scattered across the request layer: anything that needs an allow/deny answer
 * calls Authorize with (role, actor id, resource owner id, action).
 */

package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Role is the access tier of an authenticated actor.
type Role string

const (
	// RoleAgent is the most restrictive tier: agents create orders and may only
	// read or mutate resources they created.
	RoleAgent Role = "agent"
	// RoleStaff acts on any order and may lock rates (move orders into Blocked).
	RoleStaff Role = "staff"
	// RoleAdmin has staff powers plus hard deletion.
	RoleAdmin Role = "admin"
)

// Action is an operation class evaluated by Authorize.
type Action string

const (
	ActionView   Action = "view"
	ActionMutate Action = "mutate"
	ActionDelete Action = "delete"
)

// ParseRole resolves a raw role claim to a typed role.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAgent:
		return RoleAgent, nil
	case RoleStaff:
		return RoleStaff, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrForbidden
}

// CanBlockRate reports whether the role may move an order into Blocked.
// Rate locking is a financial control and requires an administrative tier.
func (r Role) CanBlockRate() bool {
	return r == RoleStaff || r == RoleAdmin
}

// actsOnAllResources reports whether the role is exempt from ownership checks.
func (r Role) actsOnAllResources() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Authorize evaluates whether an actor may perform action on a resource owned
// by ownerID. It returns nil when allowed and ErrForbidden otherwise.
func Authorize(role Role, actorID, ownerID uuid.UUID, action Action) error {
	switch action {
	case ActionDelete:
		if role != RoleAdmin {
			return ErrForbidden
		}
		return nil
	case ActionView, ActionMutate:
		if role.actsOnAllResources() {
			return nil
		}
		if role == RoleAgent && actorID == ownerID {
			return nil
		}
		return ErrForbidden
	}
	return ErrForbidden
}
