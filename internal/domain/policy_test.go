package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw     string
		want    Role
		wantErr bool
	}{
		{"agent", RoleAgent, false},
		{"Staff", RoleStaff, false},
		{" ADMIN ", RoleAdmin, false},
		{"superuser", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRole(%q) error = %v, wantErr %t", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		role    Role
		actorID uuid.UUID
		action  Action
		allowed bool
	}{
		{"agent views own resource", RoleAgent, owner, ActionView, true},
		{"agent views another's resource", RoleAgent, other, ActionView, false},
		{"agent mutates own resource", RoleAgent, owner, ActionMutate, true},
		{"agent mutates another's resource", RoleAgent, other, ActionMutate, false},
		{"agent deletes own resource", RoleAgent, owner, ActionDelete, false},
		{"staff views any resource", RoleStaff, other, ActionView, true},
		{"staff mutates any resource", RoleStaff, other, ActionMutate, true},
		{"staff cannot delete", RoleStaff, other, ActionDelete, false},
		{"admin mutates any resource", RoleAdmin, other, ActionMutate, true},
		{"admin deletes", RoleAdmin, other, ActionDelete, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.role, tt.actorID, owner, tt.action)
			if tt.allowed && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tt.allowed && !errors.Is(err, ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestCanBlockRate(t *testing.T) {
	if RoleAgent.CanBlockRate() {
		t.Error("agent must not be able to lock rates")
	}
	if !RoleStaff.CanBlockRate() || !RoleAdmin.CanBlockRate() {
		t.Error("staff and admin must be able to lock rates")
	}
}
