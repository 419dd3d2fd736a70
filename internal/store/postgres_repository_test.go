package store

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eduremit/remittance-service/internal/domain"
)

func TestBuildOrderListQuery(t *testing.T) {
	creator := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	status := domain.StatusBlocked

	tests := []struct {
		name         string
		filter       domain.OrderListFilter
		wantContains []string
		wantArgs     int
	}{
		{
			name:         "no filter uses default limit",
			filter:       domain.OrderListFilter{},
			wantContains: []string{"ORDER BY created_at DESC", "LIMIT $1"},
			wantArgs:     1,
		},
		{
			name:         "creator filter",
			filter:       domain.OrderListFilter{CreatedBy: &creator},
			wantContains: []string{"created_by = $1", "LIMIT $2"},
			wantArgs:     2,
		},
		{
			name:   "all filters numbered in order",
			filter: domain.OrderListFilter{CreatedBy: &creator, From: &from, To: &to, Status: &status, Limit: 25, Offset: 50},
			wantContains: []string{
				"created_by = $1",
				"created_at >= $2",
				"created_at <= $3",
				"status = $4",
				"LIMIT $5",
				"OFFSET $6",
			},
			wantArgs: 6,
		},
		{
			name:         "oversized limit falls back to default",
			filter:       domain.OrderListFilter{Limit: 10000},
			wantContains: []string{"LIMIT $1"},
			wantArgs:     1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildOrderListQuery(tt.filter)
			for _, fragment := range tt.wantContains {
				if !strings.Contains(query, fragment) {
					t.Errorf("query missing %q:\n%s", fragment, query)
				}
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildOrderListQueryLimitClamping(t *testing.T) {
	for _, limit := range []int{-1, 0, 201, 10000} {
		_, args := buildOrderListQuery(domain.OrderListFilter{Limit: limit})
		if got := args[len(args)-1]; got != 50 {
			t.Errorf("limit %d: clamped value = %v, want 50", limit, got)
		}
	}
	_, args := buildOrderListQuery(domain.OrderListFilter{Limit: 200})
	if got := args[len(args)-1]; got != 200 {
		t.Errorf("limit 200 should be kept, got %v", got)
	}
}
