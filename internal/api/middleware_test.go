package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/eduremit/remittance-service/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func protectedHandler(t *testing.T, captured *domain.Actor) http.Handler {
	t.Helper()
	return AuthMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok {
			t.Error("actor missing from context inside protected handler")
		}
		*captured = actor
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  userID.String(),
		"role": "staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	var actor domain.Actor
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedHandler(t, &actor).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if actor.ID != userID {
		t.Errorf("actor id = %s, want %s", actor.ID, userID)
	}
	if actor.Role != domain.RoleStaff {
		t.Errorf("actor role = %s, want staff", actor.Role)
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"wrong signing key", "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"sub": userID, "role": "staff"})},
		{"expired token", "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": userID, "role": "staff", "exp": time.Now().Add(-time.Hour).Unix()})},
		{"missing subject", "Bearer " + signToken(t, testSecret, jwt.MapClaims{"role": "staff"})},
		{"non-uuid subject", "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "user_123", "role": "staff"})},
		{"unknown role", "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": userID, "role": "superuser"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var actor domain.Actor
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protectedHandler(t, &actor).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}
