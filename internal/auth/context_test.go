package auth

import (
	"context"
	"testing"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

func TestWithAuthAndFromContext(t *testing.T) {
	ac := AuthContext{
		SessionID: 3,
		UserID:    "u1",
		Username:  "ana",
		Role:      "admin",
	}

	ctx := WithAuth(context.Background(), ac)
	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected AuthContext in context")
	}
	if got.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", got.UserID, "u1")
	}
	if got.Role != "admin" {
		t.Errorf("Role = %q, want %q", got.Role, "admin")
	}
	if got.SessionID != 3 {
		t.Errorf("SessionID = %d, want 3", got.SessionID)
	}
}

func TestFromContextMissing(t *testing.T) {
	_, ok := FromContext(context.Background())
	if ok {
		t.Error("expected false for missing AuthContext")
	}
	if UserID(context.Background()) != "" {
		t.Error("expected empty UserID for missing AuthContext")
	}
}

func TestFromSession(t *testing.T) {
	s := &model.Session{ID: 7, UserID: "u9", Username: "marko", FullName: "Marko M", Role: "user", YearOfBirth: "2010"}
	ac := FromSession(s)
	if ac.SessionID != 7 || ac.UserID != "u9" || ac.YearOfBirth != "2010" || ac.FullName != "Marko M" {
		t.Errorf("FromSession = %+v", ac)
	}
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		role      string
		admin     bool
		superUser bool
	}{
		{"admin", true, false},
		{"superadmin", true, true},
		{"moderator", false, false},
		{"user", false, false},
	}
	for _, tt := range tests {
		ctx := WithAuth(context.Background(), AuthContext{Role: tt.role})
		if got := IsAdmin(ctx); got != tt.admin {
			t.Errorf("IsAdmin(%q) = %v, want %v", tt.role, got, tt.admin)
		}
		if got := IsSuperAdmin(ctx); got != tt.superUser {
			t.Errorf("IsSuperAdmin(%q) = %v, want %v", tt.role, got, tt.superUser)
		}
	}
	if IsAdmin(context.Background()) {
		t.Error("IsAdmin without auth should be false")
	}
}
