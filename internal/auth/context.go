package auth

import (
	"context"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

type contextKey struct{}

// AuthContext describes the signed-in member for the current request.
type AuthContext struct {
	SessionID   int64
	UserID      string
	Username    string
	FullName    string
	Role        string
	YearOfBirth string
}

// FromSession builds an AuthContext from a stored session.
func FromSession(s *model.Session) AuthContext {
	return AuthContext{
		SessionID:   s.ID,
		UserID:      s.UserID,
		Username:    s.Username,
		FullName:    s.FullName,
		Role:        s.Role,
		YearOfBirth: s.YearOfBirth,
	}
}

func WithAuth(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ac)
}

func FromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(contextKey{}).(AuthContext)
	return ac, ok
}

func UserID(ctx context.Context) string {
	ac, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return ac.UserID
}

// IsAdmin reports whether the request belongs to an admin or superadmin.
func IsAdmin(ctx context.Context) bool {
	ac, ok := FromContext(ctx)
	if !ok {
		return false
	}
	return model.IsAdminRole(ac.Role)
}

// IsSuperAdmin reports whether the request belongs to a superadmin.
func IsSuperAdmin(ctx context.Context) bool {
	ac, ok := FromContext(ctx)
	return ok && ac.Role == model.RoleSuperAdmin
}
