package auth

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
)

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID int64
	Email  string
	Name   string
	Role   user.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

// Can reports whether the principal's role grants permission.
func (p Principal) Can(permission user.Permission) bool {
	return user.HasPermission(p.Role, permission)
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal set by the auth middleware.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || p.UserID == 0 {
		return Principal{}, ErrUnauthenticated
	}
	return p, nil
}
