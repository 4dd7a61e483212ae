package application

import (
	"context"

	"github.com/sharely/sharely/internal/domain/entity"
)

// AuthService issues and validates the opaque bearer credential handed out
// at login. Exactly one implementation is bound at composition time,
// selected by AUTH_PROVIDER.
type AuthService interface {
	// CreateToken issues a credential for the authenticated user.
	CreateToken(ctx context.Context, u *entity.User) (string, error)
	// ParseToken validates a presented credential and returns the user id.
	ParseToken(ctx context.Context, token string) (int64, error)
	// RevokeToken invalidates a credential so it can no longer authenticate.
	RevokeToken(ctx context.Context, token string) error
}

// EmailVerificationService dispatches a verification message for the given
// user. Best-effort: callers do not fail their primary operation when
// dispatch fails.
type EmailVerificationService interface {
	SendVerificationEmail(ctx context.Context, userID int64) error
}
