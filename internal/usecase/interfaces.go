package usecase

import "context"

// AuthClient is the identity side of the hosted gateway.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, idToken string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// SessionEvents receives login/logout notifications for navigation chrome.
// Implementations must never influence authorization decisions.
type SessionEvents interface {
	Publish(event, uid string)
}
