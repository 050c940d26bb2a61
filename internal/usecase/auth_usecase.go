package usecase

import (
	"context"
	"time"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/domain/repository"
	"dpmarketpro/pkg/errors"
	"dpmarketpro/pkg/logger"
)

const (
	EventSignedIn  = "signed_in"
	EventSignedOut = "signed_out"
)

type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	authClient  AuthClient
	events      SessionEvents
}

func NewAuthUseCase(profileRepo repository.ProfileRepository, authClient AuthClient, events SessionEvents) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		authClient:  authClient,
		events:      events,
	}
}

type RegisterInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Profile *entity.Profile
	Token   string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return nil, err
		}
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	// Every new account starts as a plain user; promotion to admin happens
	// directly in the backend console, never through this API.
	profile := &entity.Profile{
		ID:        uid,
		Email:     input.Email,
		Role:      entity.RoleUser,
		CreatedAt: time.Now(),
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Internal("Failed to create profile record", err)
	}

	token, err := uc.authClient.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to issue authentication token", err)
	}

	uc.events.Publish(EventSignedIn, uid)

	return &AuthResult{Profile: profile, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.authClient.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.authClient.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify issued token", err)
	}

	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("Profile", err)
	}

	uc.events.Publish(EventSignedIn, uid)

	return &AuthResult{Profile: profile, Token: token}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		logger.Warn("Failed to revoke refresh tokens for %s: %v", uid, err)
	}
	uc.events.Publish(EventSignedOut, uid)
	return nil
}

// ResolveSession establishes the caller's authentication state in a single
// shot: verify the token, then fetch the matching profile. Any failure along
// the way yields Unauthenticated; a broken profile lookup must never grant
// access. There are no retries; the caller re-attempts by issuing a new
// request.
func (uc *AuthUseCase) ResolveSession(ctx context.Context, idToken string) entity.Session {
	if idToken == "" {
		return entity.Unauthenticated()
	}

	uid, err := uc.authClient.VerifyToken(ctx, idToken)
	if err != nil {
		return entity.Unauthenticated()
	}

	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil {
		logger.Debug("Profile lookup failed for %s, treating as unauthenticated: %v", uid, err)
		return entity.Unauthenticated()
	}

	return entity.AuthenticatedAs(uid, profile.Role)
}
