package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpmarketpro/internal/domain/entity"
	apperrors "dpmarketpro/pkg/errors"
)

func newAuthFixture() (*AuthUseCase, *fakeProfileRepo, *fakeAuthClient, *fakeEvents) {
	profiles := newFakeProfileRepo()
	client := newFakeAuthClient()
	events := &fakeEvents{}
	return NewAuthUseCase(profiles, client, events), profiles, client, events
}

func TestResolveSessionWithoutToken(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	session := uc.ResolveSession(context.Background(), "")

	assert.False(t, session.Authenticated)
}

func TestResolveSessionBadToken(t *testing.T) {
	uc, _, client, _ := newAuthFixture()
	client.verifyErr = fmt.Errorf("token expired")

	session := uc.ResolveSession(context.Background(), "stale-token")

	assert.False(t, session.Authenticated)
}

func TestResolveSessionFailsClosedOnProfileError(t *testing.T) {
	uc, profiles, client, _ := newAuthFixture()
	client.uidByToken["good-token"] = "uid-1"
	profiles.getErr = fmt.Errorf("gateway unreachable")

	session := uc.ResolveSession(context.Background(), "good-token")

	assert.False(t, session.Authenticated, "a broken profile lookup must not grant access")
}

func TestResolveSessionAdmin(t *testing.T) {
	uc, profiles, client, _ := newAuthFixture()
	client.uidByToken["good-token"] = "uid-1"
	profiles.profiles["uid-1"] = &entity.Profile{ID: "uid-1", Role: entity.RoleAdmin}

	session := uc.ResolveSession(context.Background(), "good-token")

	assert.True(t, session.Authenticated)
	assert.True(t, session.IsAdmin())
	assert.Equal(t, "uid-1", session.UID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc, _, client, events := newAuthFixture()
	client.signInErr = fmt.Errorf("INVALID_PASSWORD")

	_, err := uc.Login(context.Background(), "a@b.c", "nope")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
	assert.Empty(t, events.published)
}

func TestLoginPublishesSessionEvent(t *testing.T) {
	uc, profiles, _, events := newAuthFixture()
	profiles.profiles["uid-a@b.c"] = &entity.Profile{ID: "uid-a@b.c", Email: "a@b.c", Role: entity.RoleUser}

	result, err := uc.Login(context.Background(), "a@b.c", "secret123")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, result.Profile.Role)
	assert.Equal(t, []string{"signed_in:uid-a@b.c"}, events.published)
}

func TestRegisterCreatesUserProfile(t *testing.T) {
	uc, profiles, _, _ := newAuthFixture()

	result, err := uc.Register(context.Background(), RegisterInput{Email: "new@shop.io", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, result.Profile.Role)
	stored, err := profiles.GetByID(context.Background(), result.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@shop.io", stored.Email)
}

func TestRegisterConflictSurfacesInline(t *testing.T) {
	uc, _, client, _ := newAuthFixture()
	client.createErr = apperrors.Conflict("Email already in use")

	_, err := uc.Register(context.Background(), RegisterInput{Email: "dup@shop.io", Password: "secret123"})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "CONFLICT"))
}

func TestLogoutPublishesSignedOut(t *testing.T) {
	uc, _, _, events := newAuthFixture()

	require.NoError(t, uc.Logout(context.Background(), "uid-1"))

	assert.Equal(t, []string{"signed_out:uid-1"}, events.published)
}
