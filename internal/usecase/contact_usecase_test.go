package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "dpmarketpro/pkg/errors"
)

func TestContactSubmitStoresMessage(t *testing.T) {
	repo := &fakeContactRepo{}
	uc := NewContactUseCase(repo)

	message, err := uc.Submit(context.Background(), ContactInput{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Course access",
		Message: "The download link has expired.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero())
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "Course access", repo.messages[0].Subject)
}

func TestContactSubmitGatewayError(t *testing.T) {
	repo := &fakeContactRepo{createErr: fmt.Errorf("gateway down")}
	uc := NewContactUseCase(repo)

	_, err := uc.Submit(context.Background(), ContactInput{Name: "x", Email: "x@y.z", Subject: "s", Message: "m"})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
}
