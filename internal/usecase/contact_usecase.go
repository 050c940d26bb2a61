package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/domain/repository"
	"dpmarketpro/pkg/errors"
)

type ContactUseCase struct {
	contactRepo repository.ContactRepository
}

func NewContactUseCase(contactRepo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contactRepo: contactRepo}
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (uc *ContactUseCase) Submit(ctx context.Context, input ContactInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}

	if err := uc.contactRepo.Create(ctx, message); err != nil {
		return nil, errors.Internal("Failed to store contact message", err)
	}
	return message, nil
}
