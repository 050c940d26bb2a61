package repository

import (
	"context"

	"dpmarketpro/internal/domain/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
}
