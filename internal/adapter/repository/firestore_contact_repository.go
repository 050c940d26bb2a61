package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/domain/repository"
	"dpmarketpro/pkg/errors"
)

const contactCollection = "contact_messages"

type firestoreContactRepository struct {
	client *firestore.Client
}

func NewFirestoreContactRepository(client *firestore.Client) repository.ContactRepository {
	return &firestoreContactRepository{client: client}
}

func (r *firestoreContactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	_, err := r.client.Collection(contactCollection).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to store contact message", err)
	}
	return nil
}
