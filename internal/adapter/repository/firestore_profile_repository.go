package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/domain/repository"
	"dpmarketpro/pkg/errors"
)

const profileCollection = "profiles"

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{client: client}
}

func (r *firestoreProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	_, err := r.client.Collection(profileCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to create profile", err)
	}
	return nil
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	doc, err := r.client.Collection(profileCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}
	return &profile, nil
}
