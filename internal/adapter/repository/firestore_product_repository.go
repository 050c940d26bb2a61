package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/domain/repository"
	"dpmarketpro/pkg/errors"
)

const productCollection = "products"

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{client: client}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection(productCollection).NewDoc()
		product.ID = doc.ID
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(productCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	query := r.client.Collection(productCollection).Query
	if activeOnly {
		query = query.Where("isActive", "==", true)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) ListByCategory(ctx context.Context, category entity.Category, activeOnly bool) ([]*entity.Product, error) {
	query := r.client.Collection(productCollection).Query.Where("category", "==", string(category))
	if activeOnly {
		query = query.Where("isActive", "==", true)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Product, error) {
	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.client.Collection(productCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	return nil
}

// SetActive touches nothing but the isActive field.
func (r *firestoreProductRepository) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.client.Collection(productCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "isActive", Value: active},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to toggle product visibility", err)
	}
	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(productCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}
