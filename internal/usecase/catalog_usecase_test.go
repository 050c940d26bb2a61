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

func TestListAllFallsBackOnGatewayError(t *testing.T) {
	repo := newFakeProductRepo()
	repo.listErr = fmt.Errorf("gateway unreachable")
	uc := NewCatalogUseCase(repo)

	products := uc.ListAll(context.Background(), true)

	require.Len(t, products, 3)
	// Fallback keeps declaration order, not timestamp order.
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "2", products[1].ID)
	assert.Equal(t, "3", products[2].ID)
}

func TestListAllFallsBackOnEmptyCatalog(t *testing.T) {
	uc := NewCatalogUseCase(newFakeProductRepo())

	products := uc.ListAll(context.Background(), true)

	assert.Len(t, products, 3)
	assert.Equal(t, "AI Faceless YouTube Mastery Course", products[0].Title)
}

func TestListAllPrefersLiveData(t *testing.T) {
	repo := newFakeProductRepo()
	older := &entity.Product{Title: "Older", Category: entity.CategoryOffer, IsActive: true}
	newer := &entity.Product{Title: "Newer", Category: entity.CategoryCourse, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), older))
	require.NoError(t, repo.Create(context.Background(), newer))

	uc := NewCatalogUseCase(repo)
	products := uc.ListAll(context.Background(), true)

	require.Len(t, products, 2)
	assert.Equal(t, "Newer", products[0].Title)
	assert.Equal(t, "Older", products[1].Title)
}

func TestListAllHidesInactiveFromStorefront(t *testing.T) {
	repo := newFakeProductRepo()
	hidden := &entity.Product{Title: "Hidden", Category: entity.CategoryCourse, IsActive: false}
	live := &entity.Product{Title: "Live", Category: entity.CategoryCourse, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), hidden))
	require.NoError(t, repo.Create(context.Background(), live))

	uc := NewCatalogUseCase(repo)
	products := uc.ListAll(context.Background(), true)

	require.Len(t, products, 1)
	assert.Equal(t, "Live", products[0].Title)
}

func TestListByCategoryFallbackFiltersByCategory(t *testing.T) {
	repo := newFakeProductRepo()
	repo.listErr = fmt.Errorf("gateway unreachable")
	uc := NewCatalogUseCase(repo)
	ctx := context.Background()

	courses := uc.ListByCategory(ctx, entity.CategoryCourse)
	require.Len(t, courses, 2)
	assert.Equal(t, "1", courses[0].ID)
	assert.Equal(t, "3", courses[1].ID)

	bundles := uc.ListByCategory(ctx, entity.CategoryDigitalProduct)
	require.Len(t, bundles, 1)
	assert.Equal(t, "2", bundles[0].ID)

	offers := uc.ListByCategory(ctx, entity.CategoryOffer)
	assert.Empty(t, offers)
}

func TestGetByIDFallsBackToDemoEntry(t *testing.T) {
	repo := newFakeProductRepo()
	repo.getErr = fmt.Errorf("gateway unreachable")
	uc := NewCatalogUseCase(repo)

	product, err := uc.GetByID(context.Background(), "2")

	require.NoError(t, err)
	assert.Equal(t, "Lifetime AI Tools Bundle", product.Title)
}

func TestGetByIDUnknownEverywhere(t *testing.T) {
	repo := newFakeProductRepo()
	repo.getErr = fmt.Errorf("gateway unreachable")
	uc := NewCatalogUseCase(repo)

	_, err := uc.GetByID(context.Background(), "does-not-exist")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
