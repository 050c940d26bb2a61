package usecase

import (
	"context"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/domain/repository"
	"dpmarketpro/pkg/errors"
	"dpmarketpro/pkg/logger"
)

// CatalogUseCase serves public product listings. Reads that fail or come
// back empty are silently replaced by the demonstration catalog; storefront
// visitors never see a gateway error.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo}
}

// ListAll returns every listing, newest first. activeOnly hides draft-mode
// listings, which is what the public storefront always requests.
func (uc *CatalogUseCase) ListAll(ctx context.Context, activeOnly bool) []*entity.Product {
	products, err := uc.productRepo.List(ctx, activeOnly)
	if err != nil || len(products) == 0 {
		if err != nil {
			logger.Warn("Catalog list failed, serving demo catalog: %v", err)
		}
		return demoCatalog(func(p *entity.Product) bool {
			return !activeOnly || p.IsActive
		})
	}
	return products
}

func (uc *CatalogUseCase) ListByCategory(ctx context.Context, category entity.Category) []*entity.Product {
	products, err := uc.productRepo.ListByCategory(ctx, category, true)
	if err != nil || len(products) == 0 {
		if err != nil {
			logger.Warn("Catalog category list failed, serving demo catalog: %v", err)
		}
		return demoCatalog(func(p *entity.Product) bool {
			return p.Category == category && p.IsActive
		})
	}
	return products
}

func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err == nil && product != nil {
		return product, nil
	}
	if err != nil {
		logger.Debug("Catalog detail read failed for %s, trying demo catalog: %v", id, err)
	}

	for _, demo := range demoCatalog(nil) {
		if demo.ID == id {
			return demo, nil
		}
	}
	return nil, errors.NotFound("Product", err)
}
