package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/data/repos"
	"github.com/yungbote/bewear-backend/internal/normalization"
	"github.com/yungbote/bewear-backend/internal/platform/apierr"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// CatalogService serves the read-only browsing surface; nothing here is
// user-scoped.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]*types.Category, error)
	ListProducts(ctx context.Context) ([]*types.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*types.Product, error)
	ListProductVariants(ctx context.Context, slug string) ([]*types.ProductVariant, error)
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
	productRepo  repos.ProductRepo
	variantRepo  repos.ProductVariantRepo
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, categoryRepo repos.CategoryRepo, productRepo repos.ProductRepo, variantRepo repos.ProductVariantRepo) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{db: db, log: serviceLog, categoryRepo: categoryRepo, productRepo: productRepo, variantRepo: variantRepo}
}

func (cs *catalogService) ListCategories(ctx context.Context) ([]*types.Category, error) {
	categories, err := cs.categoryRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (cs *catalogService) ListProducts(ctx context.Context) ([]*types.Product, error) {
	products, err := cs.productRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (cs *catalogService) GetProductBySlug(ctx context.Context, slug string) (*types.Product, error) {
	slug = normalization.ParseInputString(slug)
	if slug == "" {
		return nil, apierr.Validation(apierr.FieldErrors{"slug": "Slug inválido."})
	}
	products, err := cs.productRepo.GetBySlugs(ctx, nil, []string{slug})
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if len(products) == 0 {
		return nil, apierr.NotFound("product")
	}
	return products[0], nil
}

// ListProductVariants returns the variants of one product, resolved by slug.
func (cs *catalogService) ListProductVariants(ctx context.Context, slug string) ([]*types.ProductVariant, error) {
	product, err := cs.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	variants, err := cs.variantRepo.GetByProductIDs(ctx, nil, []uuid.UUID{product.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list product variants: %w", err)
	}
	return variants, nil
}
