package catalog

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProductVariantRepo interface {
	Create(ctx context.Context, tx *gorm.DB, variants []*types.ProductVariant) ([]*types.ProductVariant, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, variantIDs []uuid.UUID) ([]*types.ProductVariant, error)
	GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.ProductVariant, error)
}

type productVariantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductVariantRepo(db *gorm.DB, baseLog *logger.Logger) ProductVariantRepo {
	repoLog := baseLog.With("repo", "ProductVariantRepo")
	return &productVariantRepo{db: db, log: repoLog}
}

func (vr *productVariantRepo) Create(ctx context.Context, tx *gorm.DB, variants []*types.ProductVariant) ([]*types.ProductVariant, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(variants) == 0 {
		return []*types.ProductVariant{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (vr *productVariantRepo) GetByIDs(ctx context.Context, tx *gorm.DB, variantIDs []uuid.UUID) ([]*types.ProductVariant, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.ProductVariant
	if len(variantIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", variantIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *productVariantRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.ProductVariant, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.ProductVariant
	if len(productIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
