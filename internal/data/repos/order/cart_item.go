package order

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type CartItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.CartItem) ([]*types.CartItem, error)
	GetByCartIDs(ctx context.Context, tx *gorm.DB, cartIDs []uuid.UUID) ([]*types.CartItem, error)
	// GetOwnedByIDs walks through the parent cart so only items in the
	// caller's cart come back.
	GetOwnedByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID, userID uuid.UUID) ([]*types.CartItem, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error
}

type cartItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartItemRepo(db *gorm.DB, baseLog *logger.Logger) CartItemRepo {
	repoLog := baseLog.With("repo", "CartItemRepo")
	return &cartItemRepo{db: db, log: repoLog}
}

func (ir *cartItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.CartItem) ([]*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if len(items) == 0 {
		return []*types.CartItem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (ir *cartItemRepo) GetByCartIDs(ctx context.Context, tx *gorm.DB, cartIDs []uuid.UUID) ([]*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*types.CartItem
	if len(cartIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("cart_id IN ?", cartIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *cartItemRepo) GetOwnedByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID, userID uuid.UUID) ([]*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*types.CartItem
	if len(itemIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Joins("JOIN cart ON cart.id = cart_item.cart_id").
		Where("cart_item.id IN ? AND cart.user_id = ?", itemIDs, userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *cartItemRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if len(itemIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("id IN ?", itemIDs).
		Delete(&types.CartItem{}).Error
}
