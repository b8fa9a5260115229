package order

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepo interface {
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Cart, error)
	GetWithItems(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Cart, error)
	// UpsertShippingAddress is the whole association rule in one statement:
	// insert the user's cart pointing at the address, or flip the existing
	// row's shipping_address_id. Relies on the unique index on cart.user_id.
	UpsertShippingAddress(ctx context.Context, tx *gorm.DB, userID, shippingAddressID uuid.UUID) (*types.Cart, error)
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	repoLog := baseLog.With("repo", "CartRepo")
	return &cartRepo{db: db, log: repoLog}
}

func (cr *cartRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Cart, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Cart
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *cartRepo) GetWithItems(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Cart, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Cart
	if err := transaction.WithContext(ctx).
		Preload("Items").
		Preload("Items.ProductVariant").
		Preload("ShippingAddress").
		Where("user_id = ?", userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (cr *cartRepo) UpsertShippingAddress(ctx context.Context, tx *gorm.DB, userID, shippingAddressID uuid.UUID) (*types.Cart, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	addressID := shippingAddressID
	cart := &types.Cart{
		ID:                uuid.New(),
		UserID:            userID,
		ShippingAddressID: &addressID,
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"shipping_address_id": addressID,
			}),
		}).
		Create(cart).Error; err != nil {
		return nil, err
	}

	// On conflict the insert candidate's ID never lands; re-read to return
	// the surviving row.
	carts, err := cr.GetByUserIDs(ctx, transaction, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return carts[0], nil
}
