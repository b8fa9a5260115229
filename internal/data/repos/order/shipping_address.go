package order

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ShippingAddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, addresses []*types.ShippingAddress) ([]*types.ShippingAddress, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.ShippingAddress, error)
	// GetOwnedByIDs constrains on both the primary key and the owning user,
	// so a row belonging to someone else is indistinguishable from a missing
	// one.
	GetOwnedByIDs(ctx context.Context, tx *gorm.DB, addressIDs []uuid.UUID, userID uuid.UUID) ([]*types.ShippingAddress, error)
}

type shippingAddressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShippingAddressRepo(db *gorm.DB, baseLog *logger.Logger) ShippingAddressRepo {
	repoLog := baseLog.With("repo", "ShippingAddressRepo")
	return &shippingAddressRepo{db: db, log: repoLog}
}

func (ar *shippingAddressRepo) Create(ctx context.Context, tx *gorm.DB, addresses []*types.ShippingAddress) ([]*types.ShippingAddress, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(addresses) == 0 {
		return []*types.ShippingAddress{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (ar *shippingAddressRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.ShippingAddress, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.ShippingAddress
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *shippingAddressRepo) GetOwnedByIDs(ctx context.Context, tx *gorm.DB, addressIDs []uuid.UUID, userID uuid.UUID) ([]*types.ShippingAddress, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.ShippingAddress
	if len(addressIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ? AND user_id = ?", addressIDs, userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
