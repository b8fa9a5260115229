package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/bewear-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

type CartItem struct {
	ID               uuid.UUID               `gorm:"type:uuid;primaryKey" json:"id"`
	CartID           uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_cart_variant" json:"cart_id"`
	Cart             *Cart                   `gorm:"constraint:OnDelete:CASCADE;foreignKey:CartID;references:ID" json:"cart,omitempty"`
	ProductVariantID uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_cart_variant" json:"product_variant_id"`
	ProductVariant   *catalog.ProductVariant `gorm:"foreignKey:ProductVariantID;references:ID" json:"product_variant,omitempty"`
	Quantity         int                     `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CartItem) TableName() string { return "cart_item" }

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
