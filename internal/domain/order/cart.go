package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/bewear-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Cart is created lazily the first time a user picks a shipping address and
// updated in place afterwards. The unique index on user_id is the storage
// invariant the upsert relies on; no soft delete, or the index would block
// re-creation.
type Cart struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	ShippingAddressID *uuid.UUID       `gorm:"type:uuid;column:shipping_address_id" json:"shipping_address_id,omitempty"`
	ShippingAddress   *ShippingAddress `gorm:"foreignKey:ShippingAddressID;references:ID" json:"shipping_address,omitempty"`

	Items []*CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Cart) TableName() string { return "cart" }

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
