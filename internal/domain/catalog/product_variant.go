package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductVariant struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"product_id"`
	Product      *Product       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Name         string         `gorm:"not null;column:name" json:"name"`
	Slug         string         `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Color        string         `gorm:"not null;column:color" json:"color"`
	PriceInCents int64          `gorm:"not null;column:price_in_cents" json:"price_in_cents"`
	ImageURL     string         `gorm:"not null;column:image_url" json:"image_url"`
	Attributes   datatypes.JSON `gorm:"column:attributes" json:"attributes,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ProductVariant) TableName() string { return "product_variant" }

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
