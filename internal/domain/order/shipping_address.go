package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/bewear-backend/internal/domain/user"
	"gorm.io/gorm"
)

// CountryBrazil is the only country the storefront ships to; the column is
// always written with this constant.
const CountryBrazil = "Brasil"

// ShippingAddress rows always carry the owning user. The checkout form also
// collects a zip code, but the stored shape never had that column; the
// schema keeps validating it for compatibility with stored rows.
type ShippingAddress struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	User   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	RecipientName string  `gorm:"not null;column:recipient_name" json:"recipient_name"`
	Street        string  `gorm:"not null;column:street" json:"street"`
	Number        string  `gorm:"not null;column:number" json:"number"`
	Complement    *string `gorm:"column:complement" json:"complement,omitempty"`
	Neighborhood  string  `gorm:"not null;column:neighborhood" json:"neighborhood"`
	City          string  `gorm:"not null;column:city" json:"city"`
	State         string  `gorm:"not null;column:state" json:"state"`
	Country       string  `gorm:"not null;column:country" json:"country"`
	Phone         string  `gorm:"not null;column:phone" json:"phone"`
	Email         string  `gorm:"not null;column:email" json:"email"`
	CpfOrCnpj     string  `gorm:"not null;column:cpf_or_cnpj" json:"cpf_or_cnpj"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ShippingAddress) TableName() string { return "shipping_address" }

func (a *ShippingAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
