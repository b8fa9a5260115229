package repos

import (
	"github.com/yungbote/bewear-backend/internal/data/repos/auth"
	"github.com/yungbote/bewear-backend/internal/data/repos/catalog"
	"github.com/yungbote/bewear-backend/internal/data/repos/order"
	"github.com/yungbote/bewear-backend/internal/data/repos/user"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo
type UserTokenRepo = auth.UserTokenRepo

type CategoryRepo = catalog.CategoryRepo
type ProductRepo = catalog.ProductRepo
type ProductVariantRepo = catalog.ProductVariantRepo

type ShippingAddressRepo = order.ShippingAddressRepo
type CartRepo = order.CartRepo
type CartItemRepo = order.CartItemRepo

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo {
	return user.NewUserRepo(db, log)
}

func NewUserTokenRepo(db *gorm.DB, log *logger.Logger) UserTokenRepo {
	return auth.NewUserTokenRepo(db, log)
}

func NewCategoryRepo(db *gorm.DB, log *logger.Logger) CategoryRepo {
	return catalog.NewCategoryRepo(db, log)
}

func NewProductRepo(db *gorm.DB, log *logger.Logger) ProductRepo {
	return catalog.NewProductRepo(db, log)
}

func NewProductVariantRepo(db *gorm.DB, log *logger.Logger) ProductVariantRepo {
	return catalog.NewProductVariantRepo(db, log)
}

func NewShippingAddressRepo(db *gorm.DB, log *logger.Logger) ShippingAddressRepo {
	return order.NewShippingAddressRepo(db, log)
}

func NewCartRepo(db *gorm.DB, log *logger.Logger) CartRepo {
	return order.NewCartRepo(db, log)
}

func NewCartItemRepo(db *gorm.DB, log *logger.Logger) CartItemRepo {
	return order.NewCartItemRepo(db, log)
}
