package domain

import (
	"github.com/yungbote/bewear-backend/internal/domain/auth"
	"github.com/yungbote/bewear-backend/internal/domain/catalog"
	"github.com/yungbote/bewear-backend/internal/domain/order"
	"github.com/yungbote/bewear-backend/internal/domain/user"
)

type User = user.User
type UserToken = auth.UserToken

type Category = catalog.Category
type Product = catalog.Product
type ProductVariant = catalog.ProductVariant

type ShippingAddress = order.ShippingAddress
type Cart = order.Cart
type CartItem = order.CartItem

const CountryBrazil = order.CountryBrazil
