package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"gorm.io/gorm"
)

func CreateUser(tb testing.TB, tx *gorm.DB) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8]),
		Password:  "pw",
		FirstName: "Test",
		LastName:  "User",
	}
	if err := tx.WithContext(context.Background()).Create(u).Error; err != nil {
		tb.Fatalf("create fixture user: %v", err)
	}
	return u
}

func CreateShippingAddress(tb testing.TB, tx *gorm.DB, userID uuid.UUID) *types.ShippingAddress {
	tb.Helper()
	a := &types.ShippingAddress{
		ID:            uuid.New(),
		UserID:        userID,
		RecipientName: "Ana Silva",
		Street:        "Av. Paulista",
		Number:        "1000",
		Neighborhood:  "Bela Vista",
		City:          "São Paulo",
		State:         "SP",
		Country:       types.CountryBrazil,
		Phone:         "(11) 91234-5678",
		Email:         "ana@example.com",
		CpfOrCnpj:     "123.456.789-09",
	}
	if err := tx.WithContext(context.Background()).Create(a).Error; err != nil {
		tb.Fatalf("create fixture shipping address: %v", err)
	}
	return a
}

func CreateProductVariant(tb testing.TB, tx *gorm.DB) *types.ProductVariant {
	tb.Helper()
	ctx := context.Background()
	cat := &types.Category{
		ID:   uuid.New(),
		Name: "Tênis",
		Slug: fmt.Sprintf("tenis-%s", uuid.NewString()[:8]),
	}
	if err := tx.WithContext(ctx).Create(cat).Error; err != nil {
		tb.Fatalf("create fixture category: %v", err)
	}
	p := &types.Product{
		ID:          uuid.New(),
		CategoryID:  cat.ID,
		Name:        "Tênis Runner",
		Slug:        fmt.Sprintf("tenis-runner-%s", uuid.NewString()[:8]),
		Description: "Tênis de corrida",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("create fixture product: %v", err)
	}
	v := &types.ProductVariant{
		ID:           uuid.New(),
		ProductID:    p.ID,
		Name:         "Runner Azul",
		Slug:         fmt.Sprintf("runner-azul-%s", uuid.NewString()[:8]),
		Color:        "azul",
		PriceInCents: 19990,
		ImageURL:     "https://cdn.example.com/runner-azul.png",
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("create fixture product variant: %v", err)
	}
	return v
}

func CreateCartItem(tb testing.TB, tx *gorm.DB, cartID, variantID uuid.UUID) *types.CartItem {
	tb.Helper()
	item := &types.CartItem{
		ID:               uuid.New(),
		CartID:           cartID,
		ProductVariantID: variantID,
		Quantity:         1,
	}
	if err := tx.WithContext(context.Background()).Create(item).Error; err != nil {
		tb.Fatalf("create fixture cart item: %v", err)
	}
	return item
}

func CreateCart(tb testing.TB, tx *gorm.DB, userID uuid.UUID, shippingAddressID *uuid.UUID) *types.Cart {
	tb.Helper()
	c := &types.Cart{
		ID:                uuid.New(),
		UserID:            userID,
		ShippingAddressID: shippingAddressID,
	}
	if err := tx.WithContext(context.Background()).Create(c).Error; err != nil {
		tb.Fatalf("create fixture cart: %v", err)
	}
	return c
}
