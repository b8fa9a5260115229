package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/data/repos"
	"github.com/yungbote/bewear-backend/internal/pkg/ctxutil"
	"github.com/yungbote/bewear-backend/internal/platform/apierr"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"github.com/yungbote/bewear-backend/internal/validation"
	"gorm.io/gorm"
)

type CartService interface {
	GetCart(ctx context.Context) (*types.Cart, error)
	RemoveCartItem(ctx context.Context, rawItemID string) error
	UpdateCartShippingAddress(ctx context.Context, rawAddressID string) (*types.Cart, error)
}

type cartService struct {
	db           *gorm.DB
	log          *logger.Logger
	cartRepo     repos.CartRepo
	cartItemRepo repos.CartItemRepo
	addressRepo  repos.ShippingAddressRepo
}

func NewCartService(
	db *gorm.DB,
	log *logger.Logger,
	cartRepo repos.CartRepo,
	cartItemRepo repos.CartItemRepo,
	addressRepo repos.ShippingAddressRepo,
) CartService {
	serviceLog := log.With("service", "CartService")
	return &cartService{
		db:           db,
		log:          serviceLog,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		addressRepo:  addressRepo,
	}
}

// GetCart returns the caller's cart with items and the chosen address, or
// nil when the user has not started one.
func (cs *cartService) GetCart(ctx context.Context) (*types.Cart, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized()
	}

	cart, err := cs.cartRepo.GetWithItems(ctx, nil, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

// RemoveCartItem deletes one item from the caller's cart. The lookup is
// scoped to carts the caller owns, so an item in someone else's cart reads
// as missing.
func (cs *cartService) RemoveCartItem(ctx context.Context, rawItemID string) error {
	itemID, fields := validation.ParseID("cart_item_id", rawItemID)
	if fields != nil {
		return apierr.Validation(fields)
	}

	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return apierr.Unauthorized()
	}

	owned, err := cs.cartItemRepo.GetOwnedByIDs(ctx, nil, []uuid.UUID{itemID}, rd.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up cart item: %w", err)
	}
	if len(owned) == 0 {
		return apierr.NotFound("cart item")
	}

	if err := cs.cartItemRepo.DeleteByIDs(ctx, nil, []uuid.UUID{owned[0].ID}); err != nil {
		cs.log.Warn("Failed to delete cart item", "error", err, "user_id", rd.UserID.String())
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// UpdateCartShippingAddress points the caller's cart at one of their own
// addresses, creating the cart on first use. A missing address and an
// address owned by someone else both come back as NotFound.
func (cs *cartService) UpdateCartShippingAddress(ctx context.Context, rawAddressID string) (*types.Cart, error) {
	addressID, fields := validation.ParseID("shipping_address_id", rawAddressID)
	if fields != nil {
		return nil, apierr.Validation(fields)
	}

	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized()
	}

	owned, err := cs.addressRepo.GetOwnedByIDs(ctx, nil, []uuid.UUID{addressID}, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up shipping address: %w", err)
	}
	if len(owned) == 0 {
		return nil, apierr.NotFound("shipping address")
	}

	cart, err := cs.cartRepo.UpsertShippingAddress(ctx, nil, rd.UserID, addressID)
	if err != nil {
		cs.log.Warn("Failed to upsert cart shipping address", "error", err, "user_id", rd.UserID.String())
		return nil, fmt.Errorf("failed to update cart shipping address: %w", err)
	}
	return cart, nil
}
