package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/bewear-backend/internal/data/repos/testutil"
)

func TestCartRepoUpsertShippingAddressCreates(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.CreateUser(t, tx)
	address := testutil.CreateShippingAddress(t, tx, user.ID)

	cart, err := repo.UpsertShippingAddress(ctx, tx, user.ID, address.ID)
	if err != nil {
		t.Fatalf("UpsertShippingAddress: %v", err)
	}
	if cart.UserID != user.ID {
		t.Fatalf("cart owner: got %s want %s", cart.UserID, user.ID)
	}
	if cart.ShippingAddressID == nil || *cart.ShippingAddressID != address.ID {
		t.Fatalf("cart shipping address: got %v want %s", cart.ShippingAddressID, address.ID)
	}
}

func TestCartRepoUpsertShippingAddressReusesCart(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.CreateUser(t, tx)
	first := testutil.CreateShippingAddress(t, tx, user.ID)
	second := testutil.CreateShippingAddress(t, tx, user.ID)

	cart1, err := repo.UpsertShippingAddress(ctx, tx, user.ID, first.ID)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Same address again: no new row, nothing changes.
	cart2, err := repo.UpsertShippingAddress(ctx, tx, user.ID, first.ID)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if cart2.ID != cart1.ID {
		t.Fatalf("expected the same cart row, got %s and %s", cart1.ID, cart2.ID)
	}

	// Different address: same row, pointer flips.
	cart3, err := repo.UpsertShippingAddress(ctx, tx, user.ID, second.ID)
	if err != nil {
		t.Fatalf("third upsert: %v", err)
	}
	if cart3.ID != cart1.ID {
		t.Fatalf("expected the same cart row after switch, got %s and %s", cart1.ID, cart3.ID)
	}
	if cart3.ShippingAddressID == nil || *cart3.ShippingAddressID != second.ID {
		t.Fatalf("cart shipping address after switch: got %v want %s", cart3.ShippingAddressID, second.ID)
	}

	carts, err := repo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs: %v", err)
	}
	if len(carts) != 1 {
		t.Fatalf("expected exactly one cart per user, got %d", len(carts))
	}
}

func TestCartRepoGetWithItems(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.CreateUser(t, tx)

	cart, err := repo.GetWithItems(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("GetWithItems (no cart): %v", err)
	}
	if cart != nil {
		t.Fatalf("GetWithItems (no cart): expected nil, got %+v", cart)
	}

	address := testutil.CreateShippingAddress(t, tx, user.ID)
	created := testutil.CreateCart(t, tx, user.ID, &address.ID)
	variant := testutil.CreateProductVariant(t, tx)
	item := testutil.CreateCartItem(t, tx, created.ID, variant.ID)

	cart, err = repo.GetWithItems(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("GetWithItems: %v", err)
	}
	if cart == nil || cart.ID != created.ID {
		t.Fatalf("GetWithItems: unexpected cart: %+v", cart)
	}
	if len(cart.Items) != 1 || cart.Items[0].ID != item.ID {
		t.Fatalf("GetWithItems: unexpected items: %+v", cart.Items)
	}
	if cart.Items[0].ProductVariant == nil || cart.Items[0].ProductVariant.ID != variant.ID {
		t.Fatalf("GetWithItems: expected product variant preload")
	}
	if cart.ShippingAddress == nil || cart.ShippingAddress.ID != address.ID {
		t.Fatalf("GetWithItems: expected shipping address preload")
	}
}
