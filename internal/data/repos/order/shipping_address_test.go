package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/bewear-backend/internal/data/repos/testutil"
	types "github.com/yungbote/bewear-backend/internal/domain"
)

func TestShippingAddressRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewShippingAddressRepo(db, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.CreateUser(t, tx)

	created, err := repo.Create(ctx, tx, []*types.ShippingAddress{
		{
			ID:            uuid.New(),
			UserID:        owner.ID,
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
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 address, got %d", len(created))
	}
	address := created[0]

	byUser, err := repo.GetByUserIDs(ctx, tx, []uuid.UUID{owner.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != address.ID {
		t.Fatalf("GetByUserIDs: unexpected result: %+v", byUser)
	}

	owned, err := repo.GetOwnedByIDs(ctx, tx, []uuid.UUID{address.ID}, owner.ID)
	if err != nil {
		t.Fatalf("GetOwnedByIDs: %v", err)
	}
	if len(owned) != 1 || owned[0].ID != address.ID {
		t.Fatalf("GetOwnedByIDs: unexpected result: %+v", owned)
	}
}

func TestShippingAddressRepoOwnershipScope(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewShippingAddressRepo(db, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.CreateUser(t, tx)
	other := testutil.CreateUser(t, tx)
	address := testutil.CreateShippingAddress(t, tx, owner.ID)

	// Someone else's row reads as missing.
	owned, err := repo.GetOwnedByIDs(ctx, tx, []uuid.UUID{address.ID}, other.ID)
	if err != nil {
		t.Fatalf("GetOwnedByIDs (other user): %v", err)
	}
	if len(owned) != 0 {
		t.Fatalf("GetOwnedByIDs (other user): expected no rows, got %+v", owned)
	}

	owned, err = repo.GetOwnedByIDs(ctx, tx, []uuid.UUID{uuid.New()}, owner.ID)
	if err != nil {
		t.Fatalf("GetOwnedByIDs (missing id): %v", err)
	}
	if len(owned) != 0 {
		t.Fatalf("GetOwnedByIDs (missing id): expected no rows, got %+v", owned)
	}
}
