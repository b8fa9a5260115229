package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/bewear-backend/internal/data/repos/testutil"
	types "github.com/yungbote/bewear-backend/internal/domain"
)

func TestUserTokenRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserTokenRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.CreateUser(t, tx)

	created, err := repo.Create(ctx, tx, []*types.UserToken{
		{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  "access-" + uuid.NewString(),
			RefreshToken: "refresh-" + uuid.NewString(),
			ExpiresAt:    time.Now().Add(time.Hour),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	token := created[0]

	byUser, err := repo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != token.ID {
		t.Fatalf("GetByUserIDs: unexpected result: %+v", byUser)
	}

	byAccess, err := repo.GetByAccessTokens(ctx, tx, []string{token.AccessToken})
	if err != nil {
		t.Fatalf("GetByAccessTokens: %v", err)
	}
	if len(byAccess) != 1 || byAccess[0].ID != token.ID {
		t.Fatalf("GetByAccessTokens: unexpected result: %+v", byAccess)
	}

	byRefresh, err := repo.GetByRefreshTokens(ctx, tx, []string{token.RefreshToken})
	if err != nil {
		t.Fatalf("GetByRefreshTokens: %v", err)
	}
	if len(byRefresh) != 1 || byRefresh[0].ID != token.ID {
		t.Fatalf("GetByRefreshTokens: unexpected result: %+v", byRefresh)
	}

	if err := repo.FullDeleteByIDs(ctx, tx, []uuid.UUID{token.ID}); err != nil {
		t.Fatalf("FullDeleteByIDs: %v", err)
	}
	byUser, err = repo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs (after delete): %v", err)
	}
	if len(byUser) != 0 {
		t.Fatalf("expected the token to be gone, got %+v", byUser)
	}
}
