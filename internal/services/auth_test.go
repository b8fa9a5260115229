package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/bewear-backend/internal/data/repos"
	"github.com/yungbote/bewear-backend/internal/data/repos/testutil"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/pkg/ctxutil"
	"gorm.io/gorm"
)

func newAuthServiceForTest(t *testing.T, tx *gorm.DB) AuthService {
	t.Helper()
	log := testutil.Logger(t)
	return NewAuthService(
		tx,
		log,
		repos.NewUserRepo(tx, log),
		repos.NewUserTokenRepo(tx, log),
		"test-secret",
		time.Hour,
		24*time.Hour,
	)
}

func TestAuthLifecycle(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	svc := newAuthServiceForTest(t, tx)
	ctx := context.Background()

	user := &types.User{
		Email:     "Lifecycle@Example.com ",
		FirstName: "Ana",
		LastName:  "Silva",
		Password:  "s3cret-pw",
	}
	if err := svc.RegisterUser(ctx, user); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.Email != "lifecycle@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Password == "s3cret-pw" {
		t.Fatalf("expected the password to be hashed")
	}

	accessToken, refreshToken, err := svc.LoginUser(ctx, "lifecycle@example.com", "s3cret-pw")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatalf("expected both tokens, got %q / %q", accessToken, refreshToken)
	}

	authedCtx, err := svc.SetContextFromToken(ctx, accessToken)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := ctxutil.GetRequestData(authedCtx)
	if rd == nil || rd.UserID != user.ID {
		t.Fatalf("unexpected request data: %+v", rd)
	}
	if rd.RefreshToken != refreshToken {
		t.Fatalf("expected the session refresh token in request data")
	}

	if err := svc.LogoutUser(authedCtx); err != nil {
		t.Fatalf("LogoutUser: %v", err)
	}

	// Logout deletes the token row, so the same JWT no longer resolves.
	if _, err := svc.SetContextFromToken(ctx, accessToken); err == nil {
		t.Fatalf("expected the session to be gone after logout")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	svc := newAuthServiceForTest(t, tx)
	ctx := context.Background()

	user := &types.User{
		Email:     "badcreds@example.com",
		FirstName: "Ana",
		LastName:  "Silva",
		Password:  "right-pw",
	}
	if err := svc.RegisterUser(ctx, user); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if _, _, err := svc.LoginUser(ctx, "badcreds@example.com", "wrong-pw"); err == nil {
		t.Fatalf("expected wrong password to fail")
	}
	_, _, err := svc.LoginUser(ctx, "nobody@example.com", "right-pw")
	if err == nil {
		t.Fatalf("expected unknown email to fail")
	}
	// Unknown email and wrong password share one message.
	if !strings.Contains(err.Error(), "invalid email or password") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	svc := newAuthServiceForTest(t, tx)
	ctx := context.Background()

	first := &types.User{Email: "dup@example.com", FirstName: "A", LastName: "B", Password: "pw"}
	if err := svc.RegisterUser(ctx, first); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	second := &types.User{Email: "DUP@example.com", FirstName: "C", LastName: "D", Password: "pw"}
	if err := svc.RegisterUser(ctx, second); err == nil {
		t.Fatalf("expected duplicate email to fail")
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	svc := newAuthServiceForTest(t, tx)
	ctx := context.Background()

	user := &types.User{Email: "rotate@example.com", FirstName: "A", LastName: "B", Password: "pw"}
	if err := svc.RegisterUser(ctx, user); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	accessToken, refreshToken, err := svc.LoginUser(ctx, "rotate@example.com", "pw")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	rdCtx := ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		TokenString:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
	})
	newAccess, newRefresh, err := svc.RefreshUser(rdCtx)
	if err != nil {
		t.Fatalf("RefreshUser: %v", err)
	}
	if newRefresh == refreshToken {
		t.Fatalf("expected the refresh token to rotate")
	}
	if newAccess == "" {
		t.Fatalf("expected a new access token")
	}

	// The old refresh token is burned.
	if _, _, err := svc.RefreshUser(rdCtx); err == nil {
		t.Fatalf("expected a second refresh with the old token to fail")
	}

	if _, err := svc.SetContextFromToken(ctx, newAccess); err != nil {
		t.Fatalf("SetContextFromToken after refresh: %v", err)
	}
}
