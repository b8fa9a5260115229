package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/data/repos"
	"github.com/yungbote/bewear-backend/internal/normalization"
	"github.com/yungbote/bewear-backend/internal/pkg/ctxutil"
	"github.com/yungbote/bewear-backend/internal/platform/apierr"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"github.com/yungbote/bewear-backend/internal/validation"
	"gorm.io/gorm"
)

type AddressService interface {
	CreateShippingAddress(ctx context.Context, in *validation.CreateShippingAddressInput) (*types.ShippingAddress, error)
	ListShippingAddresses(ctx context.Context) ([]*types.ShippingAddress, error)
}

type addressService struct {
	db          *gorm.DB
	log         *logger.Logger
	addressRepo repos.ShippingAddressRepo
}

func NewAddressService(db *gorm.DB, log *logger.Logger, addressRepo repos.ShippingAddressRepo) AddressService {
	serviceLog := log.With("service", "AddressService")
	return &addressService{db: db, log: serviceLog, addressRepo: addressRepo}
}

// CreateShippingAddress validates the checkout form, resolves the caller
// and inserts one row owned by them. Users may hold any number of
// addresses; no dedupe. The zip code passes validation but is not stored
// (the table has no column for it).
func (as *addressService) CreateShippingAddress(ctx context.Context, in *validation.CreateShippingAddressInput) (*types.ShippingAddress, error) {
	in.Normalize()
	if fields := in.Validate(); fields != nil {
		return nil, apierr.Validation(fields)
	}

	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized()
	}

	address := &types.ShippingAddress{
		ID:            uuid.New(),
		UserID:        rd.UserID,
		RecipientName: in.FullName,
		Street:        in.Address,
		Number:        in.Number,
		Complement:    normalization.TrimInputStringPtr(&in.Complement),
		Neighborhood:  in.Neighborhood,
		City:          in.City,
		State:         in.State,
		Country:       types.CountryBrazil,
		Phone:         in.Phone,
		Email:         in.Email,
		CpfOrCnpj:     in.Cpf,
	}

	created, err := as.addressRepo.Create(ctx, nil, []*types.ShippingAddress{address})
	if err != nil {
		as.log.Warn("Failed to create shipping address", "error", err, "user_id", rd.UserID.String())
		return nil, fmt.Errorf("failed to create shipping address: %w", err)
	}
	return created[0], nil
}

func (as *addressService) ListShippingAddresses(ctx context.Context) ([]*types.ShippingAddress, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized()
	}

	addresses, err := as.addressRepo.GetByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to list shipping addresses: %w", err)
	}
	return addresses, nil
}
