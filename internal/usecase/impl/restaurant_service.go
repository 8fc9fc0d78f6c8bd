package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type restaurantService struct {
	txManager          repository.TransactionManager
	restaurantRepo     repository.RestaurantRepository
	staffRepo          repository.StaffRepository
	deliveryPersonRepo repository.DeliveryPersonRepository
	hasher             service.PasswordHasher
	qrCodeService      service.QRCodeService
	cache              service.Cache
	logger             *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	TxManager          repository.TransactionManager
	RestaurantRepo     repository.RestaurantRepository
	StaffRepo          repository.StaffRepository
	DeliveryPersonRepo repository.DeliveryPersonRepository
	Hasher             service.PasswordHasher
	QRCodeService      service.QRCodeService
	Cache              service.Cache
	Logger             *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		txManager:          params.TxManager,
		restaurantRepo:     params.RestaurantRepo,
		staffRepo:          params.StaffRepo,
		deliveryPersonRepo: params.DeliveryPersonRepo,
		hasher:             params.Hasher,
		qrCodeService:      params.QRCodeService,
		cache:              params.Cache,
		logger:             params.Logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRestaurant creates the tenant and its first admin in one transaction.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, input *usecase.CreateRestaurantInput) (*usecase.CreateRestaurantOutput, error) {
	hash, err := srv.hashPassword(input.Admin.Password)
	if err != nil {
		return nil, err
	}

	restaurant := &entity.Restaurant{
		ID:            uuid.New(),
		Identifier:    normalizeIdentifier(input.Identifier),
		Name:          strings.TrimSpace(input.Name),
		IsActive:      true,
		POSEnabled:    input.POSEnabled,
		POSProvider:   strings.TrimSpace(input.POSProvider),
		POSTerminalID: strings.TrimSpace(input.POSTerminalID),
	}
	admin := &entity.Staff{
		ID:           uuid.New(),
		RestaurantID: restaurant.ID,
		Username:     strings.TrimSpace(input.Admin.Username),
		Email:        normalizeEmail(input.Admin.Email),
		Name:         strings.TrimSpace(input.Admin.Name),
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRestaurantRepository().Create(ctx, restaurant); err != nil {
			if errors.Is(err, repository.ErrDuplicateRestaurant) {
				return domainerrors.ErrRestaurantAlreadyExists
			}

			return errors.Wrap(err, "failed to create restaurant")
		}

		if err := repoFactory.NewStaffRepository().Create(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to create restaurant admin")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create restaurant", slog.String("identifier", restaurant.Identifier), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Restaurant created", slog.Any("restaurantID", restaurant.ID), slog.String("identifier", restaurant.Identifier))

	return &usecase.CreateRestaurantOutput{Restaurant: restaurant, Admin: admin}, nil
}

func (srv *restaurantService) ListRestaurants(ctx context.Context, includeInactive bool) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.List(ctx, repository.RestaurantFilter{IncludeInactive: includeInactive})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

func (srv *restaurantService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

func (srv *restaurantService) GetRestaurantByIdentifier(ctx context.Context, identifier string) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByIdentifier(ctx, normalizeIdentifier(identifier))
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant")
	}
	if !restaurant.IsActive {
		return nil, domainerrors.ErrRestaurantNotFound
	}

	return restaurant, nil
}

func (srv *restaurantService) UpdateRestaurant(ctx context.Context, id uuid.UUID, input *usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	restaurant, err := srv.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		restaurant.Name = strings.TrimSpace(*input.Name)
	}
	if input.POSEnabled != nil {
		restaurant.POSEnabled = *input.POSEnabled
	}
	if input.POSProvider != nil {
		restaurant.POSProvider = strings.TrimSpace(*input.POSProvider)
	}
	if input.POSTerminalID != nil {
		restaurant.POSTerminalID = strings.TrimSpace(*input.POSTerminalID)
	}

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return restaurant, nil
}

// SetRestaurantActive toggles the tenant. The cross-restaurant product listing
// only shows active restaurants, so it is invalidated too.
func (srv *restaurantService) SetRestaurantActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := srv.restaurantRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound
		}

		return errors.Wrap(err, "failed to update restaurant status")
	}

	invalidateProductListings(ctx, srv.cache, srv.log(ctx), id)
	srv.log(ctx).Info("Restaurant status changed", slog.Any("restaurantID", id), slog.Bool("active", active))

	return nil
}

func (srv *restaurantService) CreateStaff(ctx context.Context, restaurantID uuid.UUID, input *usecase.CreateStaffInput) (*entity.Staff, error) {
	if input.Role != entity.RoleAdmin && input.Role != entity.RoleEmployee {
		return nil, domainerrors.NewValidationError("role must be %q or %q", entity.RoleAdmin, entity.RoleEmployee)
	}

	hash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	staff := &entity.Staff{
		RestaurantID: restaurantID,
		Username:     strings.TrimSpace(input.Username),
		Email:        normalizeEmail(input.Email),
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := srv.staffRepo.Create(ctx, staff); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateStaff):
			return nil, domainerrors.ErrStaffAlreadyExists
		case errors.Is(err, repository.ErrRestaurantNotFound):
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to create staff")
	}

	return staff, nil
}

func (srv *restaurantService) ListStaff(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Staff, error) {
	staff, err := srv.staffRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	return staff, nil
}

func (srv *restaurantService) CreateDeliveryPerson(ctx context.Context, restaurantID uuid.UUID, input *usecase.CreateDeliveryPersonInput) (*entity.DeliveryPerson, error) {
	hash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	person := &entity.DeliveryPerson{
		RestaurantID: restaurantID,
		Username:     strings.TrimSpace(input.Username),
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := srv.deliveryPersonRepo.Create(ctx, person); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateDeliveryPerson):
			return nil, domainerrors.ErrDeliveryPersonAlreadyExists
		case errors.Is(err, repository.ErrRestaurantNotFound):
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to create delivery person")
	}

	return person, nil
}

func (srv *restaurantService) ListDeliveryPersons(ctx context.Context, restaurantID uuid.UUID) ([]*entity.DeliveryPerson, error) {
	persons, err := srv.deliveryPersonRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery persons")
	}

	return persons, nil
}

func (srv *restaurantService) SetDeliveryPersonActive(ctx context.Context, restaurantID, id uuid.UUID, active bool) error {
	person, err := srv.deliveryPersonRepo.FindByID(ctx, restaurantID, id)
	if errors.Is(err, repository.ErrDeliveryPersonNotFound) {
		return domainerrors.ErrDeliveryPersonNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find delivery person")
	}

	person.IsActive = active
	if err := srv.deliveryPersonRepo.Update(ctx, person); err != nil {
		return errors.Wrap(err, "failed to update delivery person")
	}

	return nil
}

func (srv *restaurantService) GetMenuQRCode(ctx context.Context, restaurantID uuid.UUID) (*usecase.MenuQRCode, error) {
	restaurant, err := srv.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateMenuQR(restaurant.Identifier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate menu QR code")
	}

	return &usecase.MenuQRCode{
		URL: srv.qrCodeService.MenuURL(restaurant.Identifier),
		PNG: png,
	}, nil
}

func (srv *restaurantService) hashPassword(password string) (string, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

func normalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
