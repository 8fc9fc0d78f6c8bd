// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"comanda/config"
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

type authService struct {
	restaurantRepo     repository.RestaurantRepository
	staffRepo          repository.StaffRepository
	customerRepo       repository.CustomerRepository
	deliveryPersonRepo repository.DeliveryPersonRepository
	hasher             service.PasswordHasher
	tokenService       service.TokenService
	superAdmin         config.SuperAdminConfig
	logger             *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	RestaurantRepo     repository.RestaurantRepository
	StaffRepo          repository.StaffRepository
	CustomerRepo       repository.CustomerRepository
	DeliveryPersonRepo repository.DeliveryPersonRepository
	Hasher             service.PasswordHasher
	TokenService       service.TokenService
	Config             *config.Config
	Logger             *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var superAdmin config.SuperAdminConfig
	if params.Config != nil && params.Config.Auth != nil {
		superAdmin = params.Config.Auth.SuperAdmin
	}

	return &authService{
		restaurantRepo:     params.RestaurantRepo,
		staffRepo:          params.StaffRepo,
		customerRepo:       params.CustomerRepo,
		deliveryPersonRepo: params.DeliveryPersonRepo,
		hasher:             params.Hasher,
		tokenService:       params.TokenService,
		superAdmin:         superAdmin,
		logger:             params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginCustomer checks at most two accounts: the restaurant's own customer for
// the email, then the shared customer. Each candidate costs one hash check.
func (srv *authService) LoginCustomer(ctx context.Context, input *usecase.CustomerLoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	var restaurantID *uuid.UUID
	if identifier := normalizeIdentifier(input.RestaurantIdentifier); identifier != "" {
		restaurant, err := srv.activeRestaurant(ctx, identifier)
		if err != nil {
			return nil, err
		}
		restaurantID = &restaurant.ID
	}

	scopes := []*uuid.UUID{nil}
	if restaurantID != nil {
		scopes = []*uuid.UUID{restaurantID, nil}
	}

	for _, scope := range scopes {
		customer, err := srv.customerRepo.FindByEmail(ctx, scope, email)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find customer")
		}

		if !srv.hasher.Check(input.Password, customer.PasswordHash) {
			continue
		}

		claimsRestaurant := customer.RestaurantID
		if claimsRestaurant == nil {
			claimsRestaurant = restaurantID
		}

		return srv.issue(service.Claims{
			UserID:       customer.ID,
			Email:        customer.Email,
			Name:         customer.Name,
			Role:         entity.RoleCustomer,
			RestaurantID: claimsRestaurant,
		})
	}

	srv.log(ctx).Warn("Customer login rejected", slog.String("email", email), slog.Bool("withRestaurant", restaurantID != nil))

	return nil, domainerrors.ErrInvalidCredentials
}

// RegisterCustomer creates a customer in the restaurant's scope, or a shared
// customer when no restaurant is named.
func (srv *authService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	var restaurantID *uuid.UUID
	if identifier := normalizeIdentifier(input.RestaurantIdentifier); identifier != "" {
		restaurant, err := srv.activeRestaurant(ctx, identifier)
		if err != nil {
			return nil, err
		}
		restaurantID = &restaurant.ID
	}

	_, err := srv.customerRepo.FindByEmail(ctx, restaurantID, email)
	if err == nil {
		return nil, domainerrors.ErrCustomerAlreadyExists
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to check customer email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash customer password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	customer := &entity.Customer{
		RestaurantID: restaurantID,
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		PasswordHash: hash,
	}
	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return nil, domainerrors.ErrCustomerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Info("Customer registered", slog.Any("customerID", customer.ID), slog.Bool("shared", customer.IsShared()))

	return srv.issue(service.Claims{
		UserID:       customer.ID,
		Email:        customer.Email,
		Name:         customer.Name,
		Role:         entity.RoleCustomer,
		RestaurantID: restaurantID,
	})
}

// LoginStaff tries the configured superadmin before any tenant lookup.
func (srv *authService) LoginStaff(ctx context.Context, input *usecase.StaffLoginInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)

	if srv.isSuperAdmin(username, input.Password) {
		srv.log(ctx).Info("Superadmin logged in", slog.String("username", username))

		return srv.issue(service.Claims{
			UserID:       superAdminID(username),
			Email:        srv.superAdmin.Email,
			Name:         username,
			Role:         entity.RoleSuperAdmin,
			IsSuperAdmin: true,
		})
	}

	identifier := normalizeIdentifier(input.RestaurantIdentifier)
	if identifier == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}
	restaurant, err := srv.activeRestaurant(ctx, identifier)
	if err != nil {
		return nil, err
	}

	staff, err := srv.staffRepo.FindByUsername(ctx, restaurant.ID, username)
	if errors.Is(err, repository.ErrStaffNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find staff")
	}

	if !staff.IsActive || !srv.hasher.Check(input.Password, staff.PasswordHash) {
		srv.log(ctx).Warn("Staff login rejected", slog.Any("restaurantID", restaurant.ID), slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(service.Claims{
		UserID:       staff.ID,
		Email:        staff.Email,
		Name:         staff.Name,
		Role:         staff.Role,
		RestaurantID: &restaurant.ID,
	})
}

func (srv *authService) LoginDelivery(ctx context.Context, input *usecase.DeliveryLoginInput) (*usecase.AuthOutput, error) {
	restaurant, err := srv.activeRestaurant(ctx, normalizeIdentifier(input.RestaurantIdentifier))
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	person, err := srv.deliveryPersonRepo.FindByUsername(ctx, restaurant.ID, username)
	if errors.Is(err, repository.ErrDeliveryPersonNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery person")
	}

	if !srv.hasher.Check(input.Password, person.PasswordHash) {
		srv.log(ctx).Warn("Delivery login rejected", slog.Any("restaurantID", restaurant.ID), slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !person.IsActive {
		return nil, domainerrors.ErrDeliveryPersonInactive
	}

	return srv.issue(service.Claims{
		UserID:       person.ID,
		Name:         person.Name,
		Role:         entity.RoleDelivery,
		RestaurantID: &restaurant.ID,
	})
}

// activeRestaurant resolves a login restaurant. Unknown identifiers read as bad
// credentials so the response does not confirm which restaurants exist.
func (srv *authService) activeRestaurant(ctx context.Context, identifier string) (*entity.Restaurant, error) {
	if identifier == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	restaurant, err := srv.restaurantRepo.FindByIdentifier(ctx, identifier)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant")
	}
	if !restaurant.IsActive {
		return nil, domainerrors.ErrRestaurantInactive
	}

	return restaurant, nil
}

func (srv *authService) isSuperAdmin(username, password string) bool {
	if srv.superAdmin.Username == "" || srv.superAdmin.PasswordHash == "" {
		return false
	}
	if username != srv.superAdmin.Username {
		return false
	}

	return srv.hasher.Check(password, srv.superAdmin.PasswordHash)
}

func (srv *authService) issue(claims service.Claims) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.IssueToken(claims)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Claims:    &claims,
	}, nil
}

// superAdminID derives a stable ID for the configured superadmin, who has no table row.
func superAdminID(username string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("comanda:superadmin:"+username))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
