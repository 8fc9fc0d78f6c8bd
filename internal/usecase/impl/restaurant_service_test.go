package impl

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	mockRepo "comanda/internal/mocks/repository"
	mockService "comanda/internal/mocks/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type restaurantServiceFixtures struct {
	service        usecase.RestaurantUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	staffRepo      *mockRepo.MockStaffRepository
	deliveryRepo   *mockRepo.MockDeliveryPersonRepository
	qrCodes        *mockService.MockQRCodeService
	cache          *mockService.MockCache
}

func createTestRestaurantService(t *testing.T) restaurantServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	staffRepo := mockRepo.NewMockStaffRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryPersonRepository(t)
	qrCodes := mockService.NewMockQRCodeService(t)
	cache := mockService.NewMockCache(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo).Maybe()
	factory.EXPECT().NewStaffRepository().Return(staffRepo).Maybe()

	svc := NewRestaurantService(RestaurantServiceParams{
		TxManager:          inlineTxManager(t, factory),
		RestaurantRepo:     restaurantRepo,
		StaffRepo:          staffRepo,
		DeliveryPersonRepo: deliveryRepo,
		Hasher:             stubHasher(t),
		QRCodeService:      qrCodes,
		Cache:              cache,
		Logger:             discardLogger(),
	})

	return restaurantServiceFixtures{
		service:        svc,
		restaurantRepo: restaurantRepo,
		staffRepo:      staffRepo,
		deliveryRepo:   deliveryRepo,
		qrCodes:        qrCodes,
		cache:          cache,
	}
}

func TestRestaurantService_CreateRestaurant(t *testing.T) {
	input := &usecase.CreateRestaurantInput{
		Identifier: " Pizzeria-Roma ",
		Name:       "Pizzeria Roma",
		Admin: usecase.CreateStaffInput{
			Username: "mario",
			Email:    "Mario@Roma.it",
			Name:     "Mario",
			Password: "secret-pass",
		},
	}

	t.Run("creates tenant with admin", func(t *testing.T) {
		fx := createTestRestaurantService(t)
		ctx := context.Background()

		fx.restaurantRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Restaurant")).Return(nil).Once()
		fx.staffRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Staff")).Return(nil).Once()

		out, err := fx.service.CreateRestaurant(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "pizzeria-roma", out.Restaurant.Identifier)
		assert.True(t, out.Restaurant.IsActive)
		assert.Equal(t, out.Restaurant.ID, out.Admin.RestaurantID)
		assert.Equal(t, entity.RoleAdmin, out.Admin.Role)
		assert.Equal(t, "mario@roma.it", out.Admin.Email)
		assert.Equal(t, fakeHash("secret-pass"), out.Admin.PasswordHash)
	})

	t.Run("duplicate identifier", func(t *testing.T) {
		fx := createTestRestaurantService(t)
		ctx := context.Background()

		fx.restaurantRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateRestaurant).Once()

		_, err := fx.service.CreateRestaurant(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantAlreadyExists)
		fx.staffRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRestaurantService_GetRestaurantByIdentifier_HidesInactive(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()
	closed := &entity.Restaurant{ID: uuid.New(), Identifier: "closed", IsActive: false}

	fx.restaurantRepo.EXPECT().FindByIdentifier(ctx, "closed").Return(closed, nil).Once()

	_, err := fx.service.GetRestaurantByIdentifier(ctx, "Closed")
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantService_SetRestaurantActive_InvalidatesListings(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.restaurantRepo.EXPECT().SetActive(ctx, id, false).Return(nil).Once()
	fx.cache.EXPECT().Delete(mock.Anything, "products_list_"+id.String(), "products_list_all").Return(nil).Once()

	assert.NoError(t, fx.service.SetRestaurantActive(ctx, id, false))
}

func TestRestaurantService_CreateStaff(t *testing.T) {
	restaurantID := uuid.New()

	t.Run("rejects superadmin role", func(t *testing.T) {
		fx := createTestRestaurantService(t)

		_, err := fx.service.CreateStaff(context.Background(), restaurantID, &usecase.CreateStaffInput{
			Username: "root", Password: "secret-pass", Role: entity.RoleSuperAdmin,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate username", func(t *testing.T) {
		fx := createTestRestaurantService(t)
		ctx := context.Background()

		fx.staffRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateStaff).Once()

		_, err := fx.service.CreateStaff(ctx, restaurantID, &usecase.CreateStaffInput{
			Username: "luigi", Password: "secret-pass", Role: entity.RoleEmployee,
		})
		assert.ErrorIs(t, err, domainerrors.ErrStaffAlreadyExists)
	})
}

func TestRestaurantService_SetDeliveryPersonActive(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	person := &entity.DeliveryPerson{ID: uuid.New(), RestaurantID: restaurantID, IsActive: true}

	fx.deliveryRepo.EXPECT().FindByID(ctx, restaurantID, person.ID).Return(person, nil).Once()
	fx.deliveryRepo.EXPECT().Update(ctx, person).Return(nil).Once()

	require.NoError(t, fx.service.SetDeliveryPersonActive(ctx, restaurantID, person.ID, false))
	assert.False(t, person.IsActive)
}

func TestRestaurantService_GetMenuQRCode(t *testing.T) {
	t.Run("renders the menu url", func(t *testing.T) {
		fx := createTestRestaurantService(t)
		ctx := context.Background()
		restaurant := activeRestaurant("taqueria")

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil).Once()
		fx.qrCodes.EXPECT().GenerateMenuQR("taqueria").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()
		fx.qrCodes.EXPECT().MenuURL("taqueria").Return("https://comanda.test/r/taqueria").Once()

		qr, err := fx.service.GetMenuQRCode(ctx, restaurant.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://comanda.test/r/taqueria", qr.URL)
		assert.NotEmpty(t, qr.PNG)
	})

	t.Run("encoder failure", func(t *testing.T) {
		fx := createTestRestaurantService(t)
		ctx := context.Background()
		restaurant := activeRestaurant("taqueria")

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil).Once()
		fx.qrCodes.EXPECT().GenerateMenuQR("taqueria").Return(nil, errors.New("encode failed")).Once()

		_, err := fx.service.GetMenuQRCode(ctx, restaurant.ID)
		assert.Error(t, err)
	})
}
