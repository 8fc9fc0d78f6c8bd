package postgres

import (
	"context"
	"strings"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (repo *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	staffM := fromStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStaff
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff")
	}

	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

func (repo *staffRepository) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Staff, error) {
	var staffM model.StaffModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by ID")
	}

	return toStaffDomain(&staffM), nil
}

func (repo *staffRepository) FindByUsername(ctx context.Context, restaurantID uuid.UUID, username string) (*entity.Staff, error) {
	var staffM model.StaffModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND username = ?", restaurantID, username).
		First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by username")
	}

	return toStaffDomain(&staffM), nil
}

func (repo *staffRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Staff, error) {
	var staffModels []*model.StaffModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&staffModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	staff := make([]*entity.Staff, 0, len(staffModels))
	for _, staffM := range staffModels {
		staff = append(staff, toStaffDomain(staffM))
	}

	return staff, nil
}

func (repo *staffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("restaurant_id = ? AND id = ?", staff.RestaurantID, staff.ID).
		Updates(map[string]any{
			"username":      staff.Username,
			"email":         staff.Email,
			"name":          staff.Name,
			"password_hash": staff.PasswordHash,
			"role":          staff.Role.String(),
			"is_active":     staff.IsActive,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateStaff
		}

		return errors.Wrap(result.Error, "failed to update staff")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.Email = normalizeEmail(customer.Email)
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByEmail looks the email up in exactly one scope: the given restaurant, or
// the shared scope when restaurantID is nil.
func (repo *customerRepository) FindByEmail(ctx context.Context, restaurantID *uuid.UUID, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	query := repo.db.WithContext(ctx).Where("LOWER(email) = ?", normalizeEmail(email))
	if restaurantID == nil {
		query = query.Where("restaurant_id IS NULL")
	} else {
		query = query.Where("restaurant_id = ?", *restaurantID)
	}

	if err := query.First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"email":         normalizeEmail(customer.Email),
			"name":          customer.Name,
			"phone":         customer.Phone,
			"address":       customer.Address,
			"password_hash": customer.PasswordHash,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCustomer
		}

		return errors.Wrap(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

type deliveryPersonRepository struct {
	db *gorm.DB
}

// NewDeliveryPersonRepository is the constructor for deliveryPersonRepository.
func NewDeliveryPersonRepository(db *gorm.DB) repository.DeliveryPersonRepository {
	return &deliveryPersonRepository{db: db}
}

func (repo *deliveryPersonRepository) Create(ctx context.Context, person *entity.DeliveryPerson) error {
	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	personM := fromDeliveryPersonDomain(person)

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDeliveryPerson
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery person")
	}

	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

func (repo *deliveryPersonRepository) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.DeliveryPerson, error) {
	var personM model.DeliveryPersonModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery person by ID")
	}

	return toDeliveryPersonDomain(&personM), nil
}

func (repo *deliveryPersonRepository) FindByUsername(ctx context.Context, restaurantID uuid.UUID, username string) (*entity.DeliveryPerson, error) {
	var personM model.DeliveryPersonModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND username = ?", restaurantID, username).
		First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery person by username")
	}

	return toDeliveryPersonDomain(&personM), nil
}

func (repo *deliveryPersonRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.DeliveryPerson, error) {
	var personModels []*model.DeliveryPersonModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&personModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery persons")
	}

	persons := make([]*entity.DeliveryPerson, 0, len(personModels))
	for _, personM := range personModels {
		persons = append(persons, toDeliveryPersonDomain(personM))
	}

	return persons, nil
}

func (repo *deliveryPersonRepository) Update(ctx context.Context, person *entity.DeliveryPerson) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryPersonModel{}).
		Where("restaurant_id = ? AND id = ?", person.RestaurantID, person.ID).
		Updates(map[string]any{
			"username":      person.Username,
			"name":          person.Name,
			"phone":         person.Phone,
			"password_hash": person.PasswordHash,
			"is_active":     person.IsActive,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDeliveryPerson
		}

		return errors.Wrap(result.Error, "failed to update delivery person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryPersonNotFound
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toStaffDomain(data *model.StaffModel) *entity.Staff {
	if data == nil {
		return nil
	}

	return &entity.Staff{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Username:     data.Username,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromStaffDomain(data *entity.Staff) *model.StaffModel {
	if data == nil {
		return nil
	}

	return &model.StaffModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Username:     data.Username,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Email:        data.Email,
		Name:         data.Name,
		Phone:        data.Phone,
		Address:      data.Address,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Email:        data.Email,
		Name:         data.Name,
		Phone:        data.Phone,
		Address:      data.Address,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toDeliveryPersonDomain(data *model.DeliveryPersonModel) *entity.DeliveryPerson {
	if data == nil {
		return nil
	}

	return &entity.DeliveryPerson{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Username:     data.Username,
		Name:         data.Name,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDeliveryPersonDomain(data *entity.DeliveryPerson) *model.DeliveryPersonModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryPersonModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Username:     data.Username,
		Name:         data.Name,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
