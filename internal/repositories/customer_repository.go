package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"payflow/internal/models/db_models"
)

type CustomerRepository interface {
	Insert(ctx context.Context, customer *db_models.Customer) error
	FindById(ctx context.Context, id string) (*db_models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Customer, error)
	FindAll(ctx context.Context) ([]db_models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

func (r *customerRepository) Insert(ctx context.Context, customer *db_models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) FindById(ctx context.Context, id string) (*db_models.Customer, error) {
	var customer db_models.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]db_models.Customer, error) {
	var customers []db_models.Customer
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&customers).Error
	if err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*db_models.Customer, error) {
	var customer db_models.Customer
	err := r.db.WithContext(ctx).First(&customer, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}
