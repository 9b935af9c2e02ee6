package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"payflow/internal/models/db_models"
)

type PaymentMethodRepository interface {
	Insert(ctx context.Context, method *db_models.PaymentMethod) error
	// FindById preloads the owning customer so callers can notify without a
	// second lookup.
	FindById(ctx context.Context, id string) (*db_models.PaymentMethod, error)
	ListByCustomer(ctx context.Context, customerId string) ([]db_models.PaymentMethod, error)
}

type paymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepository{
		db: db,
	}
}

func (r *paymentMethodRepository) Insert(ctx context.Context, method *db_models.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *paymentMethodRepository) FindById(ctx context.Context, id string) (*db_models.PaymentMethod, error) {
	var method db_models.PaymentMethod
	err := r.db.WithContext(ctx).Preload("Customer").First(&method, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &method, nil
}

func (r *paymentMethodRepository) ListByCustomer(ctx context.Context, customerId string) ([]db_models.PaymentMethod, error) {
	var methods []db_models.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerId).
		Order("created_at ASC").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}

	return methods, nil
}
