package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"payflow/internal/models/db_models"
)

type SubscriptionRepository interface {
	Insert(ctx context.Context, subscription *db_models.Subscription) error
	FindById(ctx context.Context, id string) (*db_models.Subscription, error)
	Update(ctx context.Context, subscription *db_models.Subscription) error
	ListByCustomer(ctx context.Context, customerId string) ([]db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

func (r *subscriptionRepository) Insert(ctx context.Context, subscription *db_models.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) FindById(ctx context.Context, id string) (*db_models.Subscription, error) {
	var subscription db_models.Subscription
	err := r.db.WithContext(ctx).Preload("Customer").First(&subscription, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &subscription, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, subscription *db_models.Subscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}

func (r *subscriptionRepository) ListByCustomer(ctx context.Context, customerId string) ([]db_models.Subscription, error) {
	var subscriptions []db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerId).
		Order("created_at DESC").
		Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}

	return subscriptions, nil
}
