package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"payflow/internal/models/db_models"
)

type InvoiceRepository interface {
	Insert(ctx context.Context, invoice *db_models.Invoice) error
	FindById(ctx context.Context, id string) (*db_models.Invoice, error)
	Update(ctx context.Context, invoice *db_models.Invoice) error
	ListByCustomer(ctx context.Context, customerId string) ([]db_models.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

func (r *invoiceRepository) Insert(ctx context.Context, invoice *db_models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) FindById(ctx context.Context, id string) (*db_models.Invoice, error) {
	var invoice db_models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invoice, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *db_models.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerId string) ([]db_models.Invoice, error) {
	var invoices []db_models.Invoice
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerId).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	return invoices, nil
}
