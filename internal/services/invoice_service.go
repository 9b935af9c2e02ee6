package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"payflow/internal/models/db_models"
	"payflow/internal/models/response_models"
	"payflow/internal/repositories"
	"payflow/pkg/utils"
)

// Invoices come due a fixed grace period after creation.
const invoiceGracePeriod = 7 * utils.Day

type InvoiceServiceInterface interface {
	// Generate creates a pending invoice for a subscription charge. The
	// caller supplies the amount so prorated or overridden charges stay
	// possible. An invoice always exists before Generate returns.
	Generate(ctx context.Context, customer *db_models.Customer, subscription *db_models.Subscription, amount float64) (*db_models.Invoice, error)
	GetInvoiceById(ctx context.Context, id string) (*response_models.InvoiceResponse, error)
	ListByCustomer(ctx context.Context, customerId string) ([]response_models.InvoiceResponse, error)
}

type InvoiceService struct {
	invoiceRepo repositories.InvoiceRepository
	mailService IMailService
	now         func() time.Time
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository, mailService IMailService) InvoiceServiceInterface {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		mailService: mailService,
		now:         time.Now,
	}
}

func (s *InvoiceService) Generate(ctx context.Context, customer *db_models.Customer, subscription *db_models.Subscription, amount float64) (*db_models.Invoice, error) {

	now := s.now()
	invoice := &db_models.Invoice{
		CustomerID:     customer.ID,
		SubscriptionID: subscription.ID,
		Amount:         amount,
		Status:         db_models.InvoiceStatusPending,
		DueAt:          now.Add(invoiceGracePeriod).Unix(),
	}

	if err := s.invoiceRepo.Insert(ctx, invoice); err != nil {
		return nil, utils.ErrDatabaseError
	}

	subject := fmt.Sprintf("New invoice for %s", subscription.PlanName)
	body := fmt.Sprintf(
		"A new invoice has been issued for your %s subscription.\nAmount: %s\nDue date: %s",
		subscription.PlanName,
		utils.FormatAmount(amount),
		utils.FormatDate(utils.FromUnixSeconds(invoice.DueAt)),
	)

	if err := s.mailService.Notify(customer.Email, subject, body); err != nil {
		log.Printf("invoice notification to %s failed: %v", customer.Email, err)
	}

	return invoice, nil
}

func (s *InvoiceService) GetInvoiceById(ctx context.Context, id string) (*response_models.InvoiceResponse, error) {

	invoice, err := s.invoiceRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}

	result := toInvoiceResponse(invoice)
	return &result, nil
}

func (s *InvoiceService) ListByCustomer(ctx context.Context, customerId string) ([]response_models.InvoiceResponse, error) {

	invoices, err := s.invoiceRepo.ListByCustomer(ctx, customerId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		results = append(results, toInvoiceResponse(&invoices[i]))
	}

	return results, nil
}

func toInvoiceResponse(invoice *db_models.Invoice) response_models.InvoiceResponse {
	return response_models.InvoiceResponse{
		ID:             invoice.ID,
		SubscriptionID: invoice.SubscriptionID,
		Amount:         invoice.Amount,
		Status:         string(invoice.Status),
		DueAt:          invoice.DueAt,
	}
}
