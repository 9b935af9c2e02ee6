package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"payflow/internal/models/db_models"
	"payflow/pkg/utils"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func testCustomer() *db_models.Customer {
	return &db_models.Customer{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Ada",
		Email:     "ada@example.com",
		Role:      db_models.RoleUser,
	}
}

func TestGenerate_CreatesPendingInvoiceDueInSevenDays(t *testing.T) {
	repo := newFakeInvoiceRepo()
	mail := &fakeMail{}
	svc := NewInvoiceService(repo, mail).(*InvoiceService)
	svc.now = fixedNow

	customer := testCustomer()
	sub := &db_models.Subscription{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		CustomerID: customer.ID,
		PlanName:   "Pro",
		Price:      50.00,
	}

	invoice, err := svc.Generate(context.Background(), customer, sub, 50.00)
	require.NoError(t, err)
	require.Equal(t, db_models.InvoiceStatusPending, invoice.Status)
	require.Equal(t, 50.00, invoice.Amount)
	require.Equal(t, fixedNow().Add(7*utils.Day).Unix(), invoice.DueAt)
	require.Equal(t, customer.ID, invoice.CustomerID)
	require.Equal(t, sub.ID, invoice.SubscriptionID)
	require.Len(t, repo.invoices, 1)
}

func TestGenerate_NotifiesCustomerWithPlanAmountAndDueDate(t *testing.T) {
	repo := newFakeInvoiceRepo()
	mail := &fakeMail{}
	svc := NewInvoiceService(repo, mail).(*InvoiceService)
	svc.now = fixedNow

	customer := testCustomer()
	sub := &db_models.Subscription{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		CustomerID: customer.ID,
		PlanName:   "Pro",
		Price:      50.00,
	}

	_, err := svc.Generate(context.Background(), customer, sub, 50.00)
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	require.Equal(t, "ada@example.com", mail.sent[0].To)
	require.Contains(t, mail.sent[0].Subject, "Pro")
	require.Contains(t, mail.sent[0].Body, "50.00")
	require.Contains(t, mail.sent[0].Body, "2024-03-17")
}

func TestGenerate_NotificationFailureDoesNotFailGeneration(t *testing.T) {
	repo := newFakeInvoiceRepo()
	mail := &fakeMail{sendErr: errMailDown}
	svc := NewInvoiceService(repo, mail).(*InvoiceService)
	svc.now = fixedNow

	customer := testCustomer()
	sub := &db_models.Subscription{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		CustomerID: customer.ID,
		PlanName:   "Pro",
	}

	invoice, err := svc.Generate(context.Background(), customer, sub, 10.00)
	require.NoError(t, err)
	require.NotNil(t, invoice)
	require.Len(t, repo.invoices, 1)
}

func TestGenerate_InsertFailureIsDatabaseError(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.insertErr = errMailDown
	svc := NewInvoiceService(repo, &fakeMail{})

	customer := testCustomer()
	sub := &db_models.Subscription{BaseModel: db_models.BaseModel{ID: uuid.New()}}

	_, err := svc.Generate(context.Background(), customer, sub, 10.00)
	require.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetInvoiceById_UnknownIdIsNotFound(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo(), &fakeMail{})

	_, err := svc.GetInvoiceById(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, utils.ErrInvoiceNotFound)
}

func TestGetInvoiceById_ReturnsSameDataOnRepeatedReads(t *testing.T) {
	repo := newFakeInvoiceRepo()
	mail := &fakeMail{}
	svc := NewInvoiceService(repo, mail).(*InvoiceService)
	svc.now = fixedNow

	customer := testCustomer()
	sub := &db_models.Subscription{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		CustomerID: customer.ID,
		PlanName:   "Pro",
	}

	invoice, err := svc.Generate(context.Background(), customer, sub, 25.00)
	require.NoError(t, err)

	first, err := svc.GetInvoiceById(context.Background(), invoice.ID.String())
	require.NoError(t, err)
	second, err := svc.GetInvoiceById(context.Background(), invoice.ID.String())
	require.NoError(t, err)
	require.Equal(t, first, second)
}
