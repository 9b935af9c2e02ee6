package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"payflow/internal/models/db_models"
	"payflow/pkg/utils"
)

func TestOnPaymentFailure_SchedulesSingleRetryTwoDaysOut(t *testing.T) {
	mail := &fakeMail{}
	svc := NewDunningService(mail).(*DunningService)
	svc.now = fixedNow

	customer := testCustomer()
	method := &db_models.PaymentMethod{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		CustomerID: customer.ID,
		CardLast4:  "4242",
	}

	result := svc.OnPaymentFailure(context.Background(), customer, method, 50.00, ReasonInsufficientFunds)

	require.Equal(t, fixedNow().Add(2*utils.Day), result.RetryAt)
	require.Len(t, mail.sent, 1)
	require.Equal(t, "ada@example.com", mail.sent[0].To)
	require.Contains(t, mail.sent[0].Body, "50.00")
	require.Contains(t, mail.sent[0].Body, ReasonInsufficientFunds)
	require.Contains(t, mail.sent[0].Body, "2024-03-12")
}

func TestOnPaymentFailure_NotificationFailureDoesNotPropagate(t *testing.T) {
	mail := &fakeMail{sendErr: errMailDown}
	svc := NewDunningService(mail).(*DunningService)
	svc.now = fixedNow

	customer := testCustomer()
	method := &db_models.PaymentMethod{CardLast4: "4242"}

	result := svc.OnPaymentFailure(context.Background(), customer, method, 10.00, ReasonInsufficientFunds)

	// The retry decision stands regardless of the notifier.
	require.Equal(t, fixedNow().Add(2*utils.Day), result.RetryAt)
}

func TestOnPaymentFailure_NoSecondRetry(t *testing.T) {
	mail := &fakeMail{}
	svc := NewDunningService(mail).(*DunningService)
	svc.now = fixedNow

	customer := testCustomer()
	method := &db_models.PaymentMethod{CardLast4: "4242"}

	svc.OnPaymentFailure(context.Background(), customer, method, 10.00, ReasonInsufficientFunds)

	// One failure, one notification. A later failure is its own cycle.
	require.Len(t, mail.sent, 1)
}
