package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"payflow/internal/models/db_models"
	"payflow/pkg/utils"
)

// A single advisory retry, a fixed delay after the failed charge. There is
// no background scheduler: the retry date is computed and reported once,
// never executed automatically, and no second retry is ever scheduled.
const dunningRetryDelay = 2 * utils.Day

// DunningResult is the terminal outcome of the dunning cycle for one failed
// charge.
type DunningResult struct {
	RetryAt time.Time
}

type DunningServiceInterface interface {
	// OnPaymentFailure is triggered exclusively by a failed charge outcome.
	// Notification trouble never rolls back the billing decision already
	// made.
	OnPaymentFailure(ctx context.Context, customer *db_models.Customer, method *db_models.PaymentMethod, amount float64, reason string) DunningResult
}

type DunningService struct {
	mailService IMailService
	now         func() time.Time
}

func NewDunningService(mailService IMailService) DunningServiceInterface {
	return &DunningService{
		mailService: mailService,
		now:         time.Now,
	}
}

func (s *DunningService) OnPaymentFailure(ctx context.Context, customer *db_models.Customer, method *db_models.PaymentMethod, amount float64, reason string) DunningResult {

	retryAt := s.now().Add(dunningRetryDelay)

	subject := "Payment failed"
	body := fmt.Sprintf(
		"We could not charge %s to your card ending in %s (%s).\nWe will retry on %s. Please make sure your payment method has sufficient funds.",
		utils.FormatAmount(amount),
		method.CardLast4,
		reason,
		utils.FormatDate(retryAt),
	)

	if err := s.mailService.Notify(customer.Email, subject, body); err != nil {
		log.Printf("dunning notification to %s failed: %v", customer.Email, err)
	}

	return DunningResult{RetryAt: retryAt}
}
