package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"payflow/internal/models/db_models"
	"payflow/internal/models/response_models"
	"payflow/internal/repositories"
	"payflow/pkg/utils"
)

// Proration assumes a fixed 30-day billing cycle regardless of interval.
const billingCycleDays = 30

type BillingServiceInterface interface {
	CreateSubscription(ctx context.Context, customerId, planName string, price float64, interval string) (*response_models.CreateSubscriptionResponse, error)
	CancelSubscription(ctx context.Context, subscriptionId string) (*response_models.CancelSubscriptionResponse, error)
	ProcessPayment(ctx context.Context, paymentMethodId string, amount float64) (*response_models.ProcessPaymentResponse, error)
	ListSubscriptions(ctx context.Context, customerId string) ([]response_models.SubscriptionResponse, error)
}

type BillingService struct {
	customerRepo     repositories.CustomerRepository
	subscriptionRepo repositories.SubscriptionRepository
	paymentRepo      repositories.PaymentRepository
	methodRepo       repositories.PaymentMethodRepository
	invoiceService   InvoiceServiceInterface
	dunningService   DunningServiceInterface
	gateway          PaymentGateway
	mailService      IMailService
	now              func() time.Time

	// Serializes cancellations per subscription id; two concurrent cancels
	// of the same subscription must not both pass the status check.
	cancelMu   sync.Mutex
	cancelLock map[string]*sync.Mutex
}

func NewBillingService(
	customerRepo repositories.CustomerRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	paymentRepo repositories.PaymentRepository,
	methodRepo repositories.PaymentMethodRepository,
	invoiceService InvoiceServiceInterface,
	dunningService DunningServiceInterface,
	gateway PaymentGateway,
	mailService IMailService,
) BillingServiceInterface {
	return &BillingService{
		customerRepo:     customerRepo,
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		methodRepo:       methodRepo,
		invoiceService:   invoiceService,
		dunningService:   dunningService,
		gateway:          gateway,
		mailService:      mailService,
		now:              time.Now,
		cancelLock:       make(map[string]*sync.Mutex),
	}
}

// CreateSubscription persists the subscription first and generates the
// invoice second. If invoice generation fails, the call fails as a whole but
// the already-persisted subscription is not rolled back.
func (s *BillingService) CreateSubscription(ctx context.Context, customerId, planName string, price float64, interval string) (*response_models.CreateSubscriptionResponse, error) {

	if planName == "" || price < 0 {
		return nil, utils.ErrValidation
	}
	billingInterval, ok := parseInterval(interval)
	if !ok {
		return nil, utils.ErrValidation
	}

	customer, err := s.customerRepo.FindById(ctx, customerId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if customer == nil {
		return nil, utils.ErrCustomerNotFound
	}

	subscription := &db_models.Subscription{
		CustomerID: customer.ID,
		PlanName:   planName,
		Price:      price,
		Interval:   billingInterval,
		Status:     db_models.SubStatusActive,
		StartsAt:   s.now().Unix(),
	}

	if err := s.subscriptionRepo.Insert(ctx, subscription); err != nil {
		return nil, utils.ErrDatabaseError
	}

	invoice, err := s.invoiceService.Generate(ctx, customer, subscription, subscription.Price)
	if err != nil {
		return nil, err
	}

	return &response_models.CreateSubscriptionResponse{
		SubscriptionID: subscription.ID,
		PlanName:       subscription.PlanName,
		Status:         string(subscription.Status),
		InvoiceID:      invoice.ID,
	}, nil
}

// CancelSubscription stamps the end date and reports a prorated refund for
// the unused part of the current 30-day cycle. The refund is informational
// only; no refund transaction is issued.
func (s *BillingService) CancelSubscription(ctx context.Context, subscriptionId string) (*response_models.CancelSubscriptionResponse, error) {

	unlock := s.lockSubscription(subscriptionId)
	defer unlock()

	subscription, err := s.subscriptionRepo.FindById(ctx, subscriptionId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if subscription == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	if subscription.IsCanceled() {
		return nil, utils.ErrSubscriptionCanceled
	}

	now := s.now()
	endsAt := now.Unix()
	subscription.Status = db_models.SubStatusCanceled
	subscription.EndsAt = &endsAt

	if err := s.subscriptionRepo.Update(ctx, subscription); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := &response_models.CancelSubscriptionResponse{
		SubscriptionID: subscription.ID,
		Status:         string(subscription.Status),
	}

	remaining := billingCycleDays - utils.ElapsedDays(utils.FromUnixSeconds(subscription.StartsAt), now)
	if remaining > 0 {
		refund := float64(remaining) / billingCycleDays * subscription.Price
		formatted := utils.FormatAmount(refund)
		response.ProratedRefund = formatted

		subject := "Subscription canceled"
		body := fmt.Sprintf(
			"Your %s subscription has been canceled.\nA prorated amount of %s for the remaining %d day(s) of your billing cycle applies.",
			subscription.PlanName, formatted, remaining,
		)
		if err := s.mailService.Notify(subscription.Customer.Email, subject, body); err != nil {
			log.Printf("cancellation notification to %s failed: %v", subscription.Customer.Email, err)
		}
	}

	return response, nil
}

// ProcessPayment runs a single charge attempt. A declined charge is a normal
// outcome that hands off to dunning; it never updates any invoice status.
func (s *BillingService) ProcessPayment(ctx context.Context, paymentMethodId string, amount float64) (*response_models.ProcessPaymentResponse, error) {

	if amount <= 0 {
		return nil, utils.ErrValidation
	}

	method, err := s.methodRepo.FindById(ctx, paymentMethodId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if method == nil {
		return nil, utils.ErrPaymentMethodNotFound
	}

	outcome := s.gateway.Charge(ctx, method, amount)

	s.recordPayment(ctx, method, amount, outcome)

	if outcome.Succeeded {
		return &response_models.ProcessPaymentResponse{
			Status:    "success",
			Reference: outcome.Reference,
		}, nil
	}

	result := s.dunningService.OnPaymentFailure(ctx, &method.Customer, method, amount, outcome.ReasonCode)

	return &response_models.ProcessPaymentResponse{
		Status:  "failed",
		Error:   outcome.ReasonCode,
		RetryAt: result.RetryAt.Unix(),
	}, nil
}

func (s *BillingService) ListSubscriptions(ctx context.Context, customerId string) ([]response_models.SubscriptionResponse, error) {

	subscriptions, err := s.subscriptionRepo.ListByCustomer(ctx, customerId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.SubscriptionResponse, 0, len(subscriptions))
	for i := range subscriptions {
		sub := &subscriptions[i]
		results = append(results, response_models.SubscriptionResponse{
			ID:       sub.ID,
			PlanName: sub.PlanName,
			Price:    sub.Price,
			Interval: string(sub.Interval),
			Status:   string(sub.Status),
			StartsAt: sub.StartsAt,
			EndsAt:   sub.EndsAt,
		})
	}

	return results, nil
}

// recordPayment keeps an audit row per charge attempt. It is best-effort:
// losing the audit row must not change the billing outcome.
func (s *BillingService) recordPayment(ctx context.Context, method *db_models.PaymentMethod, amount float64, outcome ChargeOutcome) {

	status := db_models.PaymentStatusSucceeded
	if !outcome.Succeeded {
		status = db_models.PaymentStatusFailed
	}

	receipt, _ := json.Marshal(map[string]any{
		"reference":   outcome.Reference,
		"reason_code": outcome.ReasonCode,
		"card_last4":  method.CardLast4,
	})

	payment := &db_models.Payment{
		CustomerID:      method.CustomerID,
		PaymentMethodID: method.ID,
		Amount:          amount,
		Status:          status,
		ProviderRef:     outcome.Reference,
		ReasonCode:      outcome.ReasonCode,
		Receipt:         receipt,
	}

	if err := s.paymentRepo.Insert(ctx, payment); err != nil {
		log.Printf("recording payment attempt for method %s failed: %v", method.ID, err)
	}
}

func (s *BillingService) lockSubscription(id string) func() {
	s.cancelMu.Lock()
	mu, ok := s.cancelLock[id]
	if !ok {
		mu = &sync.Mutex{}
		s.cancelLock[id] = mu
	}
	s.cancelMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func parseInterval(interval string) (db_models.BillingInterval, bool) {
	switch db_models.BillingInterval(interval) {
	case db_models.IntervalMonthly:
		return db_models.IntervalMonthly, true
	case db_models.IntervalYearly:
		return db_models.IntervalYearly, true
	default:
		return "", false
	}
}
