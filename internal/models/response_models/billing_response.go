package response_models

import "github.com/google/uuid"

type CreateSubscriptionResponse struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	PlanName       string    `json:"plan_name"`
	Status         string    `json:"status"`
	InvoiceID      uuid.UUID `json:"invoice_id"`
}

type CancelSubscriptionResponse struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	Status         string    `json:"status"`
	ProratedRefund string    `json:"prorated_refund,omitempty"`
}

type SubscriptionResponse struct {
	ID       uuid.UUID `json:"id"`
	PlanName string    `json:"plan_name"`
	Price    float64   `json:"price"`
	Interval string    `json:"interval"`
	Status   string    `json:"status"`
	StartsAt int64     `json:"starts_at"`
	EndsAt   *int64    `json:"ends_at,omitempty"`
}

type ProcessPaymentResponse struct {
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
	Error     string `json:"error,omitempty"`
	RetryAt   int64  `json:"retry_at,omitempty"`
}

type InvoiceResponse struct {
	ID             uuid.UUID `json:"id"`
	SubscriptionID uuid.UUID `json:"subscription_id"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	DueAt          int64     `json:"due_at"`
}
