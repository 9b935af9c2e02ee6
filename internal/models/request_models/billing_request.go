package request_models

import "github.com/google/uuid"

type CreateSubscriptionRequest struct {
	PlanName string  `json:"plan_name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Interval string  `json:"interval" binding:"required,oneof=monthly yearly"`
}

type ProcessPaymentRequest struct {
	PaymentMethodID uuid.UUID `json:"payment_method_id" binding:"required"`
	Amount          float64   `json:"amount" binding:"required,gt=0"`
}
