package response_models

import "github.com/google/uuid"

type CustomerLoginResponse struct {
	Token string `json:"token"`
}

type CustomerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type PaymentMethodResponse struct {
	ID        uuid.UUID `json:"id"`
	CardLast4 string    `json:"card_last4"`
}
