package utils

import "errors"

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrInvoiceNotFound       = errors.New("invoice not found")

	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSubscriptionCanceled = errors.New("subscription already canceled")
	ErrValidation           = errors.New("validation error")
	ErrDatabaseError        = errors.New("database error")
)
