package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment records every charge attempt against the gateway, successful or
// not. It is an audit trail only and never feeds back into Invoice status.
type Payment struct {
	BaseModel
	CustomerID      uuid.UUID `gorm:"index;not null"`
	PaymentMethodID uuid.UUID `gorm:"index;not null"`

	Amount float64       `gorm:"not null"`
	Status PaymentStatus `gorm:"type:varchar(16);index"`

	// Gateway fields
	ProviderRef string `gorm:"index"`
	ReasonCode  string

	Receipt datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Customer      Customer      `gorm:"foreignKey:CustomerID"`
	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID"`
}
