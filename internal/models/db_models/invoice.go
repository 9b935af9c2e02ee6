package db_models

import (
	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

type Invoice struct {
	BaseModel
	CustomerID     uuid.UUID `gorm:"index;not null"`
	SubscriptionID uuid.UUID `gorm:"index;not null"`

	Amount float64       `gorm:"not null"`
	Status InvoiceStatus `gorm:"type:varchar(16);index"`

	// Unix seconds, creation time plus the grace period.
	DueAt int64 `gorm:"not null"`

	Customer     Customer     `gorm:"foreignKey:CustomerID"`
	Subscription Subscription `gorm:"foreignKey:SubscriptionID"`
}
